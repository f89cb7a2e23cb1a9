package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"quickbite/internal/domain/entity"
)

// CourierPositionModel mirrors the append-only 'courier_positions' table.
type CourierPositionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CourierID  uuid.UUID `gorm:"type:uuid;not null;index:idx_courier_positions_courier_recorded"`
	Latitude   float64   `gorm:"not null"`
	Longitude  float64   `gorm:"not null"`
	RecordedAt time.Time `gorm:"not null;index:idx_courier_positions_courier_recorded"`
}

// TableName explicitly sets the table name for GORM.
func (CourierPositionModel) TableName() string {
	return "courier_positions"
}

// ToEntity maps the persistence model to a pure domain entity.
func (m *CourierPositionModel) ToEntity() *entity.CourierPosition {
	return &entity.CourierPosition{
		ID:         m.ID,
		CourierID:  m.CourierID,
		Point:      orb.Point{m.Longitude, m.Latitude},
		RecordedAt: m.RecordedAt,
	}
}

// PositionModelFromEntity maps a domain entity to the persistence model.
func PositionModelFromEntity(position *entity.CourierPosition) *CourierPositionModel {
	return &CourierPositionModel{
		ID:         position.ID,
		CourierID:  position.CourierID,
		Longitude:  position.Point.Lon(),
		Latitude:   position.Point.Lat(),
		RecordedAt: position.RecordedAt,
	}
}
