package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"quickbite/internal/domain/entity"
)

// RestaurantModel mirrors the 'restaurants' table. The location is stored as
// a latitude/longitude pair and exposed to the domain as an orb.Point.
type RestaurantModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Address        string    `gorm:"type:text;not null"`
	Phone          string    `gorm:"type:varchar(32)"`
	Email          string    `gorm:"type:varchar(255)"`
	Description    string    `gorm:"type:text"`
	ImageURL       string    `gorm:"type:text"`
	OperatingHours string    `gorm:"type:varchar(255)"`
	Rating         *float64  `gorm:"type:numeric(3,2)"`
	IsOpen         bool      `gorm:"not null;default:true"`
	Latitude       float64   `gorm:"not null;default:0"`
	Longitude      float64   `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Items []ItemModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// ToEntity maps the persistence model to a pure domain entity.
func (m *RestaurantModel) ToEntity() *entity.Restaurant {
	return &entity.Restaurant{
		ID:             m.ID,
		Name:           m.Name,
		Address:        m.Address,
		Phone:          m.Phone,
		Email:          m.Email,
		Description:    m.Description,
		ImageURL:       m.ImageURL,
		OperatingHours: m.OperatingHours,
		Rating:         m.Rating,
		IsOpen:         m.IsOpen,
		Location:       orb.Point{m.Longitude, m.Latitude},
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// RestaurantModelFromEntity maps a domain entity to the persistence model.
func RestaurantModelFromEntity(restaurant *entity.Restaurant) *RestaurantModel {
	return &RestaurantModel{
		ID:             restaurant.ID,
		Name:           restaurant.Name,
		Address:        restaurant.Address,
		Phone:          restaurant.Phone,
		Email:          restaurant.Email,
		Description:    restaurant.Description,
		ImageURL:       restaurant.ImageURL,
		OperatingHours: restaurant.OperatingHours,
		Rating:         restaurant.Rating,
		IsOpen:         restaurant.IsOpen,
		Longitude:      restaurant.Location.Lon(),
		Latitude:       restaurant.Location.Lat(),
		CreatedAt:      restaurant.CreatedAt,
		UpdatedAt:      restaurant.UpdatedAt,
	}
}

// ItemModel mirrors the 'items' table. Prices are integer cents; the check
// constraint rejects negative values at the database level too.
type ItemModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RestaurantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Description   string    `gorm:"type:text"`
	PriceCents    int64     `gorm:"not null;check:price_cents >= 0"`
	ImageURL      string    `gorm:"type:text"`
	IsAvailable   bool      `gorm:"not null;default:true"`
	IsRecommended bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}

// ToEntity maps the persistence model to a pure domain entity.
func (m *ItemModel) ToEntity() *entity.Item {
	return &entity.Item{
		ID:            m.ID,
		RestaurantID:  m.RestaurantID,
		Name:          m.Name,
		Description:   m.Description,
		PriceCents:    m.PriceCents,
		ImageURL:      m.ImageURL,
		IsAvailable:   m.IsAvailable,
		IsRecommended: m.IsRecommended,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ItemModelFromEntity maps a domain entity to the persistence model.
func ItemModelFromEntity(item *entity.Item) *ItemModel {
	return &ItemModel{
		ID:            item.ID,
		RestaurantID:  item.RestaurantID,
		Name:          item.Name,
		Description:   item.Description,
		PriceCents:    item.PriceCents,
		ImageURL:      item.ImageURL,
		IsAvailable:   item.IsAvailable,
		IsRecommended: item.IsRecommended,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}
