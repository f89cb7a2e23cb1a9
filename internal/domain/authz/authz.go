// Package authz provides the single capability-check abstraction evaluated
// before every mutating operation. It replaces scattered per-handler
// superuser/owner conditionals with one rule table.
package authz

import (
	"github.com/google/uuid"

	"quickbite/internal/domain/entity"
	domainerrors "quickbite/internal/domain/errors"
)

// Capability names a guarded operation class.
type Capability string

const (
	// CapabilityManageCatalog covers create/update/delete of restaurants and items.
	CapabilityManageCatalog Capability = "catalog:manage"
	// CapabilityDeleteOrder covers hard-deleting an order.
	CapabilityDeleteOrder Capability = "order:delete"
	// CapabilityReadAllOrders covers listing orders beyond the actor's own.
	CapabilityReadAllOrders Capability = "order:read_all"
	// CapabilityAssignCourier covers creating a courier assignment for any courier.
	CapabilityAssignCourier Capability = "courier:assign"
	// CapabilityReadPositions covers reading another courier's position trail.
	CapabilityReadPositions Capability = "courier:read_positions"
)

// Actor is the authenticated identity a capability is evaluated against.
type Actor struct {
	ID          uuid.UUID
	Role        entity.Role
	IsSuperuser bool
}

// IsAdmin reports whether the actor carries administrative power,
// either via the admin role or the bootstrap superuser flag.
func (a Actor) IsAdmin() bool {
	return a.IsSuperuser || a.Role == entity.RoleAdmin
}

// Resource describes the target of a capability check. OwnerID is the zero
// UUID for resources without an owner (e.g. the catalog).
type Resource struct {
	OwnerID uuid.UUID
}

// Owned builds a Resource owned by the given user.
func Owned(ownerID uuid.UUID) Resource {
	return Resource{OwnerID: ownerID}
}

// Can reports whether the actor holds the capability on the resource.
func Can(actor Actor, capability Capability, resource Resource) bool {
	if actor.IsAdmin() {
		return true
	}

	switch capability {
	case CapabilityDeleteOrder:
		// Owners may delete their own orders.
		return resource.OwnerID != uuid.Nil && actor.ID == resource.OwnerID
	case CapabilityReadPositions:
		// A courier may read their own trail.
		return resource.OwnerID != uuid.Nil && actor.ID == resource.OwnerID
	case CapabilityManageCatalog, CapabilityReadAllOrders, CapabilityAssignCourier:
		return false
	default:
		return false
	}
}

// Check is the error-returning form of Can, used by the use cases.
func Check(actor Actor, capability Capability, resource Resource) error {
	if !Can(actor, capability, resource) {
		return domainerrors.ErrForbidden.WrapMessage("capability " + string(capability) + " denied")
	}

	return nil
}
