package entity

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// StatusPlaced is the initial state of every order.
	StatusPlaced OrderStatus = "placed"
	// StatusAccepted means the restaurant confirmed the order.
	StatusAccepted OrderStatus = "accepted"
	// StatusReady means the order is ready for courier pickup.
	StatusReady OrderStatus = "ready"
	// StatusPickedUp means the assigned courier collected the order.
	StatusPickedUp OrderStatus = "picked_up"
	// StatusDone means the order was delivered. Terminal.
	StatusDone OrderStatus = "done"
	// StatusCancelled is reachable only before pickup preparation completes. Terminal.
	StatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPlaced, StatusAccepted, StatusReady, StatusPickedUp, StatusDone, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDone || s == StatusCancelled
}

// validTransitions is the authoritative transition table:
// placed -> accepted -> ready -> picked_up -> done, with cancelled
// reachable from the two early states.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPlaced:   {StatusAccepted, StatusCancelled},
	StatusAccepted: {StatusReady, StatusCancelled},
	StatusReady:    {StatusPickedUp},
	StatusPickedUp: {StatusDone},
}

// CanTransition reports whether an order may move from one status to another.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, next := range validTransitions[s] {
		if next == to {
			return true
		}
	}

	return false
}

// NextStatuses returns all statuses reachable from s. Empty for terminal states.
func (s OrderStatus) NextStatuses() []OrderStatus {
	return validTransitions[s]
}
