package order

import (
	"time"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrDraftIsNotConstructed is returned when a Draft was not created via NewDraft.
var ErrDraftIsNotConstructed = errs.NewValueIsRequiredError(
	"order draft must be created via NewDraft constructor")

// Draft is a fully validated order that has not been persisted yet. The
// persistent identity is assigned by the repository at insert time, after
// which the repository turns the draft into an Order via NewOrder so the
// creation event carries the identity.
type Draft struct {
	orderNumber OrderNumber
	items       []OrderItem
	origin      Location
	destination Location
	policy      DeliveryPolicy
	orderedAt   time.Time
	guard       guard.ConstructorGuard
}

// NewDraft creates a Draft, running the same field validation as NewOrder.
func NewDraft(
	orderNumber OrderNumber,
	items []OrderItem,
	origin Location,
	destination Location,
	policy DeliveryPolicy,
	orderedAt time.Time,
) (*Draft, error) {
	// Build a throwaway aggregate state to reuse the aggregate's validation.
	prototype, err := newOrderState(1, orderNumber, items, origin, destination, policy, orderedAt)
	if err != nil {
		return nil, err
	}

	return &Draft{
		orderNumber: prototype.orderNumber,
		items:       prototype.items,
		origin:      prototype.origin,
		destination: prototype.destination,
		policy:      prototype.policy,
		orderedAt:   prototype.orderedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Draft was created through its constructor.
func (d *Draft) Validate() error {
	if d == nil {
		return ErrDraftIsNotConstructed
	}
	return d.guard.Validate(ErrDraftIsNotConstructed)
}

// ToOrder turns the draft into an Order carrying the given persistent
// identity. The resulting aggregate has the creation event pending.
func (d *Draft) ToOrder(id int64) (*Order, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return NewOrder(id, d.orderNumber, d.items, d.origin, d.destination, d.policy, d.orderedAt)
}

// OrderNumber returns the business identifier.
func (d *Draft) OrderNumber() OrderNumber {
	return d.orderNumber
}

// Items returns a copy of the order lines.
func (d *Draft) Items() []OrderItem {
	items := make([]OrderItem, len(d.items))
	copy(items, d.items)
	return items
}

// Origin returns the pickup location.
func (d *Draft) Origin() Location {
	return d.origin
}

// Destination returns the drop-off location.
func (d *Draft) Destination() Location {
	return d.destination
}

// Policy returns the delivery policy.
func (d *Draft) Policy() DeliveryPolicy {
	return d.policy
}

// OrderedAt returns the time the order was placed.
func (d *Draft) OrderedAt() time.Time {
	return d.orderedAt
}
