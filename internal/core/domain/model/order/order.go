package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly
	// validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the ordering domain. It manages the order
// lifecycle from creation through delivery or cancellation and buffers the
// domain events raised by its state changes until they are flushed to the
// transactional outbox.
//
// Order follows these invariants:
//   - Must have a persistent identity assigned by the repository
//   - Must carry at least one order item
//   - Origin and destination must be fully constructed locations
//   - Status transitions follow defined business rules
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the persistent identity assigned at insert time
	id int64

	// orderNumber is the human-facing business identifier
	orderNumber OrderNumber

	// status represents the current state in the order lifecycle
	status Status

	items       []OrderItem
	origin      Location
	destination Location
	policy      DeliveryPolicy

	orderedAt   time.Time
	deliveredAt *time.Time
	cancelledAt *time.Time

	// version supports optimistic concurrency control on updates
	version int64

	// pendingEvents buffers domain events until they are persisted to the outbox
	pendingEvents []kernel.DomainEvent

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order with validation and raises the creation event.
// The identity must already be assigned, so this factory is invoked by the
// repository after the insert produced an id.
//
// The order starts in Created status with orderedAt set to the given time,
// and an OrderCreatedEvent carrying a full snapshot is appended to the
// pending events.
func NewOrder(
	id int64,
	orderNumber OrderNumber,
	items []OrderItem,
	origin Location,
	destination Location,
	policy DeliveryPolicy,
	orderedAt time.Time,
) (*Order, error) {
	order, err := newOrderState(id, orderNumber, items, origin, destination, policy, orderedAt)
	if err != nil {
		return nil, err
	}

	order.pendingEvents = append(order.pendingEvents, OrderCreatedEvent{
		OrderID:        order.id,
		OrderNumber:    order.orderNumber.Value(),
		Status:         order.status.String(),
		Items:          snapshotItems(order.items),
		Origin:         snapshotLocation(order.origin),
		Destination:    snapshotLocation(order.destination),
		Policy:         snapshotPolicy(order.policy),
		OrderedAt:      order.orderedAt,
		OccurredAtTime: time.Now().UTC(),
	})

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. It runs the same
// validation as NewOrder but raises no events and restores the persisted
// status, timestamps and version.
func RestoreOrder(
	id int64,
	orderNumber OrderNumber,
	status Status,
	items []OrderItem,
	origin Location,
	destination Location,
	policy DeliveryPolicy,
	orderedAt time.Time,
	deliveredAt *time.Time,
	cancelledAt *time.Time,
	version int64,
) (*Order, error) {
	order, err := newOrderState(id, orderNumber, items, origin, destination, policy, orderedAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidError("order version")
	}

	order.status = status
	order.deliveredAt = deliveredAt
	order.cancelledAt = cancelledAt
	order.version = version

	return order, nil
}

// newOrderState builds and validates the shared aggregate state.
func newOrderState(
	id int64,
	orderNumber OrderNumber,
	items []OrderItem,
	origin Location,
	destination Location,
	policy DeliveryPolicy,
	orderedAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setItems(items),
		order.setOrigin(origin),
		order.setDestination(destination),
		order.setPolicy(policy),
		order.setOrderedAt(orderedAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through its
// factory methods. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identities.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the persistent identity.
func (o *Order) ID() int64 {
	return o.id
}

// OrderNumber returns the business identifier.
func (o *Order) OrderNumber() OrderNumber {
	return o.orderNumber
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order lines.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// Origin returns the pickup location.
func (o *Order) Origin() Location {
	return o.origin
}

// Destination returns the drop-off location.
func (o *Order) Destination() Location {
	return o.destination
}

// Policy returns the delivery policy.
func (o *Order) Policy() DeliveryPolicy {
	return o.policy
}

// OrderedAt returns the time the order was placed.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// DeliveredAt returns the delivery time. Nil until the order is delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelledAt returns the cancellation time. Nil unless the order was cancelled.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// Version returns the optimistic concurrency counter.
func (o *Order) Version() int64 {
	return o.version
}

// TotalAmount returns the sum of all item line totals.
func (o *Order) TotalAmount() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

// Deliver marks the order as delivered.
//
// The order must be in Created status. On success the status becomes
// Delivered, deliveredAt is recorded and an OrderDeliveredEvent is raised.
func (o *Order) Deliver(at time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &at
	o.pendingEvents = append(o.pendingEvents, OrderDeliveredEvent{
		OrderID:        o.id,
		OrderNumber:    o.orderNumber.Value(),
		DeliveredAt:    at,
		OccurredAtTime: time.Now().UTC(),
	})
	return nil
}

// Cancel marks the order as cancelled.
//
// The order must be in Created status. On success the status becomes
// Cancelled, cancelledAt is recorded and an OrderCancelledEvent is raised.
func (o *Order) Cancel(at time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelledAt = &at
	o.pendingEvents = append(o.pendingEvents, OrderCancelledEvent{
		OrderID:        o.id,
		OrderNumber:    o.orderNumber.Value(),
		CancelledAt:    at,
		OccurredAtTime: time.Now().UTC(),
	})
	return nil
}

// ChangeDestinationAddress replaces the destination address, coordinates and
// entrance info while keeping the destination contact untouched.
//
// The order must still be in Created status; otherwise a
// LocationChangeNotAllowedError is returned. On success an
// OrderDestinationAddressChangedEvent carrying the old and new destination
// snapshots is raised.
func (o *Order) ChangeDestinationAddress(
	address kernel.Address,
	latLng kernel.LatLng,
	entranceInfo kernel.EntranceInfo,
) error {
	if err := o.status.ValidateLocationChange(); err != nil {
		return err
	}

	newDestination, err := NewLocation(o.destination.Contact(), address, latLng, entranceInfo)
	if err != nil {
		return err
	}

	oldSnapshot := snapshotLocation(o.destination)
	o.destination = newDestination
	o.pendingEvents = append(o.pendingEvents, OrderDestinationAddressChangedEvent{
		OrderID:        o.id,
		OrderNumber:    o.orderNumber.Value(),
		OldDestination: oldSnapshot,
		NewDestination: snapshotLocation(o.destination),
		OccurredAtTime: time.Now().UTC(),
	})
	return nil
}

// PendingEvents returns the buffered domain events in the order they were raised.
func (o *Order) PendingEvents() []kernel.DomainEvent {
	events := make([]kernel.DomainEvent, len(o.pendingEvents))
	copy(events, o.pendingEvents)
	return events
}

// ClearPendingEvents drops the buffered domain events. Called after the
// events have been written to the transactional outbox.
func (o *Order) ClearPendingEvents() {
	o.pendingEvents = nil
}

// setID validates and sets the persistent identity.
// This is a private method used only during construction.
func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	o.orderNumber = orderNumber
	return nil
}

// setItems validates and sets the order lines. At least one item is required.
func (o *Order) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]OrderItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setOrigin(origin Location) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	o.origin = origin
	return nil
}

func (o *Order) setDestination(destination Location) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setPolicy(policy DeliveryPolicy) error {
	if err := policy.Validate(); err != nil {
		return err
	}
	o.policy = policy
	return nil
}

func (o *Order) setOrderedAt(orderedAt time.Time) error {
	if orderedAt.IsZero() {
		return errs.NewValueIsRequiredError("ordered at")
	}
	o.orderedAt = orderedAt
	return nil
}
