package order

import (
	"errors"
	"time"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrDeliveryPolicyIsNotConstructed is returned when a DeliveryPolicy was not
// created via NewDeliveryPolicy.
var ErrDeliveryPolicyIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery policy must be created via NewDeliveryPolicy constructor")

// DeliveryPolicy describes how an order should be delivered: whether it
// contains alcohol, whether handover is contactless, whether the delivery is
// reserved for a later time window and when pickup is requested.
type DeliveryPolicy struct { //nolint:recvcheck //using for validation
	alcoholDelivery     bool
	contactlessDelivery bool
	reserved            bool
	reservedStartTime   *time.Time
	pickupRequestTime   time.Time
	guard               guard.ConstructorGuard
}

// NewDeliveryPolicy creates a DeliveryPolicy. The pickup request time is
// always required; a reserved policy additionally requires the reserved
// delivery start time.
func NewDeliveryPolicy(
	alcoholDelivery bool,
	contactlessDelivery bool,
	reserved bool,
	reservedStartTime *time.Time,
	pickupRequestTime time.Time,
) (DeliveryPolicy, error) {
	policy := DeliveryPolicy{
		alcoholDelivery:     alcoholDelivery,
		contactlessDelivery: contactlessDelivery,
		reserved:            reserved,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		policy.setReservedStartTime(reservedStartTime),
		policy.setPickupRequestTime(pickupRequestTime),
	); err != nil {
		return DeliveryPolicy{}, err
	}

	return policy, nil
}

// Validate checks that the DeliveryPolicy was created through its constructor.
func (p DeliveryPolicy) Validate() error {
	return p.guard.Validate(ErrDeliveryPolicyIsNotConstructed)
}

// IsAlcoholDelivery reports whether the order contains alcohol. Dispatch
// consumers use this to require recipient age verification.
func (p DeliveryPolicy) IsAlcoholDelivery() bool {
	return p.alcoholDelivery
}

// IsContactlessDelivery reports whether the handover is contactless.
func (p DeliveryPolicy) IsContactlessDelivery() bool {
	return p.contactlessDelivery
}

// IsReserved reports whether the delivery is reserved for a later start time.
func (p DeliveryPolicy) IsReserved() bool {
	return p.reserved
}

// ReservedStartTime returns the reserved delivery start time. Nil for
// immediate deliveries.
func (p DeliveryPolicy) ReservedStartTime() *time.Time {
	return p.reservedStartTime
}

// PickupRequestTime returns the requested pickup time.
func (p DeliveryPolicy) PickupRequestTime() time.Time {
	return p.pickupRequestTime
}

func (p *DeliveryPolicy) setReservedStartTime(reservedStartTime *time.Time) error {
	if p.reserved && reservedStartTime == nil {
		return errs.NewValueIsRequiredError("reserved delivery start time")
	}
	p.reservedStartTime = reservedStartTime
	return nil
}

func (p *DeliveryPolicy) setPickupRequestTime(pickupRequestTime time.Time) error {
	if pickupRequestTime.IsZero() {
		return errs.NewValueIsRequiredError("pickup request time")
	}
	p.pickupRequestTime = pickupRequestTime
	return nil
}
