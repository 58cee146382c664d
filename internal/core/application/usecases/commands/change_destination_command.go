package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrChangeDestinationCommandIsNotConstructed = errors.New(
	"ChangeDestinationCommand must be created via NewChangeDestinationCommand constructor",
)

// ChangeDestinationCommand represents a request to move an order's drop-off
// point to new coordinates. The address itself is resolved from the
// coordinates by the refinement chain; the caller only supplies the detail
// address and entrance info for the new location.
type ChangeDestinationCommand struct { //nolint:recvcheck //using for validation
	orderID       int64
	latLng        kernel.LatLng
	detailAddress string
	entranceInfo  kernel.EntranceInfo

	guard guard.ConstructorGuard
}

// NewChangeDestinationCommand creates a command to change an order's destination.
func NewChangeDestinationCommand(
	orderID int64,
	latLng kernel.LatLng,
	detailAddress string,
	entranceInfo kernel.EntranceInfo,
) (ChangeDestinationCommand, error) {
	cmd := ChangeDestinationCommand{
		detailAddress: detailAddress,
		entranceInfo:  entranceInfo,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLatLng(latLng),
	); err != nil {
		return ChangeDestinationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDestinationCommand) Validate() error {
	return c.guard.Validate(ErrChangeDestinationCommandIsNotConstructed)
}

// OrderID returns the persistent identity of the order to change.
func (c ChangeDestinationCommand) OrderID() int64 {
	return c.orderID
}

// LatLng returns the new destination coordinates.
func (c ChangeDestinationCommand) LatLng() kernel.LatLng {
	return c.latLng
}

// DetailAddress returns the caller-supplied unit-level address.
func (c ChangeDestinationCommand) DetailAddress() string {
	return c.detailAddress
}

// EntranceInfo returns the entrance details for the new destination.
func (c ChangeDestinationCommand) EntranceInfo() kernel.EntranceInfo {
	return c.entranceInfo
}

func (c *ChangeDestinationCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("order id")
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeDestinationCommand) setLatLng(latLng kernel.LatLng) error {
	if err := latLng.Validate(); err != nil {
		return err
	}
	c.latLng = latLng
	return nil
}
