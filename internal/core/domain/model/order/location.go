package order

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when a Location was not created via
// NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is a point an order travels between: a contact, a postal address,
// coordinates and optional building entrance details. Origin and Destination
// are both Locations.
type Location struct { //nolint:recvcheck //using for validation
	contact      kernel.Contact
	address      kernel.Address
	latLng       kernel.LatLng
	entranceInfo kernel.EntranceInfo
	guard        guard.ConstructorGuard
}

// NewLocation creates a Location. Contact, address and coordinates are
// required and must be properly constructed; entranceInfo defaults to empty.
func NewLocation(
	contact kernel.Contact,
	address kernel.Address,
	latLng kernel.LatLng,
	entranceInfo kernel.EntranceInfo,
) (Location, error) {
	location := Location{
		entranceInfo: entranceInfo,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		location.setContact(contact),
		location.setAddress(address),
		location.setLatLng(latLng),
	); err != nil {
		return Location{}, err
	}

	return location, nil
}

// Validate checks that the Location was created through its constructor.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Contact returns the person reachable at the location.
func (l Location) Contact() kernel.Contact {
	return l.contact
}

// Address returns the postal address.
func (l Location) Address() kernel.Address {
	return l.address
}

// LatLng returns the geographic coordinates.
func (l Location) LatLng() kernel.LatLng {
	return l.latLng
}

// EntranceInfo returns the building entrance details, possibly empty.
func (l Location) EntranceInfo() kernel.EntranceInfo {
	return l.entranceInfo
}

func (l *Location) setContact(contact kernel.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	l.contact = contact
	return nil
}

func (l *Location) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	l.address = address
	return nil
}

func (l *Location) setLatLng(latLng kernel.LatLng) error {
	if err := latLng.Validate(); err != nil {
		return err
	}
	l.latLng = latLng
	return nil
}
