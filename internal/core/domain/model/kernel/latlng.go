package kernel

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0
)

// ErrLatLngIsNotConstructed is returned when a LatLng was not created via
// NewLatLng.
var ErrLatLngIsNotConstructed = errs.NewValueIsRequiredError(
	"latLng must be created via NewLatLng constructor")

// LatLng represents a validated geographic coordinate pair in degrees.
// Latitude is bounded to [-90, 90], longitude to [-180, 180]. The zero value
// is invalid; use NewLatLng.
//
// Example:
//
//	coords, err := kernel.NewLatLng(37.123, 127.456)
//	if err != nil {
//	    // handle validation error
//	}
type LatLng struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLatLng creates a LatLng with the given latitude and longitude in degrees.
// Returns a ValueIsOutOfRangeError if either coordinate is out of bounds.
func NewLatLng(latitude float64, longitude float64) (LatLng, error) {
	latLng := LatLng{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(latLng.setLatitude(latitude), latLng.setLongitude(longitude)); err != nil {
		return LatLng{}, err
	}

	return latLng, nil
}

// Validate checks that the LatLng was created through its constructor.
func (l LatLng) Validate() error {
	return l.guard.Validate(ErrLatLngIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (l LatLng) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in degrees.
func (l LatLng) Longitude() float64 {
	return l.longitude
}

// IsEqual compares two coordinate pairs for exact equality. Both must be
// properly constructed.
func (l LatLng) IsEqual(other LatLng) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.latitude == other.latitude && l.longitude == other.longitude, nil
}

// String returns "LatLng(lat,lng)" with six decimal places. Implements
// fmt.Stringer; used in refinement diagnostics.
func (l LatLng) String() string {
	return fmt.Sprintf("LatLng(%f,%f)", l.latitude, l.longitude)
}

func (l *LatLng) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	l.latitude = latitude
	return nil
}

func (l *LatLng) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}
	l.longitude = longitude
	return nil
}
