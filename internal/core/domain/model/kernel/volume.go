package kernel

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrVolumeIsNotConstructed is returned when a Volume was not created via
// NewVolume.
var ErrVolumeIsNotConstructed = errs.NewValueIsRequiredError(
	"volume must be created via NewVolume constructor")

// Volume represents the physical dimensions of an item in millimetres.
// All three dimensions must be positive. The cubic-metre value is derived,
// never stored separately.
type Volume struct { //nolint:recvcheck //using for validation
	lengthMm int64
	widthMm  int64
	heightMm int64
	guard    guard.ConstructorGuard
}

// NewVolume creates a Volume from length, width and height in millimetres.
func NewVolume(lengthMm, widthMm, heightMm int64) (Volume, error) {
	volume := Volume{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		volume.setDimension("length", &volume.lengthMm, lengthMm),
		volume.setDimension("width", &volume.widthMm, widthMm),
		volume.setDimension("height", &volume.heightMm, heightMm),
	); err != nil {
		return Volume{}, err
	}

	return volume, nil
}

// Validate checks that the Volume was created through its constructor.
func (v Volume) Validate() error {
	return v.guard.Validate(ErrVolumeIsNotConstructed)
}

// LengthMm returns the length in millimetres.
func (v Volume) LengthMm() int64 {
	return v.lengthMm
}

// WidthMm returns the width in millimetres.
func (v Volume) WidthMm() int64 {
	return v.widthMm
}

// HeightMm returns the height in millimetres.
func (v Volume) HeightMm() int64 {
	return v.heightMm
}

// CBM returns the volume in cubic metres (mm³ converted to m³).
func (v Volume) CBM() float64 {
	return float64(v.lengthMm) * float64(v.widthMm) * float64(v.heightMm) / 1e9
}

func (v *Volume) setDimension(name string, field *int64, value int64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			name+" is invalid", fmt.Errorf("%d is not greater than 0", value))
	}
	*field = value
	return nil
}
