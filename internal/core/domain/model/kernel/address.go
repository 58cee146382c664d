package kernel

import (
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created via
// NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents a postal address made of a jibun (cadastral) address, a
// road address and an optional detail line. At least one of jibun or road
// address must be present; the detail line is always optional.
type Address struct { //nolint:recvcheck //using for validation
	jibunAddress  string
	roadAddress   string
	detailAddress string
	guard         guard.ConstructorGuard
}

// NewAddress creates an Address. It fails with a ValueIsRequiredError when
// both the jibun and road addresses are blank.
func NewAddress(jibunAddress, roadAddress, detailAddress string) (Address, error) {
	if strings.TrimSpace(jibunAddress) == "" && strings.TrimSpace(roadAddress) == "" {
		return Address{}, errs.NewValueIsRequiredError("jibun address or road address")
	}

	return Address{
		jibunAddress:  jibunAddress,
		roadAddress:   roadAddress,
		detailAddress: detailAddress,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Address was created through its constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// JibunAddress returns the cadastral address line. May be empty when a road
// address is present.
func (a Address) JibunAddress() string {
	return a.jibunAddress
}

// RoadAddress returns the road address line. May be empty when a jibun
// address is present.
func (a Address) RoadAddress() string {
	return a.roadAddress
}

// DetailAddress returns the free-form detail line (building, floor, unit).
func (a Address) DetailAddress() string {
	return a.detailAddress
}
