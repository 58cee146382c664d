package services

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// AddressRefiner rebuilds order locations with addresses resolved from their
// coordinates. Callers supply a location whose address may be coarse or
// user-typed; the refiner replaces it with the provider-resolved one, keeping
// the contact, coordinates and entrance info.
//
// The user-supplied detail address survives refinement: providers resolve
// down to the building, not the unit.
type AddressRefiner struct {
	chain *RefinementChain
}

// NewAddressRefiner creates an AddressRefiner over the given chain.
func NewAddressRefiner(chain *RefinementChain) *AddressRefiner {
	return &AddressRefiner{chain: chain}
}

// RefineLocation resolves the location's coordinates and returns a copy of
// the location carrying the refined address.
func (r *AddressRefiner) RefineLocation(ctx context.Context, location order.Location) (order.Location, error) {
	refined, err := r.RefineAddress(ctx, location.LatLng(), location.Address().DetailAddress())
	if err != nil {
		return order.Location{}, err
	}

	return order.NewLocation(location.Contact(), refined, location.LatLng(), location.EntranceInfo())
}

// RefineAddress resolves coordinates into an address and attaches the given
// detail address to it.
func (r *AddressRefiner) RefineAddress(
	ctx context.Context,
	coords kernel.LatLng,
	detailAddress string,
) (kernel.Address, error) {
	resolved, err := r.chain.Refine(ctx, coords)
	if err != nil {
		return kernel.Address{}, err
	}

	return kernel.NewAddress(resolved.JibunAddress(), resolved.RoadAddress(), detailAddress)
}
