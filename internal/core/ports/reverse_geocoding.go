package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
)

// ReverseGeocodingProvider resolves geographic coordinates into a postal
// address. Providers are external services: calls may fail or time out, and
// the refinement chain tries the next provider on any failure.
type ReverseGeocodingProvider interface {
	// Name identifies the provider in configuration, logs and errors.
	Name() string

	// Refine resolves the coordinates into an address. A failure is wrapped
	// by the caller into an AddressRefineFailedError carrying the provider
	// name and the coordinates.
	Refine(ctx context.Context, coords kernel.LatLng) (kernel.Address, error)
}
