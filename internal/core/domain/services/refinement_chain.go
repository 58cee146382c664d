package services

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// RefinementChain resolves coordinates into an address by trying reverse
// geocoding providers in their configured order. The first provider that
// returns a valid address wins; a provider failure is logged and the chain
// moves on to the next one.
//
// When every provider fails the chain returns an AddressRefineFailedError
// whose cause is the last provider's failure. That error is retryable: the
// expected failure mode is transient upstream unavailability.
type RefinementChain struct {
	providers []ports.ReverseGeocodingProvider
	logger    *slog.Logger
}

// NewRefinementChain creates a chain over the given providers. At least one
// provider is required; the slice order is the fallback order.
func NewRefinementChain(logger *slog.Logger, providers ...ports.ReverseGeocodingProvider) (*RefinementChain, error) {
	if len(providers) == 0 {
		return nil, errs.NewValueIsRequiredError("providers")
	}
	for _, provider := range providers {
		if provider == nil {
			return nil, errs.NewValueIsRequiredError("provider")
		}
	}

	return &RefinementChain{
		providers: providers,
		logger:    logger.With("component", "refinement_chain"),
	}, nil
}

// Refine resolves the coordinates through the provider chain.
func (c *RefinementChain) Refine(ctx context.Context, coords kernel.LatLng) (kernel.Address, error) {
	if err := coords.Validate(); err != nil {
		return kernel.Address{}, err
	}

	var lastFailure error
	for _, provider := range c.providers {
		address, err := provider.Refine(ctx, coords)
		if err != nil {
			lastFailure = errs.NewAddressRefineFailedError(provider.Name(), coords.String(), err)
			c.logger.Warn("provider failed, falling back",
				"provider", provider.Name(),
				"coords", coords.String(),
				"error", err)
			continue
		}

		if err := address.Validate(); err != nil {
			lastFailure = errs.NewAddressRefineFailedError(provider.Name(), coords.String(), err)
			c.logger.Warn("provider returned invalid address, falling back",
				"provider", provider.Name(),
				"coords", coords.String(),
				"error", err)
			continue
		}

		c.logger.Debug("address refined",
			"provider", provider.Name(),
			"coords", coords.String())
		return address, nil
	}

	return kernel.Address{}, errs.NewAddressRefinementExhaustedError(coords.String(), lastFailure)
}
