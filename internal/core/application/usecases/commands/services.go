// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, address refinement
// where coordinates are involved, and delegation to a transactional domain
// service.
package commands

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// Domain service interfaces consumed by the command handlers. Narrowed to
// what each handler needs so tests can substitute doubles.
type (
	// AddressRefiner resolves coordinates into refined addresses through the
	// provider fallback chain.
	AddressRefiner interface {
		RefineLocation(ctx context.Context, location order.Location) (order.Location, error)
		RefineAddress(ctx context.Context, coords kernel.LatLng, detailAddress string) (kernel.Address, error)
	}

	// OrderCreator persists a new order and its creation event atomically.
	OrderCreator interface {
		Create(
			ctx context.Context,
			items []order.OrderItem,
			origin order.Location,
			destination order.Location,
			policy order.DeliveryPolicy,
		) (*order.Order, error)
	}

	// LocationChanger applies a destination change to a stored order.
	LocationChanger interface {
		ChangeDestination(
			ctx context.Context,
			orderID int64,
			address kernel.Address,
			latLng kernel.LatLng,
			entranceInfo kernel.EntranceInfo,
		) (*order.Order, error)
	}

	// Transitioner moves stored orders through their terminal transitions.
	Transitioner interface {
		Deliver(ctx context.Context, orderID int64) (*order.Order, error)
		Cancel(ctx context.Context, orderID int64) (*order.Order, error)
	}
)
