package commands_test

import (
	"errors"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeDestinationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	latLng, err := kernel.NewLatLng(37.5665, 126.978)
	require.NoError(t, err)
	entrance := kernel.NewEntranceInfo("1234", "side gate", "leave at door")

	cmd, err := commands.NewChangeDestinationCommand(7, latLng, "Suite 901", entrance)
	require.NoError(t, err)

	refined, err := kernel.NewAddress("Euljiro 2-ga", "Euljiro 30", "Suite 901")
	require.NoError(t, err)
	updated := persistedOrder(t)

	refiner := new(MockAddressRefiner)
	changer := new(MockLocationChanger)
	mock.InOrder(
		refiner.On("RefineAddress", ctx, latLng, "Suite 901").Return(refined, nil).Once(),
		changer.On("ChangeDestination", ctx, int64(7), refined, latLng, entrance).
			Return(updated, nil).Once(),
	)

	h := commands.NewChangeDestinationCommandHandler(refiner, changer)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Same(t, updated, result)
	refiner.AssertExpectations(t)
	changer.AssertExpectations(t)
}

func TestChangeDestinationCommandHandler_Handle_RefinementFails(t *testing.T) {
	ctx := t.Context()
	latLng, err := kernel.NewLatLng(37.5665, 126.978)
	require.NoError(t, err)

	cmd, err := commands.NewChangeDestinationCommand(7, latLng, "", kernel.EmptyEntranceInfo())
	require.NoError(t, err)

	refineErr := errors.New("all providers down")

	refiner := new(MockAddressRefiner)
	refiner.On("RefineAddress", ctx, latLng, "").Return(kernel.Address{}, refineErr).Once()
	changer := new(MockLocationChanger)

	h := commands.NewChangeDestinationCommandHandler(refiner, changer)
	result, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, refineErr)
	require.Nil(t, result)
	changer.AssertNotCalled(t, "ChangeDestination")
}

func TestChangeDestinationCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	refiner := new(MockAddressRefiner)
	changer := new(MockLocationChanger)

	h := commands.NewChangeDestinationCommandHandler(refiner, changer)
	result, err := h.Handle(t.Context(), commands.ChangeDestinationCommand{})

	require.ErrorIs(t, err, commands.ErrChangeDestinationCommandIsNotConstructed)
	require.Nil(t, result)
	refiner.AssertNotCalled(t, "RefineAddress")
}
