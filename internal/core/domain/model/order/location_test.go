package order_test

import (
	"testing"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	contact, err := kernel.NewContact("Kim Minsoo", "010-1234-5678")
	require.NoError(t, err)
	address, err := kernel.NewAddress("Yeoksam-dong 737", "", "3F")
	require.NoError(t, err)
	latLng, err := kernel.NewLatLng(37.4979, 127.0276)
	require.NoError(t, err)

	t.Run("should create valid location with entrance info", func(t *testing.T) {
		entrance := kernel.NewEntranceInfo("1234#", "side door", "call on arrival")

		location, err := order.NewLocation(contact, address, latLng, entrance)

		require.NoError(t, err)
		require.NoError(t, location.Validate())
		assert.Equal(t, contact, location.Contact())
		assert.Equal(t, address, location.Address())
		assert.Equal(t, latLng, location.LatLng())
		assert.Equal(t, entrance, location.EntranceInfo())
	})

	t.Run("should default to empty entrance info", func(t *testing.T) {
		location, err := order.NewLocation(contact, address, latLng, kernel.EmptyEntranceInfo())

		require.NoError(t, err)
		assert.True(t, location.EntranceInfo().IsEmpty())
	})

	t.Run("should fail with unconstructed contact", func(t *testing.T) {
		var invalidContact kernel.Contact

		_, err := order.NewLocation(invalidContact, address, latLng, kernel.EmptyEntranceInfo())

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed address", func(t *testing.T) {
		var invalidAddress kernel.Address

		_, err := order.NewLocation(contact, invalidAddress, latLng, kernel.EmptyEntranceInfo())

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed coordinates", func(t *testing.T) {
		var invalidLatLng kernel.LatLng

		_, err := order.NewLocation(contact, address, invalidLatLng, kernel.EmptyEntranceInfo())

		require.Error(t, err)
	})
}

func TestLocation_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var location order.Location

		err := location.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "location must be created")
	})
}
