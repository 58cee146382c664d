package kernel_test

import (
	"testing"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLatLng(t *testing.T) {
	t.Run("should create valid coordinates", func(t *testing.T) {
		latLng, err := kernel.NewLatLng(37.123, 127.456)

		require.NoError(t, err)
		require.NoError(t, latLng.Validate())
		assert.InDelta(t, 37.123, latLng.Latitude(), 1e-9)
		assert.InDelta(t, 127.456, latLng.Longitude(), 1e-9)
	})

	t.Run("should accept boundary values", func(t *testing.T) {
		tests := []struct {
			name string
			lat  float64
			lng  float64
		}{
			{"south pole", -90, 0},
			{"north pole", 90, 0},
			{"date line west", 0, -180},
			{"date line east", 0, 180},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := kernel.NewLatLng(tt.lat, tt.lng)
				require.NoError(t, err)
			})
		}
	})

	t.Run("should fail with out-of-range latitude", func(t *testing.T) {
		_, err := kernel.NewLatLng(90.001, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("should fail with out-of-range longitude", func(t *testing.T) {
		_, err := kernel.NewLatLng(0, -180.5)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "longitude")
	})

	t.Run("should join errors when both coordinates are invalid", func(t *testing.T) {
		_, err := kernel.NewLatLng(-91, 181)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestLatLng_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var latLng kernel.LatLng

		require.Error(t, latLng.Validate())
		require.ErrorIs(t, latLng.Validate(), kernel.ErrLatLngIsNotConstructed)
	})
}

func TestLatLng_IsEqual(t *testing.T) {
	a, _ := kernel.NewLatLng(37.123, 127.456)
	b, _ := kernel.NewLatLng(37.123, 127.456)
	c, _ := kernel.NewLatLng(35.0, 129.0)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)

	var zero kernel.LatLng
	_, err = a.IsEqual(zero)
	require.Error(t, err)
}

func TestLatLng_String(t *testing.T) {
	latLng, _ := kernel.NewLatLng(37.123, 127.456)

	assert.Equal(t, "LatLng(37.123000,127.456000)", latLng.String())
}
