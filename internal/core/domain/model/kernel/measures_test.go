package kernel_test

import (
	"testing"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("should create non-negative money", func(t *testing.T) {
		money, err := kernel.NewMoney(15000)

		require.NoError(t, err)
		require.NoError(t, money.Validate())
		assert.Equal(t, int64(15000), money.Amount())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero money is valid", func(t *testing.T) {
		money := kernel.ZeroMoney()

		require.NoError(t, money.Validate())
		assert.Equal(t, int64(0), money.Amount())
	})

	t.Run("add and multiply", func(t *testing.T) {
		a, _ := kernel.NewMoney(1000)
		b, _ := kernel.NewMoney(500)

		assert.Equal(t, int64(1500), a.Add(b).Amount())
		assert.Equal(t, int64(3000), a.Multiply(3).Amount())
	})
}

func TestWeight(t *testing.T) {
	t.Run("should create non-negative weight", func(t *testing.T) {
		weight, err := kernel.NewWeight(1200)

		require.NoError(t, err)
		assert.Equal(t, int64(1200), weight.Grams())
	})

	t.Run("should reject negative weight", func(t *testing.T) {
		_, err := kernel.NewWeight(-10)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestVolume(t *testing.T) {
	t.Run("should create volume and derive cbm", func(t *testing.T) {
		// 1m x 1m x 1m box
		volume, err := kernel.NewVolume(1000, 1000, 1000)

		require.NoError(t, err)
		require.NoError(t, volume.Validate())
		assert.InDelta(t, 1.0, volume.CBM(), 1e-9)
	})

	t.Run("should reject non-positive dimensions", func(t *testing.T) {
		tests := []struct {
			name    string
			l, w, h int64
			field   string
		}{
			{"zero length", 0, 10, 10, "length"},
			{"negative width", 10, -1, 10, "width"},
			{"zero height", 10, 10, 0, "height"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := kernel.NewVolume(tt.l, tt.w, tt.h)

				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.field+" is invalid")
			})
		}
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var volume kernel.Volume

		require.ErrorIs(t, volume.Validate(), kernel.ErrVolumeIsNotConstructed)
	})
}
