package tourcopy_test

import (
	"testing"

	"github.com/fwojciec/tourcopy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTourPackage_DiscountPercent(t *testing.T) {
	t.Parallel()

	t.Run("rounds to the nearest percent", func(t *testing.T) {
		t.Parallel()

		pkg := tourcopy.TourPackage{Name: "Standard", Price: 8999, ActualPrice: 11999}

		assert.True(t, pkg.HasDiscount())
		assert.Equal(t, 25, pkg.DiscountPercent())
	})

	t.Run("returns zero without a list price", func(t *testing.T) {
		t.Parallel()

		pkg := tourcopy.TourPackage{Name: "Standard", Price: 8999}

		assert.False(t, pkg.HasDiscount())
		assert.Equal(t, 0, pkg.DiscountPercent())
	})

	t.Run("returns zero when list price is not higher", func(t *testing.T) {
		t.Parallel()

		pkg := tourcopy.TourPackage{Name: "Standard", Price: 8999, ActualPrice: 8999}

		assert.False(t, pkg.HasDiscount())
		assert.Equal(t, 0, pkg.DiscountPercent())
	})
}

func TestTourPackage_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires a name", func(t *testing.T) {
		t.Parallel()

		pkg := tourcopy.TourPackage{Price: 100}

		err := pkg.Validate()

		require.Error(t, err)
		assert.Equal(t, tourcopy.EINVALID, tourcopy.ErrorCode(err))
	})

	t.Run("rejects negative prices", func(t *testing.T) {
		t.Parallel()

		pkg := tourcopy.TourPackage{Name: "Deluxe", Price: -1}

		err := pkg.Validate()

		require.Error(t, err)
		assert.Equal(t, tourcopy.EINVALID, tourcopy.ErrorCode(err))
	})
}
