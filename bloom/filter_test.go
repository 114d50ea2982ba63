package bloom_test

import (
	"testing"

	"github.com/fwojciec/tourcopy/bloom"
	"github.com/stretchr/testify/assert"
)

func TestDoorkeeper_Admit(t *testing.T) {
	t.Parallel()

	t.Run("admits a hash on its second sighting", func(t *testing.T) {
		t.Parallel()

		d := bloom.NewDoorkeeper(1000, 0.01)

		assert.False(t, d.Admit(42))
		assert.True(t, d.Admit(42))
		assert.True(t, d.Admit(42))
	})

	t.Run("tracks hashes independently", func(t *testing.T) {
		t.Parallel()

		d := bloom.NewDoorkeeper(1000, 0.01)

		assert.False(t, d.Admit(1))
		assert.False(t, d.Admit(2))
		assert.True(t, d.Admit(1))
	})

	t.Run("forgets hashes after reset", func(t *testing.T) {
		t.Parallel()

		d := bloom.NewDoorkeeper(1000, 0.01)
		d.Admit(7)

		d.Reset()

		assert.Equal(t, uint(0), d.EstimatedCount())
		assert.False(t, d.Admit(7))
	})
}

func TestDoorkeeper_EstimatedCount(t *testing.T) {
	t.Parallel()

	d := bloom.NewDoorkeeper(1000, 0.01)

	assert.Equal(t, uint(0), d.EstimatedCount())

	d.Admit(1)
	d.Admit(2)
	d.Admit(3)

	count := d.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}
