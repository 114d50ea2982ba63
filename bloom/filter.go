// Package bloom provides cache admission using Bloom filters.
package bloom

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bloom/v3"
)

// Doorkeeper remembers content hashes it has been shown. A hash is admitted
// on its second sighting, so one-off inputs never occupy a cache slot.
// Doorkeeper is not safe for concurrent use.
type Doorkeeper struct {
	f *bloom.BloomFilter
}

// NewDoorkeeper creates a Doorkeeper sized for n expected hashes with the
// given false positive rate.
func NewDoorkeeper(n uint, fpRate float64) *Doorkeeper {
	return &Doorkeeper{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Admit records hash and reports whether it had been seen before.
// False positives are possible; false negatives are not.
func (d *Doorkeeper) Admit(hash uint64) bool {
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], hash)
	return d.f.TestOrAdd(key[:])
}

// Reset forgets every recorded hash.
func (d *Doorkeeper) Reset() {
	d.f.ClearAll()
}

// EstimatedCount returns the approximate number of recorded hashes.
func (d *Doorkeeper) EstimatedCount() uint {
	return uint(d.f.ApproximatedSize())
}
