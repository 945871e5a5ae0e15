package cryptography

import (
	"math/rand"
	"time"
)

// NewRandomSource returns the seedable random source consumed by the primality oracle,
// the prime generator and the exponent search. A seed of 0 seeds from the clock.
//
// The returned source is not safe for concurrent use; every processor graph owns its own.
func NewRandomSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
