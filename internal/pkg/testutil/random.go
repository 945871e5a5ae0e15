package testutil

import "math/rand"

// TestSeed is the fixed seed shared by tests that need reproducible witnesses and samples
const TestSeed int64 = 20240601

// NewSeededSource returns a deterministic random source seeded with TestSeed
func NewSeededSource() *rand.Rand {
	return rand.New(rand.NewSource(TestSeed))
}
