package utils

import (
	"math/rand"
)

// RandomFloat returns a random float64 between 0.0 and 1.0
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// SeededFloat returns a float source backed by the given *rand.Rand.
// Systems take a func() float64 so tests can pass a seeded source.
func SeededFloat(r *rand.Rand) func() float64 {
	return r.Float64
}

// SeededInt returns an int source backed by the given *rand.Rand
func SeededInt(r *rand.Rand) func(min, max int) int {
	return func(min, max int) int {
		if min > max {
			return min
		}
		return r.Intn(max-min+1) + min
	}
}
