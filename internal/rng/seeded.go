package rng

import "math/rand"

// Seeded is a Generator backed by math/rand with a fixed seed.
// Games and simulations are reproducible when every call site draws from
// a Seeded generator instead of the process-wide source.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a Generator seeded with the provided value
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))} // nolint:gosec
}

// Intn returns a random number up to but not including n
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}
