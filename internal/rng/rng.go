package rng

// Generator provides a simple random number.
// Deck shuffling, equity sampling, and the automated players' bluffing
// branches all draw from an explicit Generator so that a fixed seed
// reproduces a game.
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}
