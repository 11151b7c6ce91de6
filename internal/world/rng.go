package world

import "math/rand"

// RNG is the random source consumed by generation and spawning.
// Swap in a seeded source to make a level reproducible.
type RNG interface {
	// Range returns a uniform integer in [lo, hi).
	Range(lo, hi int) int
	// Roll returns the sum of n rolls of a die with the given number of sides.
	Roll(n, die int) int
}

// Dice is an RNG backed by math/rand.
type Dice struct {
	seed int64
	rng  *rand.Rand
}

// NewRNG creates a deterministic RNG for the given seed.
func NewRNG(seed int64) *Dice {
	return &Dice{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the RNG was created with.
func (d *Dice) Seed() int64 {
	return d.seed
}

// Range returns a uniform integer in [lo, hi). If hi <= lo it returns lo.
func (d *Dice) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + d.rng.Intn(hi-lo)
}

// Roll returns the sum of n rolls of 1..die. A die with fewer than one side rolls 0.
func (d *Dice) Roll(n, die int) int {
	if die < 1 {
		return 0
	}
	total := 0
	for i := 0; i < n; i++ {
		total += 1 + d.rng.Intn(die)
	}
	return total
}
