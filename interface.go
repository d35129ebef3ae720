package poissondisk

import (
	"github.com/unixpickle/model3d/model2d"
)

// Rand is the source of randomness used for sampling.
// *rand.Rand (math/rand) satisfies this.
//
// A Rand is only used by one sampling call at a time; it's not shared.
type Rand interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64

	// Intn returns a uniform value in [0, n)
	Intn(n int) int
}

// Algorithm is something that can produce a Poisson disk point set one point at a time.
// Bridson is the implementation we ship.
type Algorithm interface {
	// Init places the first point. It should be called exactly once, before
	// any call to Next.
	Init(rng Rand) *model2d.Coord

	// Next returns the next accepted point or nil when there are no more.
	// Once nil has been returned every later call also returns nil.
	Next(rng Rand) *model2d.Coord
}
