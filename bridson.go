package poissondisk

import (
	"fmt"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model2d"

	"github.com/voidshard/poissondisk/internal/distribution"
	"github.com/voidshard/poissondisk/internal/grid"
)

// seedAttempts is how many draws Init makes before giving up on the area.
const seedAttempts = 10

// Bridson implements "Fast Poisson Disk Sampling in Arbitrary Dimensions"
// (Robert Bridson, 2007) in two dimensions.
// See https://www.cs.ubc.ca/~rbridson/docs/bridson-siggraph07-poissondisk.pdf
//
// We keep a list of "active" points. Each call to Next picks one at random &
// throws candidates into the ring [r, 2r] around it until one is far enough
// from everything already placed. Active points that fail Attempts times in a
// row are retired; when none are left we're done.
type Bridson struct {
	// Attempts is how many candidates we throw around an active point
	// before retiring it. It has no bearing on Init.
	Attempts int

	grid    *grid.Grid
	active  []int // indexes into grid
	annulus *distribution.Annulus
	area    distribution.UniformRect
}

// NewBridson returns a Bridson that places points at least radius apart,
// strictly within min (bottom left) -> max (top right).
// Nb. this panics if Config.Validate would fail (bad radius, bad area or a grid
// too large), use Config.Algorithm to get an error instead.
func NewBridson(radius float64, min, max model2d.Coord) *Bridson {
	cfg := &Config{Radius: radius, Min: min, Max: max}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return &Bridson{
		Attempts: DefaultAttempts,
		grid:     grid.New(radius, min, max),
		active:   []int{},
		annulus:  distribution.NewAnnulus(radius, 2*radius),
		area:     distribution.UniformRect{Min: min, Max: max},
	}
}

// Active returns how many points are still able to spawn new points.
func (b *Bridson) Active() int {
	return len(b.active)
}

// Init places the first point uniformly at random within the area.
// It must be called once, before Next.
func (b *Bridson) Init(rng Rand) *model2d.Coord {
	// A uniform draw can land exactly on the min edge, which is outside
	// the (open) area. We simply draw again.
	for i := 0; i < seedAttempts; i++ {
		x0 := b.area.Sample(rng)

		index, ok := b.grid.Insert(x0)
		if !ok {
			continue
		}

		b.active = append(b.active, index)
		Logger().Debug("poissondisk: seeded", "x", x0.X, "y", x0.Y, "cells", b.grid.Width()*b.grid.Height())
		return &x0
	}
	panic(fmt.Sprintf("unable to place a seed point within %v -> %v", b.area.Min, b.area.Max))
}

// Next returns the next point or nil if no more points can be placed.
func (b *Bridson) Next(rng Rand) *model2d.Coord {
	for len(b.active) > 0 {
		i := distribution.UniformIndex(rng, len(b.active))

		xi, ok := b.grid.Get(b.active[i])
		if !ok {
			// every active index was set by Insert & grid cells are never cleared
			panic(fmt.Sprintf("active point %d refers to empty grid cell %d", i, b.active[i]))
		}

		for n := 0; n < b.attempts(); n++ {
			x := xi.Add(b.annulus.Sample(rng))
			if !b.grid.CanInsert(x) {
				continue
			}

			index, _ := b.grid.Insert(x) // always in bounds, CanInsert checked
			b.active = append(b.active, index)
			return &x
		}

		essentials.UnorderedDelete(&b.active, i)
		Logger().Debug("poissondisk: retired point", "x", xi.X, "y", xi.Y, "active", len(b.active))

		if len(b.active) == 0 {
			Logger().Debug("poissondisk: exhausted", "points", b.grid.Len())
		}
	}

	return nil
}

// attempts returns Attempts or DefaultAttempts if it isn't set
func (b *Bridson) attempts() int {
	if b.Attempts <= 0 {
		return DefaultAttempts
	}
	return b.Attempts
}
