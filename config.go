package poissondisk

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"

	"github.com/voidshard/poissondisk/internal/grid"
)

// DefaultAttempts is how many candidates we try around an active point before
// giving up on it.
const DefaultAttempts = 30

var (
	// ErrInvalidRadius implies the radius is not a positive, finite number.
	ErrInvalidRadius = errors.New("radius must be positive and finite")

	// ErrInvalidExtent implies Min is not strictly below Max on both axes.
	ErrInvalidExtent = errors.New("extent min must be below max on both axes")

	// ErrInvalidAttempts implies a negative number of attempts.
	ErrInvalidAttempts = errors.New("attempts must not be negative")

	// ErrTooManyCells implies the radius is too small for the area; the grid
	// would need more than MaxCells cells.
	ErrTooManyCells = errors.New("radius too small for area")
)

// MaxCells caps the size of the grid backing a session (16 bytes a cell).
const MaxCells = 1 << 24

// Config holds settings for a single sampling session.
type Config struct {
	// Radius is the minimum distance between any two points, required.
	Radius float64

	// Min (bottom left) & Max (top right) bound the area we sample.
	// Points are always strictly inside, never on an edge.
	Min model2d.Coord
	Max model2d.Coord

	// Attempts made around an active point before it is retired.
	// DefaultAttempts is used if 0.
	Attempts int

	// Seed for rng (random number chosen if not set)
	Seed int64
}

// Validate returns an error if the config can't be used to sample.
func (c *Config) Validate() error {
	if !(c.Radius > 0) || math.IsInf(c.Radius, 0) {
		return errors.Wrapf(ErrInvalidRadius, "radius %v", c.Radius)
	}
	if !finite(c.Min) || !finite(c.Max) || !(c.Min.X < c.Max.X) || !(c.Min.Y < c.Max.Y) {
		return errors.Wrapf(ErrInvalidExtent, "min %v max %v", c.Min, c.Max)
	}
	if c.Attempts < 0 {
		return errors.Wrapf(ErrInvalidAttempts, "attempts %d", c.Attempts)
	}

	w, h := grid.Dimensions(c.Radius, c.Min, c.Max)
	if math.IsInf(w, 0) || math.IsInf(h, 0) || w*h > MaxCells {
		return errors.Wrapf(ErrTooManyCells, "radius %v needs %v x %v cells", c.Radius, w, h)
	}
	return nil
}

// Algorithm returns a new Bridson set up as per the config.
func (c *Config) Algorithm() (*Bridson, error) {
	err := c.Validate()
	if err != nil {
		return nil, err
	}

	b := NewBridson(c.Radius, c.Min, c.Max)
	if c.Attempts > 0 {
		b.Attempts = c.Attempts
	}
	return b, nil
}

// seed returns the configured seed or a random one if unset
func (c *Config) seed() int64 {
	if c.Seed == 0 {
		return time.Now().UnixNano()
	}
	return c.Seed
}

// finite returns if both components of c are real numbers
func finite(c model2d.Coord) bool {
	return !math.IsNaN(c.X) && !math.IsInf(c.X, 0) && !math.IsNaN(c.Y) && !math.IsInf(c.Y, 0)
}
