package distribution

import (
	"math"

	"github.com/unixpickle/model3d/model2d"
)

// Annulus samples offsets whose length lies within [low, high].
//
// Points are uniform by area over the ring rather than uniform by radius;
// we draw the squared radius uniformly & take the square root, which is the
// usual disk point picking trick adapted to a ring.
type Annulus struct {
	radius Uniform // over low^2 .. high^2
	angle  Uniform // over 0 .. 2pi
}

// NewAnnulus returns an Annulus with inner radius low & outer radius high.
func NewAnnulus(low, high float64) *Annulus {
	return &Annulus{
		radius: Uniform{Low: low * low, High: high * high},
		angle:  Uniform{Low: 0, High: 2 * math.Pi},
	}
}

// Sample returns an offset vector from the origin.
// The radius is drawn first, then the angle.
func (a *Annulus) Sample(src Source) model2d.Coord {
	r := math.Sqrt(a.radius.Sample(src))
	sin, cos := math.Sincos(a.angle.Sample(src))
	return model2d.Coord{X: r * cos, Y: r * sin}
}
