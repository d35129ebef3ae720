package distribution

import (
	"github.com/unixpickle/model3d/model2d"
)

// Source is the randomness we draw from. *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64

	// Intn returns a uniform value in [0, n)
	Intn(n int) int
}

// Uniform is a uniform distribution over the scalar range [Low, High].
type Uniform struct {
	Low  float64
	High float64
}

// Sample draws a single value from u.
func (u Uniform) Sample(src Source) float64 {
	return u.Low + src.Float64()*(u.High-u.Low)
}

// UniformRect is a uniform distribution over the rectangle spanned by Min & Max.
// X is drawn before Y.
type UniformRect struct {
	Min model2d.Coord
	Max model2d.Coord
}

// Sample draws a single point from r.
func (r UniformRect) Sample(src Source) model2d.Coord {
	x := Uniform{Low: r.Min.X, High: r.Max.X}.Sample(src)
	y := Uniform{Low: r.Min.Y, High: r.Max.Y}.Sample(src)
	return model2d.Coord{X: x, Y: y}
}

// UniformIndex picks an index in [0, n).
// Nb. n must be > 0
func UniformIndex(src Source, n int) int {
	return src.Intn(n)
}
