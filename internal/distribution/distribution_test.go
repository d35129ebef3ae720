package distribution

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// fixedSource returns the given values from Float64 in order, looping.
type fixedSource struct {
	vals []float64
	i    int
}

func (f *fixedSource) Float64() float64 {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	return v
}

func (f *fixedSource) Intn(n int) int {
	return int(f.Float64() * float64(n))
}

func TestUniform_Sample(t *testing.T) {
	u := Uniform{Low: -2, High: 6}

	assert.Equal(t, -2.0, u.Sample(&fixedSource{vals: []float64{0}}))
	assert.Equal(t, 2.0, u.Sample(&fixedSource{vals: []float64{0.5}}))
	assert.InDelta(t, 6.0, u.Sample(&fixedSource{vals: []float64{0.999999}}), 1e-4)
}

func TestUniformRect_Sample(t *testing.T) {
	r := UniformRect{}
	r.Min.X, r.Min.Y = 1, 10
	r.Max.X, r.Max.Y = 3, 20

	p := r.Sample(&fixedSource{vals: []float64{0.5, 0.25}})
	assert.Equal(t, 2.0, p.X)
	assert.Equal(t, 12.5, p.Y)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		p := r.Sample(rng)
		require.True(t, p.X >= 1 && p.X < 3, "x out of range: %v", p)
		require.True(t, p.Y >= 10 && p.Y < 20, "y out of range: %v", p)
	}
}

func TestUniformIndex(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		n := UniformIndex(rng, 5)
		require.True(t, n >= 0 && n < 5)
		seen[n] = true
	}
	assert.Len(t, seen, 5)
}

func TestAnnulus_Bounds(t *testing.T) {
	for _, r := range []float64{0.001, 1, 3.5, 250} {
		a := NewAnnulus(r, 2*r)
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 10000; i++ {
			v := a.Sample(rng)
			length := v.Norm()
			require.GreaterOrEqual(t, length, r*(1-1e-9))
			require.LessOrEqual(t, length, 2*r*(1+1e-9))
		}
	}
}

func TestAnnulus_Extremes(t *testing.T) {
	a := NewAnnulus(1, 2)

	// radius draw 0 -> inner ring, angle draw 0 -> +x axis
	v := a.Sample(&fixedSource{vals: []float64{0, 0}})
	assert.InDelta(t, 1.0, v.X, 1e-12)
	assert.InDelta(t, 0.0, v.Y, 1e-12)

	// radius draw 0.5 -> sqrt((1+4)/2), angle draw 0.25 -> +y axis
	v = a.Sample(&fixedSource{vals: []float64{0.5, 0.25}})
	assert.InDelta(t, 0.0, v.X, 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), v.Y, 1e-12)
}

func TestAnnulus_UniformByArea(t *testing.T) {
	// half the area of the ring [1, 2] lies inside sqrt(2.5)
	a := NewAnnulus(1, 2)
	rng := rand.New(rand.NewSource(11))

	n := 20000
	inner := 0
	for i := 0; i < n; i++ {
		v := a.Sample(rng)
		if v.Dot(v) < 2.5 {
			inner++
		}
	}

	assert.InDelta(t, 0.5, float64(inner)/float64(n), 0.02)
}

func TestAnnulus_AngleUniform(t *testing.T) {
	const bins = 16
	const n = 16000

	a := NewAnnulus(1, 2)
	rng := rand.New(rand.NewSource(99))

	obs := make([]float64, bins)
	for i := 0; i < n; i++ {
		v := a.Sample(rng)
		theta := math.Atan2(v.Y, v.X)
		if theta < 0 {
			theta += 2 * math.Pi
		}
		b := int(theta / (2 * math.Pi) * bins)
		if b >= bins {
			b = bins - 1
		}
		obs[b]++
	}

	exp := make([]float64, bins)
	for i := range exp {
		exp[i] = n / bins
	}

	chi := stat.ChiSquare(obs, exp)
	p := distuv.ChiSquared{K: bins - 1}.Survival(chi)
	assert.Greater(t, p, 0.001, "angles look non uniform: chi^2 %v", chi)
}
