package poissondisk

import (
	"math/rand"

	"github.com/unixpickle/model3d/model2d"
)

// Sampler hands out points from an Algorithm one at a time.
// The first call to Next seeds the algorithm, every following call asks it for
// another point. A Sampler is single use; once Next returns nil make a new
// Sampler (with a new Algorithm) to go again.
type Sampler struct {
	rng  Rand
	algo Algorithm

	started bool
	done    bool
	count   int
}

// NewSampler returns a Sampler drawing randomness from rng.
// The Sampler takes ownership of both rng & algo.
func NewSampler(rng Rand, algo Algorithm) *Sampler {
	return &Sampler{rng: rng, algo: algo}
}

// Next returns the next point, or nil if there are no more.
func (s *Sampler) Next() *model2d.Coord {
	if s.done {
		return nil
	}

	var p *model2d.Coord
	if !s.started {
		s.started = true
		p = s.algo.Init(s.rng)
	} else {
		p = s.algo.Next(s.rng)
	}

	if p == nil {
		s.done = true
		return nil
	}

	s.count++
	return p
}

// Count returns how many points have been handed out so far.
func (s *Sampler) Count() int {
	return s.count
}

// Sample runs a full session for the given config & returns every point,
// in the order they were placed.
func Sample(cfg *Config) ([]model2d.Coord, error) {
	algo, err := cfg.Algorithm()
	if err != nil {
		return nil, err
	}

	s := NewSampler(rand.New(rand.NewSource(cfg.seed())), algo)

	pnts := []model2d.Coord{}
	for p := s.Next(); p != nil; p = s.Next() {
		pnts = append(pnts, *p)
	}

	return pnts, nil
}
