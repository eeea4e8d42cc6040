package utils

import (
	"math/rand"
	"time"
)

// RandSource wraps a seeded generator. It is not safe for concurrent use;
// give each goroutine its own source.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a new random source with the given seed.
// A zero seed picks one from the clock.
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NormFloat64 returns a normally distributed random number with mean and stddev
func (r *RandSource) NormFloat64(mean, stddev float64) float64 {
	return r.rng.NormFloat64()*stddev + mean
}

// BernoulliBool returns true with probability p
func (r *RandSource) BernoulliBool(p float64) bool {
	return r.rng.Float64() < p
}

// UniformFloat64 returns a uniformly distributed random number in [min, max)
func (r *RandSource) UniformFloat64(min, max float64) float64 {
	return min + r.rng.Float64()*(max-min)
}

// TruncNormFloat64 draws from a normal distribution restricted to [min, max]
// by resampling, clamping after a bounded number of attempts.
func (r *RandSource) TruncNormFloat64(mean, stddev, min, max float64) float64 {
	for range 64 {
		v := r.NormFloat64(mean, stddev)
		if v >= min && v <= max {
			return v
		}
	}
	return ClampFloat64(mean, min, max)
}

// WeightedIndex picks an index with probability proportional to its weight.
// Negative weights count as zero. It returns -1 when no weight is positive.
func (r *RandSource) WeightedIndex(weights []float64) int {
	total := 0.0
	last := -1
	for i, w := range weights {
		if w > 0 {
			total += w
			last = i
		}
	}
	if last < 0 {
		return -1
	}

	target := r.rng.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if target < w {
			return i
		}
		target -= w
	}
	return last
}
