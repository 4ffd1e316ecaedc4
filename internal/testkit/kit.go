package testkit

import (
	"math/rand"

	"statcalc/domain/stats"
)

// Deterministic sample generators for tests. Every generator takes an explicit
// seed so failures reproduce exactly.

// LinearSample returns y = slope*i + intercept + noise for i in [0, n).
func LinearSample(n int, slope, intercept, noise float64, seed int64) stats.Sample {
	rng := rand.New(rand.NewSource(seed))
	sample := make(stats.Sample, n)
	for i := range sample {
		sample[i] = slope*float64(i) + intercept + rng.NormFloat64()*noise
	}
	return sample
}

// NormalSample returns n draws from N(mean, stdDev).
func NormalSample(n int, mean, stdDev float64, seed int64) stats.Sample {
	rng := rand.New(rand.NewSource(seed))
	sample := make(stats.Sample, n)
	for i := range sample {
		sample[i] = mean + rng.NormFloat64()*stdDev
	}
	return sample
}

// ConstantSample returns n copies of value.
func ConstantSample(n int, value float64) stats.Sample {
	sample := make(stats.Sample, n)
	for i := range sample {
		sample[i] = value
	}
	return sample
}

// Affine returns a*x + b applied elementwise, leaving the input untouched.
func Affine(s stats.Sample, a, b float64) stats.Sample {
	out := make(stats.Sample, len(s))
	for i, v := range s {
		out[i] = a*v + b
	}
	return out
}
