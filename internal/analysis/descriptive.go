package analysis

import (
	"math"

	mstats "github.com/montanaflynn/stats"

	"statcalc/domain/stats"
	"statcalc/internal/errors"
)

// minSampleSize is the smallest sample for which a sample variance is defined.
const minSampleSize = 2

// validateSample checks the basic input contract shared by every calculator:
// at least minSampleSize finite observations. The name identifies the failing
// sample in the error message.
func validateSample(name string, s stats.Sample) error {
	if len(s) < minSampleSize {
		return errors.InvalidInputf("%s must contain at least %d values, got %d", name, minSampleSize, len(s))
	}
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.InvalidInputf("%s contains a non-finite value at index %d", name, i)
		}
	}
	return nil
}

// Describe computes the mean, sample variance (n-1 denominator) and standard
// deviation of a single sample.
func Describe(s stats.Sample) (stats.Descriptive, error) {
	if err := validateSample("sample", s); err != nil {
		return stats.Descriptive{}, err
	}

	mean, err := mstats.Mean([]float64(s))
	if err != nil {
		return stats.Descriptive{}, errors.Wrap(err, "failed to compute mean")
	}
	variance, err := mstats.SampleVariance([]float64(s))
	if err != nil {
		return stats.Descriptive{}, errors.Wrap(err, "failed to compute variance")
	}

	return stats.Descriptive{
		N:        len(s),
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}, nil
}
