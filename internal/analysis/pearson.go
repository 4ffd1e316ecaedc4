package analysis

import (
	"math"

	"statcalc/domain/stats"
	"statcalc/internal/errors"
)

// ComputePearsonR computes Pearson's correlation coefficient between two
// equal-length samples from a single pass over the sums of products and sums
// of squares:
//
//	r = (n*Σxy - Σx*Σy) / sqrt((n*Σx² - (Σx)²) * (n*Σy² - (Σy)²))
//
// The result is clamped to [-1, 1] to absorb floating-point rounding past the
// theoretical bound.
func ComputePearsonR(x, y stats.Sample) (stats.CorrelationResult, error) {
	if len(x) != len(y) {
		return stats.CorrelationResult{}, errors.InvalidInputf("samples must have equal length, got %d and %d", len(x), len(y))
	}
	if err := validateSample("sample X", x); err != nil {
		return stats.CorrelationResult{}, err
	}
	if err := validateSample("sample Y", y); err != nil {
		return stats.CorrelationResult{}, err
	}

	n := float64(len(x))
	var sumX, sumY, sumXY, sumXX, sumYY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumXX += x[i] * x[i]
		sumYY += y[i] * y[i]
	}

	// Rounding can push a zero-variance factor slightly negative, so treat
	// anything non-positive as a zero denominator.
	denX := n*sumXX - sumX*sumX
	denY := n*sumYY - sumY*sumY
	if denX <= 0 {
		return stats.CorrelationResult{}, errors.DegenerateInput("sample X has zero variance, correlation undefined")
	}
	if denY <= 0 {
		return stats.CorrelationResult{}, errors.DegenerateInput("sample Y has zero variance, correlation undefined")
	}

	r := (n*sumXY - sumX*sumY) / math.Sqrt(denX*denY)

	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}

	return stats.CorrelationResult{R: r}, nil
}
