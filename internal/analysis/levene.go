package analysis

import (
	"math"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"statcalc/domain/stats"
	"statcalc/internal/errors"
)

// TestEqualVariances runs Levene's test for homogeneity of variance between
// two samples, using the median-centered (Brown-Forsythe) variant: absolute
// deviations from each group's median, then a one-way ANOVA F-test on those
// deviations. The decision is EqualVariances = PValue > alpha.
func TestEqualVariances(a, b stats.Sample, alpha float64) (stats.VarianceDecision, error) {
	if err := validateSample("sample A", a); err != nil {
		return stats.VarianceDecision{}, err
	}
	if err := validateSample("sample B", b); err != nil {
		return stats.VarianceDecision{}, err
	}
	if alpha <= 0 || alpha >= 1 {
		return stats.VarianceDecision{}, errors.InvalidInputf("significance threshold must be in (0, 1), got %g", alpha)
	}

	zA, err := absDeviationsFromMedian(a)
	if err != nil {
		return stats.VarianceDecision{}, err
	}
	zB, err := absDeviationsFromMedian(b)
	if err != nil {
		return stats.VarianceDecision{}, err
	}

	nA := float64(len(zA))
	nB := float64(len(zB))
	total := nA + nB
	groups := 2.0

	meanA, _ := mstats.Mean(zA)
	meanB, _ := mstats.Mean(zB)
	grand := (nA*meanA + nB*meanB) / total

	between := nA*(meanA-grand)*(meanA-grand) + nB*(meanB-grand)*(meanB-grand)
	within := sumSquaredDeviations(zA, meanA) + sumSquaredDeviations(zB, meanB)

	if within == 0 {
		if between == 0 {
			// Both groups collapse to constants; the F-statistic is 0/0.
			return stats.VarianceDecision{}, errors.DegenerateInput("both samples have zero deviation spread, variance test undefined")
		}
		// Identical deviations within each group but not between them.
		return stats.VarianceDecision{
			Statistic:      math.Inf(1),
			PValue:         0,
			EqualVariances: false,
			Alpha:          alpha,
		}, nil
	}

	statistic := (between / (groups - 1)) / (within / (total - groups))

	fDist := distuv.F{D1: groups - 1, D2: total - groups}
	pValue := 1 - fDist.CDF(statistic)

	return stats.VarianceDecision{
		Statistic:      statistic,
		PValue:         pValue,
		EqualVariances: pValue > alpha,
		Alpha:          alpha,
	}, nil
}

func absDeviationsFromMedian(s stats.Sample) ([]float64, error) {
	median, err := mstats.Median([]float64(s))
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute median")
	}

	deviations := make([]float64, len(s))
	for i, v := range s {
		deviations[i] = math.Abs(v - median)
	}
	return deviations, nil
}

func sumSquaredDeviations(values []float64, mean float64) float64 {
	sum := 0.0
	for _, v := range values {
		diff := v - mean
		sum += diff * diff
	}
	return sum
}
