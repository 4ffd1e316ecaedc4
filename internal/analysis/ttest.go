package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"statcalc/domain/stats"
	"statcalc/internal/errors"
)

// sizeImbalanceRatio is the sample-size difference beyond which the result is
// flagged as less reliable.
const sizeImbalanceRatio = 0.1

// ComputeTTest runs an independent two-sample t-test. The equalVariances
// decision selects the formula: pooled variance with nA+nB-2 degrees of
// freedom when true, Welch's standard error with Welch-Satterthwaite degrees
// of freedom when false. The caller wires in the decision (normally from
// TestEqualVariances); the calculator never invokes the variance test itself,
// which keeps the two independently testable.
func ComputeTTest(a, b stats.Sample, equalVariances bool) (stats.TTestResult, error) {
	descA, err := describeAs("sample A", a)
	if err != nil {
		return stats.TTestResult{}, err
	}
	descB, err := describeAs("sample B", b)
	if err != nil {
		return stats.TTestResult{}, err
	}

	nA := float64(descA.N)
	nB := float64(descB.N)

	var se, df float64
	if equalVariances {
		pooled := ((nA-1)*descA.Variance + (nB-1)*descB.Variance) / (nA + nB - 2)
		se = math.Sqrt(pooled * (1/nA + 1/nB))
		df = nA + nB - 2
	} else {
		se = math.Sqrt(descA.Variance/nA + descB.Variance/nB)
		numerator := descA.Variance/nA + descB.Variance/nB
		denominator := math.Pow(descA.Variance/nA, 2)/(nA-1) + math.Pow(descB.Variance/nB, 2)/(nB-1)
		df = numerator * numerator / denominator
	}

	if se == 0 {
		return stats.TTestResult{}, errors.DegenerateInput("standard error is zero, both samples are constant")
	}

	tStat := (descA.Mean - descB.Mean) / se

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	pValue := 2 * (1 - tDist.CDF(math.Abs(tStat)))

	return stats.TTestResult{
		TStatistic:       tStat,
		DegreesOfFreedom: df,
		VarianceA:        descA.Variance,
		VarianceB:        descB.Variance,
		PValue:           pValue,
		SizeImbalance:    math.Abs(nA/nB-1) > sizeImbalanceRatio,
	}, nil
}

// describeAs is Describe with the caller's sample name in validation errors.
func describeAs(name string, s stats.Sample) (stats.Descriptive, error) {
	if err := validateSample(name, s); err != nil {
		return stats.Descriptive{}, err
	}
	return Describe(s)
}
