package stats

// Sample is an ordered sequence of finite real observations. Samples are
// treated as immutable: no calculator mutates the backing slice.
type Sample []float64

// Len returns the number of observations in the sample.
func (s Sample) Len() int { return len(s) }

// VarianceDecision is the outcome of an equal-variance pre-check between two
// samples. It is produced once per test invocation and consumed immediately by
// the t-test step; it is never persisted.
// INVARIANTS:
// - Statistic >= 0
// - PValue in [0.0, 1.0]
// - EqualVariances == (PValue > Alpha)
type VarianceDecision struct {
	Statistic      float64 `json:"statistic"`
	PValue         float64 `json:"p_value"`
	EqualVariances bool    `json:"equal_variances"`
	Alpha          float64 `json:"alpha"`
}

// TTestResult holds the output of an independent two-sample t-test.
// INVARIANTS:
// - DegreesOfFreedom > 0
// - VarianceA, VarianceB >= 0
type TTestResult struct {
	TStatistic       float64 `json:"t_statistic"`
	DegreesOfFreedom float64 `json:"degrees_of_freedom"`
	VarianceA        float64 `json:"variance_a"`
	VarianceB        float64 `json:"variance_b"`

	// PValue is the two-sided tail probability of |t| under the t-distribution
	// with DegreesOfFreedom. Reported in addition to the four core fields.
	PValue float64 `json:"p_value"`

	// SizeImbalance is set when the sample sizes differ by more than 10%,
	// which weakens the reliability of the pooled formula.
	SizeImbalance bool `json:"size_imbalance,omitempty"`
}

// CorrelationResult holds Pearson's correlation coefficient.
// R is clamped to [-1, 1] to absorb floating-point rounding past the
// theoretical bound.
type CorrelationResult struct {
	R float64 `json:"r"`
}

// Descriptive summarizes a single sample. Variance uses the n-1 denominator.
type Descriptive struct {
	N        int     `json:"n"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
}

// PairAnalysis is the combined record for one pair of samples: the
// equal-variance decision, the t-test that consumed it, and the independent
// correlation result. The correlation path can fail on inputs the t-test
// accepts (mismatched lengths, a constant sample), so its error travels in the
// record instead of failing the whole analysis.
type PairAnalysis struct {
	Variances   VarianceDecision   `json:"variances"`
	TTest       TTestResult        `json:"t_test"`
	Correlation *CorrelationResult `json:"correlation,omitempty"`

	// CorrelationErr carries the correlation failure, if any.
	CorrelationErr string `json:"correlation_error,omitempty"`
}
