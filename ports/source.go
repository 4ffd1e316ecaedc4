package ports

import "statcalc/domain/stats"

// SampleSource provides read-only access to a pair of input samples. Readers
// implement it so the analysis layer never touches file formats directly.
type SampleSource interface {
	// Load returns the two samples to analyze. Implementations must not
	// retain or mutate the returned slices after Load returns.
	Load() (a, b stats.Sample, err error)
}
