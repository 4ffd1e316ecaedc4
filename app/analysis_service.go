package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"statcalc/domain/stats"
	"statcalc/internal/analysis"
	"statcalc/internal/config"
)

// AnalysisService wires the two independent computation paths of the
// calculator: variance pre-check feeding the t-test, and Pearson correlation.
type AnalysisService struct {
	alpha float64
}

// AnalyzeRequest defines the inputs for a pair analysis.
type AnalyzeRequest struct {
	SampleA stats.Sample
	SampleB stats.Sample

	// Alpha overrides the configured significance threshold when > 0.
	Alpha float64
}

// NewAnalysisService creates an analysis service with the configured
// significance threshold.
func NewAnalysisService(cfg *config.Config) *AnalysisService {
	alpha := config.DefaultAlpha
	if cfg != nil && cfg.Analysis.Alpha > 0 {
		alpha = cfg.Analysis.Alpha
	}
	return &AnalysisService{alpha: alpha}
}

// AnalyzePair runs both analyses over one pair of samples. The t-test path
// (variance decision, then the t-test consuming it) and the correlation path
// share no state, so they run concurrently. A failure on the t-test path fails
// the call; a correlation failure is carried in the record, since correlation
// rejects inputs the t-test accepts (mismatched lengths, a constant sample).
func (s *AnalysisService) AnalyzePair(ctx context.Context, req AnalyzeRequest) (*stats.PairAnalysis, error) {
	alpha := s.alpha
	if req.Alpha > 0 {
		alpha = req.Alpha
	}

	result := &stats.PairAnalysis{}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		decision, err := analysis.TestEqualVariances(req.SampleA, req.SampleB, alpha)
		if err != nil {
			return err
		}
		tResult, err := analysis.ComputeTTest(req.SampleA, req.SampleB, decision.EqualVariances)
		if err != nil {
			return err
		}
		result.Variances = decision
		result.TTest = tResult
		return nil
	})

	g.Go(func() error {
		corr, err := analysis.ComputePearsonR(req.SampleA, req.SampleB)
		if err != nil {
			result.CorrelationErr = err.Error()
			return nil
		}
		result.Correlation = &corr
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
