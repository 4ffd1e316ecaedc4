package analysis

import (
	"math"
	"testing"

	"statcalc/domain/stats"
	"statcalc/internal/errors"
)

func TestDescribe_KnownValues(t *testing.T) {
	desc, err := Describe(stats.Sample{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}

	if desc.N != 5 {
		t.Errorf("Expected n=5, got %d", desc.N)
	}
	if math.Abs(desc.Mean-3.0) > 1e-12 {
		t.Errorf("Expected mean=3, got %f", desc.Mean)
	}
	if math.Abs(desc.Variance-2.5) > 1e-12 {
		t.Errorf("Expected sample variance=2.5, got %f", desc.Variance)
	}
	if math.Abs(desc.StdDev-math.Sqrt(2.5)) > 1e-12 {
		t.Errorf("Expected stddev=sqrt(2.5), got %f", desc.StdDev)
	}
}

func TestDescribe_RejectsShortAndNonFinite(t *testing.T) {
	if _, err := Describe(stats.Sample{1}); !errors.IsInvalidInput(err) {
		t.Errorf("Expected INVALID_INPUT for single value, got %v", err)
	}
	if _, err := Describe(nil); !errors.IsInvalidInput(err) {
		t.Errorf("Expected INVALID_INPUT for nil sample, got %v", err)
	}
	if _, err := Describe(stats.Sample{1, math.Inf(-1)}); !errors.IsInvalidInput(err) {
		t.Errorf("Expected INVALID_INPUT for -Inf, got %v", err)
	}
}
