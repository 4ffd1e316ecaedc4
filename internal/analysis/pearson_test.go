package analysis

import (
	"math"
	"testing"

	"statcalc/domain/stats"
	"statcalc/internal/errors"
	"statcalc/internal/testkit"
)

func TestComputePearsonR_PerfectPositive(t *testing.T) {
	result, err := ComputePearsonR(stats.Sample{1, 2, 3, 4, 5}, stats.Sample{2, 4, 6, 8, 10})
	if err != nil {
		t.Fatalf("ComputePearsonR failed: %v", err)
	}
	if math.Abs(result.R-1.0) > 1e-9 {
		t.Errorf("Expected r=1 for perfect linear relation, got %.12f", result.R)
	}
}

func TestComputePearsonR_PerfectNegative(t *testing.T) {
	result, err := ComputePearsonR(stats.Sample{1, 2, 3, 4, 5}, stats.Sample{10, 8, 6, 4, 2})
	if err != nil {
		t.Fatalf("ComputePearsonR failed: %v", err)
	}
	if math.Abs(result.R+1.0) > 1e-9 {
		t.Errorf("Expected r=-1 for perfect negative relation, got %.12f", result.R)
	}
}

func TestComputePearsonR_AffineInvariance(t *testing.T) {
	x := testkit.NormalSample(50, 0, 1, 21)
	y := testkit.NormalSample(50, 5, 3, 22)

	base, err := ComputePearsonR(x, y)
	if err != nil {
		t.Fatalf("ComputePearsonR failed: %v", err)
	}

	// Positive affine transforms of either sample leave r unchanged.
	scaled, err := ComputePearsonR(testkit.Affine(x, 2.5, -7), y)
	if err != nil {
		t.Fatalf("ComputePearsonR failed: %v", err)
	}
	if math.Abs(base.R-scaled.R) > 1e-9 {
		t.Errorf("Expected r invariant under positive affine transform, got %.12f vs %.12f", base.R, scaled.R)
	}

	// A sign flip negates r.
	flipped, err := ComputePearsonR(testkit.Affine(x, -1, 0), y)
	if err != nil {
		t.Fatalf("ComputePearsonR failed: %v", err)
	}
	if math.Abs(base.R+flipped.R) > 1e-9 {
		t.Errorf("Expected r to negate under sign flip, got %.12f and %.12f", base.R, flipped.R)
	}
}

func TestComputePearsonR_BoundedByOne(t *testing.T) {
	x := testkit.LinearSample(100, 0.5, 2, 1.5, 31)
	y := testkit.LinearSample(100, 0.5, -1, 1.5, 32)

	result, err := ComputePearsonR(x, y)
	if err != nil {
		t.Fatalf("ComputePearsonR failed: %v", err)
	}
	if result.R < -1 || result.R > 1 {
		t.Errorf("r must be within [-1,1], got %.12f", result.R)
	}
}

func TestComputePearsonR_TextbookPair(t *testing.T) {
	result, err := ComputePearsonR(textbookA, textbookB)
	if err != nil {
		t.Fatalf("ComputePearsonR failed: %v", err)
	}
	// 272 / sqrt(256*336), from the sums of products and squares.
	expected := 272.0 / math.Sqrt(256.0*336.0)
	if math.Abs(result.R-expected) > 1e-9 {
		t.Errorf("Expected r=%.6f, got %.6f", expected, result.R)
	}
}

func TestComputePearsonR_ConstantSampleDegenerate(t *testing.T) {
	_, err := ComputePearsonR(testkit.ConstantSample(4, 1), stats.Sample{1, 2, 3, 4})
	if !errors.IsDegenerateInput(err) {
		t.Fatalf("Expected DEGENERATE_INPUT for constant X, got %v", err)
	}

	_, err = ComputePearsonR(stats.Sample{1, 2, 3, 4}, testkit.ConstantSample(4, 9))
	if !errors.IsDegenerateInput(err) {
		t.Fatalf("Expected DEGENERATE_INPUT for constant Y, got %v", err)
	}
}

func TestComputePearsonR_InvalidInputRejected(t *testing.T) {
	if _, err := ComputePearsonR(stats.Sample{1, 2, 3}, stats.Sample{1, 2}); !errors.IsInvalidInput(err) {
		t.Errorf("Expected INVALID_INPUT for mismatched lengths, got %v", err)
	}
	if _, err := ComputePearsonR(stats.Sample{1}, stats.Sample{2}); !errors.IsInvalidInput(err) {
		t.Errorf("Expected INVALID_INPUT for single observations, got %v", err)
	}
	if _, err := ComputePearsonR(stats.Sample{1, math.NaN(), 3}, stats.Sample{1, 2, 3}); !errors.IsInvalidInput(err) {
		t.Errorf("Expected INVALID_INPUT for NaN, got %v", err)
	}
}
