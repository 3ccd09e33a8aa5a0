package scoring

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func TestAccuracyScore(t *testing.T) {
	tests := []struct {
		name  string
		yTrue []float64
		yPred []float64
		want  float64
	}{
		{name: "all correct", yTrue: []float64{0, 1, 2}, yPred: []float64{0, 1, 2}, want: 1},
		{name: "half", yTrue: []float64{0, 1, 0, 1}, yPred: []float64{0, 0, 0, 0}, want: 0.5},
		{name: "none", yTrue: []float64{1, 1}, yPred: []float64{0, 0}, want: 0},
		{name: "empty", yTrue: nil, yPred: nil, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AccuracyScore(tc.yTrue, tc.yPred); math.Abs(got-tc.want) > tolerance {
				t.Errorf("AccuracyScore() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRegressionLosses(t *testing.T) {
	yTrue := []float64{1, 2, 3}
	yPred := []float64{2, 2, 5}

	if got := MSE(yTrue, yPred); math.Abs(got-5.0/3.0) > tolerance {
		t.Errorf("MSE() = %v, want %v", got, 5.0/3.0)
	}
	if got := MAE(yTrue, yPred); math.Abs(got-1) > tolerance {
		t.Errorf("MAE() = %v, want 1", got)
	}
}

func TestCrossEntropy(t *testing.T) {
	yTrue := []float64{0, 1}
	proba := [][]float64{{0.5, 0.5}, {0.25, 0.75}}

	want := -(math.Log(0.5) + math.Log(0.75)) / 2
	if got := CrossEntropy(yTrue, proba); math.Abs(got-want) > tolerance {
		t.Errorf("CrossEntropy() = %v, want %v", got, want)
	}

	// Zero probability is clipped rather than producing +Inf.
	if got := CrossEntropy([]float64{0}, [][]float64{{0, 1}}); math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("CrossEntropy() with p=0 = %v, want finite", got)
	}
}

func TestBrier(t *testing.T) {
	yTrue := []float64{0, 1}
	proba := [][]float64{{1, 0}, {0.5, 0.5}}

	// Row 0 is perfect; row 1 contributes 0.25 + 0.25.
	if got := Brier(yTrue, proba); math.Abs(got-0.25) > tolerance {
		t.Errorf("Brier() = %v, want 0.25", got)
	}
}
