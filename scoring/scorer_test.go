package scoring

import (
	"errors"
	"testing"

	"github.com/jonwraymond/bootscore/estimator"
)

func TestScorer_Error(t *testing.T) {
	tests := []struct {
		name   string
		scorer Scorer
		score  float64
		want   float64
	}{
		{name: "accuracy", scorer: Accuracy(), score: 0.8, want: 0.2},
		{name: "gain", scorer: Custom("auc", KindGain, AccuracyScore), score: 0.9, want: 0.1},
		{name: "loss", scorer: MeanSquaredError(), score: 3.5, want: 3.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.scorer.Error(tc.score); got-tc.want > tolerance || tc.want-got > tolerance {
				t.Errorf("Error(%v) = %v, want %v", tc.score, got, tc.want)
			}
		})
	}
}

func TestScorer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		scorer  Scorer
		target  estimator.TargetType
		proba   bool
		wantErr bool
	}{
		{name: "accuracy on classes", scorer: Accuracy(), target: estimator.TargetClassification},
		{name: "accuracy on continuous", scorer: Accuracy(), target: estimator.TargetRegression, wantErr: true},
		{name: "accuracy with proba", scorer: Accuracy(), target: estimator.TargetClassification, proba: true, wantErr: true},
		{name: "log loss with proba", scorer: LogLoss(), target: estimator.TargetClassification, proba: true},
		{name: "log loss on labels", scorer: LogLoss(), target: estimator.TargetClassification, wantErr: true},
		{name: "mse on continuous", scorer: MeanSquaredError(), target: estimator.TargetRegression},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.scorer.Validate(tc.target, tc.proba)
			if tc.wantErr && !errors.Is(err, ErrScorerMismatch) {
				t.Errorf("Validate() error = %v, want ErrScorerMismatch", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	tests := []struct {
		target estimator.TargetType
		proba  bool
		want   string
	}{
		{target: estimator.TargetClassification, want: "accuracy"},
		{target: estimator.TargetRegression, want: "mse"},
		{target: estimator.TargetClassification, proba: true, want: "log_loss"},
		{target: estimator.TargetUnknown, want: "accuracy"},
	}

	for _, tc := range tests {
		if got := Default(tc.target, tc.proba).Name; got != tc.want {
			t.Errorf("Default(%v, %v) = %q, want %q", tc.target, tc.proba, got, tc.want)
		}
	}
}

func TestCustom_Options(t *testing.T) {
	plain := Custom("f", KindGain, AccuracyScore)
	if plain.Decomposable {
		t.Error("custom scorer decomposable by default")
	}

	mean := Custom("f", KindGain, AccuracyScore, WithDecomposable())
	if !mean.Decomposable {
		t.Error("WithDecomposable() not applied")
	}

	proba := CustomProba("p", KindLoss, Brier)
	if proba.Func != nil || proba.Proba == nil {
		t.Error("CustomProba() should only set Proba")
	}
	if !Custom("f", KindGain, nil).IsZero() {
		t.Error("scorer without functions should be zero")
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"accuracy", "mse", "mae", "log_loss", "brier"} {
		s, ok := Lookup(name)
		if !ok || s.Name != name {
			t.Errorf("Lookup(%q) = %q, %v", name, s.Name, ok)
		}
	}
	if _, ok := Lookup("f1"); ok {
		t.Error("Lookup(f1) should fail")
	}
}

func TestInferTargetType(t *testing.T) {
	tests := []struct {
		name string
		y    []float64
		want estimator.TargetType
	}{
		{name: "labels", y: []float64{0, 1, 2, 1}, want: estimator.TargetClassification},
		{name: "negative labels", y: []float64{-1, 1}, want: estimator.TargetClassification},
		{name: "continuous", y: []float64{0.5, 1, 2}, want: estimator.TargetRegression},
		{name: "empty", y: nil, want: estimator.TargetUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InferTargetType(tc.y); got != tc.want {
				t.Errorf("InferTargetType() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestResolveTargetType_PrefersDeclared(t *testing.T) {
	caps := estimator.Capabilities{TargetType: estimator.TargetRegression}
	if got := ResolveTargetType(caps, []float64{0, 1}); got != estimator.TargetRegression {
		t.Errorf("ResolveTargetType() = %v, want regression", got)
	}
	if got := ResolveTargetType(estimator.Capabilities{}, []float64{0, 1}); got != estimator.TargetClassification {
		t.Errorf("ResolveTargetType() = %v, want classification", got)
	}
}
