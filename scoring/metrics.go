package scoring

import "math"

// probaEpsilon clips probabilities away from 0 and 1 before taking logs.
const probaEpsilon = 1e-15

// AccuracyScore returns the fraction of predictions equal to the target.
func AccuracyScore(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue))
}

// MSE returns the mean squared error.
func MSE(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	s := 0.0
	for i := range yTrue {
		d := yPred[i] - yTrue[i]
		s += d * d
	}
	return s / float64(len(yTrue))
}

// MAE returns the mean absolute error.
func MAE(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	s := 0.0
	for i := range yTrue {
		s += math.Abs(yPred[i] - yTrue[i])
	}
	return s / float64(len(yTrue))
}

// CrossEntropy returns the mean negative log probability of the true class.
// Labels outside the probability row count as probability zero.
func CrossEntropy(yTrue []float64, proba [][]float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	s := 0.0
	for i, label := range yTrue {
		p := 0.0
		if k := int(label); k >= 0 && k < len(proba[i]) {
			p = proba[i][k]
		}
		p = math.Min(math.Max(p, probaEpsilon), 1-probaEpsilon)
		s -= math.Log(p)
	}
	return s / float64(len(yTrue))
}

// Brier returns the mean squared distance between probability rows and the
// one-hot encoding of the true class.
func Brier(yTrue []float64, proba [][]float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	s := 0.0
	for i, label := range yTrue {
		for k, p := range proba[i] {
			target := 0.0
			if int(label) == k {
				target = 1
			}
			d := p - target
			s += d * d
		}
	}
	return s / float64(len(yTrue))
}
