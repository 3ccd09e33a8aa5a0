package combine

import "github.com/jonwraymond/bootscore/scoring"

// NoInformation is the no-information error rate of a fitted model: the
// expected error if its predictions were independent of the true targets.
type NoInformation struct {
	// Rate is the no-information rate in error space.
	Rate float64

	// Materialized is true when the full n*n product of targets and
	// predictions had to be built because the scorer is not decomposable.
	Materialized bool
}

// NoInformationRate computes the no-information error rate for label or
// value predictions over the whole sample.
//
// For 0/1 accuracy it uses sum_k p_k * (1 - q_k), where p_k and q_k are the
// proportions of class k among targets and predictions. Any other scorer is
// evaluated over every (target, prediction) pair.
func NoInformationRate(s scoring.Scorer, yTrue, yPred []float64) NoInformation {
	if s.Kind == scoring.KindAccuracy {
		return NoInformation{Rate: classNoInformation(yTrue, yPred)}
	}
	score, materialized := pairwise[float64](s.Func, yTrue, yPred, s.Decomposable)
	return NoInformation{Rate: s.Error(score), Materialized: materialized}
}

// NoInformationRateProba is NoInformationRate for probability predictions.
func NoInformationRateProba(s scoring.Scorer, yTrue []float64, proba [][]float64) NoInformation {
	score, materialized := pairwise[[]float64](s.Proba, yTrue, proba, s.Decomposable)
	return NoInformation{Rate: s.Error(score), Materialized: materialized}
}

func classNoInformation(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 || len(yPred) == 0 {
		return 0
	}

	p := make(map[float64]float64)
	for _, v := range yTrue {
		p[v]++
	}
	q := make(map[float64]float64, len(p))
	for _, v := range yPred {
		q[v]++
	}

	n, m := float64(len(yTrue)), float64(len(yPred))
	gamma := 0.0
	for class, count := range p {
		gamma += (count / n) * (1 - q[class]/m)
	}
	return gamma
}

// pairwise scores fn over every (yTrue[i], preds[j]) pair, in the order
// i-major then j. Decomposable scorers are evaluated one target at a time and
// averaged; others see the whole product at once.
func pairwise[P any](fn func([]float64, []P) float64, yTrue []float64, preds []P, decomposable bool) (float64, bool) {
	if len(yTrue) == 0 || len(preds) == 0 {
		return 0, false
	}

	if decomposable {
		row := make([]float64, len(preds))
		total := 0.0
		for _, y := range yTrue {
			for j := range row {
				row[j] = y
			}
			total += fn(row, preds)
		}
		return total / float64(len(yTrue)), false
	}

	size := len(yTrue) * len(preds)
	targets := make([]float64, 0, size)
	paired := make([]P, 0, size)
	for _, y := range yTrue {
		for _, p := range preds {
			targets = append(targets, y)
			paired = append(paired, p)
		}
	}
	return fn(targets, paired), true
}
