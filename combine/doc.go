// Package combine folds an iteration's out-of-bag and whole-sample scores
// into one bootstrap estimate.
//
// Three methods are supported:
//
//   - oob: the out-of-bag score alone.
//   - .632: 0.632 * out-of-bag + 0.368 * whole-sample (Efron, 1983).
//   - .632+: the weight grows towards 1 with the relative overfitting rate,
//     measured against the no-information error rate (Efron and Tibshirani,
//     1997).
//
// Weights are applied in error space and reported in the scorer's own units;
// because the mapping is affine the two agree for every scorer kind.
package combine
