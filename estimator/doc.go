// Package estimator defines the model capability consumed by bootstrap
// evaluation and the adapter that fits and queries it on dataset subsets.
//
// A model only has to implement Estimator (Fit and Predict). Two further
// capabilities are discovered once, up front:
//
//   - ProbaPredictor: probability predictions, needed when a run scores
//     probabilities instead of labels.
//   - Cloner: an independent, unfit copy of the model configuration. When
//     cloning is enabled every iteration fits its own copy, so no learned state
//     leaks between iterations.
//
// Without cloning the adapter hands out the one shared estimator. That handle
// is not reentrant; callers must fit and predict from a single goroutine.
package estimator
