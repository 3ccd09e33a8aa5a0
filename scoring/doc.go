// Package scoring provides the scoring functions used to compare predictions
// with ground truth, and the rules for picking a default one.
//
// A Scorer carries its orientation (Kind) so that weighted bootstrap
// estimators can move between score and error space: accuracy-like scores
// become errors as 1-score, losses are already errors.
package scoring
