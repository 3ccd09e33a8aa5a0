// Package estimatortest provides small deterministic estimators for testing
// bootstrap evaluation.
//
// They are test doubles, not models: Constant and Majority ignore features,
// NearestNeighbor memorizes its training set and MeanRegressor predicts the
// training mean. Class labels are the integers 0..Classes-1 and probability
// rows hold one column per label.
package estimatortest
