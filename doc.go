// Package bootscore estimates the generalization performance of a supervised
// model from a single dataset with bootstrap resampling.
//
// Each iteration draws n indices with replacement, fits an estimator on them
// and scores it on the samples left out of the draw. The out-of-bag score is
// reported as is (oob), blended with the whole-sample score at the fixed
// 0.632 weight (.632), or at a weight adjusted for the observed overfitting
// (.632+, Efron and Tibshirani 1997).
//
//	scores, err := bootscore.Run(ctx, model, X, y,
//		bootscore.WithSplits(200),
//		bootscore.WithMethod(combine.Method632Plus),
//		bootscore.WithSeed(42),
//	)
//
// Iterations are keyed by (seed, iteration, attempt), so a fixed seed
// produces the same scores whether iterations run sequentially or on
// several workers.
//
// The estimator, the scoring function and data loading belong to the
// caller. Evaluate returns a Report with the per-iteration measurements so
// results can be recombined or summarized later.
package bootscore
