// Package resample draws bootstrap samples and their out-of-bag complements.
//
// Every draw is taken from a stream keyed by (seed, iteration, attempt), so a
// given iteration always sees the same indices no matter which goroutine runs
// it or in which order iterations are scheduled.
//
// # Usage
//
//	rng := resample.Stream(seed, iteration, 0)
//	draw, err := resample.DrawSample(n, rng)
//	if errors.Is(err, resample.ErrDegenerateSample) {
//	    // every index was drawn at least once; redraw with attempt+1
//	}
//
// The OutOfBag splitter wraps the same primitives for callers that want to
// iterate over all splits directly:
//
//	splitter := &resample.OutOfBag{Splits: 200, Seed: 42}
//	for i, draw := range splitter.Split(len(y)) {
//	    fit(draw.Train)
//	    evaluate(i, draw.OOB)
//	}
//	if err := splitter.Err(); err != nil {
//	    return err
//	}
package resample
