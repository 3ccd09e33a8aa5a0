package resample

import (
	"fmt"
	"math/rand/v2"
)

// Draw is one bootstrap sample.
type Draw struct {
	// Train holds n indices drawn with replacement, in draw order.
	Train []int

	// OOB holds the indices absent from Train, in ascending order.
	OOB []int
}

// Size returns the number of samples the draw was taken from.
func (d Draw) Size() int {
	return len(d.Train)
}

// DrawSample draws n indices uniformly with replacement from [0, n) and
// derives the out-of-bag complement.
//
// Returns ErrDegenerateSample when every index was drawn at least once.
func DrawSample(n int, rng *rand.Rand) (Draw, error) {
	if n < 2 {
		return Draw{}, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}

	train := make([]int, n)
	drawn := make([]bool, n)
	for i := range train {
		idx := rng.IntN(n)
		train[i] = idx
		drawn[idx] = true
	}

	// About n/e indices stay out of the bag.
	oob := make([]int, 0, n/2)
	for idx, ok := range drawn {
		if !ok {
			oob = append(oob, idx)
		}
	}

	if len(oob) == 0 {
		return Draw{}, fmt.Errorf("%w: all %d samples were drawn", ErrDegenerateSample, n)
	}

	return Draw{Train: train, OOB: oob}, nil
}
