package estimator

import "fmt"

// Dataset pairs feature rows with their targets.
type Dataset struct {
	X [][]float64
	Y []float64
}

// Len returns the number of samples.
func (d Dataset) Len() int {
	return len(d.Y)
}

// Validate checks that X and Y are parallel, that at least two samples exist
// and that every row has the same feature count.
func (d Dataset) Validate() error {
	if len(d.X) != len(d.Y) {
		return fmt.Errorf("%w: %d feature rows but %d targets", ErrInvalidDataset, len(d.X), len(d.Y))
	}
	if len(d.Y) < 2 {
		return fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidDataset, len(d.Y))
	}

	width := len(d.X[0])
	for i, row := range d.X {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d features, want %d", ErrInvalidDataset, i, len(row), width)
		}
	}
	return nil
}

// Take returns the rows at indices, in order. Repeated indices repeat rows;
// the row slices themselves are shared, not copied. A nil indices slice
// returns the whole dataset.
func (d Dataset) Take(indices []int) Dataset {
	if indices == nil {
		return d
	}

	sub := Dataset{
		X: make([][]float64, len(indices)),
		Y: make([]float64, len(indices)),
	}
	for i, idx := range indices {
		sub.X[i] = d.X[idx]
		sub.Y[i] = d.Y[idx]
	}
	return sub
}
