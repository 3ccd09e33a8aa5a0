package scoring

import "errors"

// ErrScorerMismatch is returned when a scorer cannot be used with the
// configured targets or prediction mode.
var ErrScorerMismatch = errors.New("scoring: scorer does not fit targets or prediction mode")
