package resample

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
)

// Stream returns the random stream for one attempt of one iteration.
//
// The ChaCha8 key is the SHA-256 digest of the three coordinates, so streams
// for neighbouring iterations are unrelated and the same coordinates always
// reproduce the same sequence.
func Stream(seed uint64, iteration, attempt int) *rand.Rand {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], seed)
	binary.LittleEndian.PutUint64(buf[8:16], uint64(iteration))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(attempt))
	return rand.New(rand.NewChaCha8(sha256.Sum256(buf[:])))
}

// EntropySeed returns a seed from the runtime's entropy-seeded generator.
// Runs using it are not reproducible unless the seed is recorded.
func EntropySeed() uint64 {
	// #nosec G404 -- seed selection, not a security boundary.
	return rand.Uint64()
}
