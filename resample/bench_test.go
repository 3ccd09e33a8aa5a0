package resample

import "testing"

// BenchmarkDrawSample measures one draw over a mid-sized dataset.
func BenchmarkDrawSample(b *testing.B) {
	rng := Stream(1, 0, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = DrawSample(1000, rng)
	}
}

// BenchmarkStream measures stream construction per iteration.
func BenchmarkStream(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Stream(1, i, 0)
	}
}
