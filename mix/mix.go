package mix

import "math"

// GainSilenceThreshold is the gain magnitude at or below which a channel
// is treated as silent and contributes nothing to a mix.
const GainSilenceThreshold = 0.00001

// RowSamples accumulates a weighted sum of input channel blocks into dst:
//
//	dst[i] += gains[c] * ins[c][i]   for i < n, for each channel c
//
// dst is never cleared; the second of two calls adds onto the first.
// Channels whose gain magnitude does not exceed GainSilenceThreshold are
// skipped without touching their input block. Panics if n exceeds dst or
// any contributing input block, or if len(ins) < len(gains).
func RowSamples(dst, gains []float64, ins [][]float64, n int) {
	out := dst[:n]
	for c, g := range gains {
		if math.Abs(g) <= GainSilenceThreshold {
			continue
		}
		in := ins[c][:n]
		for i := range out {
			out[i] += g * in[i]
		}
	}
}
