// Package decoder converts ambisonic (B-Format) channel blocks into
// per-loudspeaker feed signals.
//
// A [Decoder] is built once, either from a [Config] snapshot plus a map
// of configuration speakers to physical output slots, or from explicit
// per-output coefficient rows. Construction derives a dense decode
// matrix; when the configuration specifies two frequency bands (and the
// caller permits it) the matrix carries independent high- and
// low-frequency rows and each input channel runs through a
// Linkwitz-Riley crossover before mixing.
//
// Process is the real-time entry point: it performs no allocation and
// mutates only filter state and internal band scratch. Output buffers
// are accumulated into, never cleared — callers must pre-clear them
// before the first contributing decoder writes. A decoder is never
// reconfigured in place; build a new one and swap it in at a block
// boundary when the layout, order, or band setup changes.
//
// Example:
//
//	d, _ := decoder.New(conf, true, 4, 48000, chanMap)
//	for each block {
//		clear output buffers
//		d.Process(out, in, blockLen)
//	}
package decoder
