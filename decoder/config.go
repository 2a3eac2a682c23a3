package decoder

import "github.com/cwbudde/algo-ambisonic/ambi"

// Config is a decoder configuration snapshot, one entry per configured
// speaker. It is a passive model: an external loader (e.g. an AmbDec
// preset parser) fills and validates it; this package trusts its
// contents beyond the structural checks New performs.
//
// Raw coefficients are stored in the convention named by CoeffScale and
// compacted over the active channels: each speaker row holds one value
// per bit set in ChanMask, in ascending ACN order (restricted to the
// horizontal subset when no height channel is active).
type Config struct {
	// FreqBands is 1 for a single-band decode or 2 for an HF/LF split.
	FreqBands int

	// XOverFreq is the crossover frequency in Hz (two-band only).
	XOverFreq float64

	// XOverRatio is the HF/LF gain offset in dB applied around the
	// crossover point (two-band only).
	XOverRatio float64

	// CoeffScale names the normalization convention of the raw
	// coefficient rows.
	CoeffScale ambi.ScaleType

	// ChanMask has a bit set for every active ACN channel.
	ChanMask uint32

	// HFOrderGain and LFOrderGain hold per-order gain compensation for
	// the respective band. LFOrderGain is unused when FreqBands is 1.
	HFOrderGain [ambi.MaxOrder + 1]float64
	LFOrderGain [ambi.MaxOrder + 1]float64

	// HFMatrix holds one raw coefficient row per speaker. LFMatrix is
	// parallel to it and only consulted when FreqBands is 2.
	HFMatrix [][]float64
	LFMatrix [][]float64
}

// Speakers returns the number of configured speakers.
func (c *Config) Speakers() int { return len(c.HFMatrix) }
