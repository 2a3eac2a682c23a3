package decoder

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dsp/dsp/filter/crossover"

	"github.com/cwbudde/algo-ambisonic/ambi"
	"github.com/cwbudde/algo-ambisonic/mix"
)

// MaxBlockSamples is the upper bound on the sample count of a single
// Process call. Band scratch is sized against it at construction so the
// processing path never allocates.
const MaxBlockSamples = 1024

// crossoverOrder is the Linkwitz-Riley order of the band split (LR4).
const crossoverOrder = 4

// Decoder holds a dense decode matrix and, for two-band operation, one
// crossover per input channel. It is immutable after construction except
// for filter state and band scratch; see the package documentation for
// the swap-don't-mutate lifecycle.
type Decoder struct {
	numChannels int
	dualBand    bool
	enabled     uint32

	// Decode rows indexed by physical output slot. Only the
	// representation matching dualBand is populated, and only slots
	// whose bit is set in enabled carry a row; the rest stay nil and
	// are gated off by the mask.
	single [ambi.MaxOutputs][]float64
	hf     [ambi.MaxOutputs][]float64
	lf     [ambi.MaxOutputs][]float64

	// Two-band state: one crossover and one HF/LF scratch block per
	// input channel.
	xover  []*crossover.Crossover
	bandHF [][]float64
	bandLF [][]float64
}

// New builds a decoder from a configuration snapshot. chanMap assigns
// each configuration speaker index a physical output slot; it must cover
// at least conf.Speakers() entries, each in [0, ambi.MaxOutputs).
//
// Two-band operation is active only when allowDualBand is set and the
// configuration specifies two frequency bands. inChannels fixes the
// ambisonic input channel count for the decoder's lifetime.
func New(conf *Config, allowDualBand bool, inChannels int, sampleRate float64, chanMap []int) (*Decoder, error) {
	if conf == nil {
		return nil, fmt.Errorf("decoder: nil config")
	}
	if inChannels <= 0 || inChannels > ambi.MaxChannels {
		return nil, fmt.Errorf("decoder: input channel count must be in [1, %d], got %d",
			ambi.MaxChannels, inChannels)
	}
	speakers := conf.Speakers()
	if len(chanMap) < speakers {
		return nil, fmt.Errorf("decoder: channel map covers %d speakers, config has %d",
			len(chanMap), speakers)
	}
	chanMap = chanMap[:speakers]

	enabled, err := slotMask(chanMap)
	if err != nil {
		return nil, err
	}

	d := &Decoder{
		numChannels: inChannels,
		dualBand:    allowDualBand && conf.FreqBands == 2,
		enabled:     enabled,
	}

	periphonic := conf.ChanMask&ambi.PeriphonicMask != 0
	scales := ambi.Scales(conf.CoeffScale)
	coeffCount := ambi.Max2DChannels
	if periphonic {
		coeffCount = ambi.MaxChannels
	}

	if !d.dualBand {
		for i := 0; i < speakers; i++ {
			row := make([]float64, ambi.MaxChannels)
			k := 0
			for j := 0; j < coeffCount; j++ {
				acn := j
				if !periphonic {
					acn = ambi.From2D[j]
				}
				if conf.ChanMask&(1<<uint(acn)) == 0 {
					continue
				}
				row[j] = conf.HFMatrix[i][k] / scales[acn] *
					conf.HFOrderGain[ambi.OrderFromChannel[acn]]
				k++
			}
			d.single[chanMap[i]] = row
		}
		return d, nil
	}

	d.xover = make([]*crossover.Crossover, inChannels)
	for ch := range d.xover {
		xo, err := crossover.New(conf.XOverFreq, crossoverOrder, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("decoder: %w", err)
		}
		d.xover[ch] = xo
	}
	d.bandHF = makeBlocks(inChannels)
	d.bandLF = makeBlocks(inChannels)

	// The band split attenuates both halves around the crossover point;
	// boosting HF rows by the ratio and cutting LF rows by it restores
	// the intended total gain in the transition region.
	ratio := math.Pow(10, conf.XOverRatio/40)
	for i := 0; i < speakers; i++ {
		hfRow := make([]float64, ambi.MaxChannels)
		lfRow := make([]float64, ambi.MaxChannels)
		k := 0
		for j := 0; j < coeffCount; j++ {
			acn := j
			if !periphonic {
				acn = ambi.From2D[j]
			}
			if conf.ChanMask&(1<<uint(acn)) == 0 {
				continue
			}
			order := ambi.OrderFromChannel[acn]
			hfRow[j] = conf.HFMatrix[i][k] / scales[acn] * conf.HFOrderGain[order] * ratio
			lfRow[j] = conf.LFMatrix[i][k] / scales[acn] * conf.LFOrderGain[order] / ratio
			k++
		}
		d.hf[chanMap[i]] = hfRow
		d.lf[chanMap[i]] = lfRow
	}
	return d, nil
}

// NewWithCoeffs builds a single-band decoder from explicit coefficient
// rows, one per output. Rows are copied verbatim with no scale or order
// adjustment; chanMap lists the physical output slot of each row and
// must be parallel to coeffs. Intended for simple downmix decodes where
// per-band equalization is unnecessary.
func NewWithCoeffs(inChannels int, coeffs [][]float64, chanMap []int) (*Decoder, error) {
	if inChannels <= 0 || inChannels > ambi.MaxChannels {
		return nil, fmt.Errorf("decoder: input channel count must be in [1, %d], got %d",
			ambi.MaxChannels, inChannels)
	}
	if len(coeffs) != len(chanMap) {
		return nil, fmt.Errorf("decoder: %d coefficient rows for %d output slots",
			len(coeffs), len(chanMap))
	}

	enabled, err := slotMask(chanMap)
	if err != nil {
		return nil, err
	}

	d := &Decoder{
		numChannels: inChannels,
		enabled:     enabled,
	}
	for i, slot := range chanMap {
		if len(coeffs[i]) < inChannels {
			return nil, fmt.Errorf("decoder: coefficient row %d has %d entries, want %d",
				i, len(coeffs[i]), inChannels)
		}
		row := make([]float64, ambi.MaxChannels)
		copy(row, coeffs[i][:inChannels])
		d.single[slot] = row
	}
	return d, nil
}

// NumChannels returns the ambisonic input channel count.
func (d *Decoder) NumChannels() int { return d.numChannels }

// DualBand reports whether the decoder splits into HF and LF bands.
func (d *Decoder) DualBand() bool { return d.dualBand }

// Enabled returns the bitmask of physical output slots this decoder
// writes. Bit i set means Process touches out[i].
func (d *Decoder) Enabled() uint32 { return d.enabled }

// Process decodes one block. in holds NumChannels() input buffers; out
// is indexed by physical output slot. The caller guarantees
// 0 < samples <= MaxBlockSamples and that every referenced buffer holds
// at least samples entries.
//
// Enabled slots are accumulated into, not overwritten; slots whose bit
// is clear in Enabled() are left untouched. Pre-clear destinations
// before the first contributing decoder writes to them.
func (d *Decoder) Process(out, in [][]float64, samples int) {
	if d.dualBand {
		for ch := 0; ch < d.numChannels; ch++ {
			d.xover[ch].ProcessBlock(in[ch][:samples],
				d.bandLF[ch][:samples], d.bandHF[ch][:samples])
		}
		for slot := range out {
			if d.enabled>>uint(slot)&1 == 0 {
				continue
			}
			mix.RowSamples(out[slot], d.hf[slot][:d.numChannels], d.bandHF, samples)
			mix.RowSamples(out[slot], d.lf[slot][:d.numChannels], d.bandLF, samples)
		}
		return
	}

	for slot := range out {
		if d.enabled>>uint(slot)&1 == 0 {
			continue
		}
		mix.RowSamples(out[slot], d.single[slot][:d.numChannels], in, samples)
	}
}

// slotMask folds a slot list into the enabled-output bitmask, rejecting
// slots outside the supported range.
func slotMask(chanMap []int) (uint32, error) {
	var mask uint32
	for i, slot := range chanMap {
		if slot < 0 || slot >= ambi.MaxOutputs {
			return 0, fmt.Errorf("decoder: speaker %d maps to output slot %d, want [0, %d)",
				i, slot, ambi.MaxOutputs)
		}
		mask |= 1 << uint(slot)
	}
	return mask, nil
}

func makeBlocks(n int) [][]float64 {
	blocks := make([][]float64, n)
	for i := range blocks {
		blocks[i] = make([]float64, MaxBlockSamples)
	}
	return blocks
}
