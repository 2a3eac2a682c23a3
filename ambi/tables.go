package ambi

// Channel-count limits for the supported ambisonic orders.
const (
	// MaxOrder is the highest spherical-harmonic order supported.
	MaxOrder = 3

	// MaxChannels is the channel count of a full-sphere stream at MaxOrder.
	MaxChannels = (MaxOrder + 1) * (MaxOrder + 1)

	// Max2DChannels is the channel count of a horizontal-only stream at
	// MaxOrder.
	Max2DChannels = MaxOrder*2 + 1

	// MaxOutputs is the number of addressable physical output slots.
	MaxOutputs = 16
)

// OrderFromChannel maps an ACN channel index to its spherical-harmonic
// order. Order L occupies channels L² through (L+1)²-1.
var OrderFromChannel = [MaxChannels]int{
	0,
	1, 1, 1,
	2, 2, 2, 2, 2,
	3, 3, 3, 3, 3, 3, 3,
}

// From2D maps a position in the compacted horizontal channel set to the
// ACN channel index it carries. Horizontal streams keep only the
// sine/cosine azimuth harmonics (W; Y,X; V,U; Q,P).
var From2D = [Max2DChannels]int{0, 1, 3, 4, 8, 9, 15}

// PeriphonicMask has a bit set for every ACN channel that exists only in
// the full-sphere set. A channel-activity mask intersecting it implies a
// height-inclusive (periphonic) configuration.
const PeriphonicMask uint32 = 0x7ce4

// ChannelsForOrder returns the channel count of an ambisonic stream of
// the given order: (order+1)² for a full-sphere stream, 2·order+1 for a
// horizontal-only one.
func ChannelsForOrder(order int, periphonic bool) int {
	if periphonic {
		return (order + 1) * (order + 1)
	}
	return order*2 + 1
}

// ScaleType identifies a coefficient normalization convention.
type ScaleType int

// The recognized normalization conventions. Decoder configurations store
// raw coefficients relative to one of these; dividing by the matching
// per-channel scale converts them to the canonical N3D gain.
const (
	ScaleN3D ScaleType = iota
	ScaleSN3D
	ScaleFuMa
)

// String returns the conventional name of the scale type.
func (t ScaleType) String() string {
	switch t {
	case ScaleSN3D:
		return "SN3D"
	case ScaleFuMa:
		return "FuMa"
	default:
		return "N3D"
	}
}

// fromN3D is the identity table: N3D is the canonical normalization.
var fromN3D = [MaxChannels]float64{
	1.0, 1.0, 1.0, 1.0,
	1.0, 1.0, 1.0, 1.0,
	1.0, 1.0, 1.0, 1.0,
	1.0, 1.0, 1.0, 1.0,
}

// fromSN3D converts SN3D coefficients to N3D: sqrt(2L+1) per order L.
var fromSN3D = [MaxChannels]float64{
	1.000000000,
	1.732050808, 1.732050808, 1.732050808,
	2.236067977, 2.236067977, 2.236067977, 2.236067977, 2.236067977,
	2.645751311, 2.645751311, 2.645751311, 2.645751311, 2.645751311,
	2.645751311, 2.645751311,
}

// fromFuMa converts Furse-Malham (maxN-normalized, W at -3 dB)
// coefficients to N3D.
var fromFuMa = [MaxChannels]float64{
	1.414213562, /* ACN  0 (W), sqrt(2) */
	1.732050808, /* ACN  1 (Y), sqrt(3) */
	1.732050808, /* ACN  2 (Z), sqrt(3) */
	1.732050808, /* ACN  3 (X), sqrt(3) */
	1.936491673, /* ACN  4 (V), sqrt(15)/2 */
	1.936491673, /* ACN  5 (T), sqrt(15)/2 */
	2.236067977, /* ACN  6 (R), sqrt(5) */
	1.936491673, /* ACN  7 (S), sqrt(15)/2 */
	1.936491673, /* ACN  8 (U), sqrt(15)/2 */
	2.091650066, /* ACN  9 (Q), sqrt(35/8) */
	1.972026594, /* ACN 10 (O), sqrt(35)/3 */
	2.231093404, /* ACN 11 (M), sqrt(224/45) */
	2.645751311, /* ACN 12 (K), sqrt(7) */
	2.231093404, /* ACN 13 (L), sqrt(224/45) */
	1.972026594, /* ACN 14 (N), sqrt(35)/3 */
	2.091650066, /* ACN 15 (P), sqrt(35/8) */
}

// Scales returns the per-channel table converting raw coefficients of the
// given convention to canonical N3D gains. Unrecognized values fall back
// to the N3D identity table.
func Scales(t ScaleType) *[MaxChannels]float64 {
	switch t {
	case ScaleSN3D:
		return &fromSN3D
	case ScaleFuMa:
		return &fromFuMa
	default:
		return &fromN3D
	}
}
