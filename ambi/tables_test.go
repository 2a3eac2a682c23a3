package ambi

import (
	"math"
	"testing"
)

func TestOrderFromChannel(t *testing.T) {
	// Order L occupies ACN channels L² through (L+1)²-1.
	for acn, order := range OrderFromChannel {
		lo := order * order
		hi := (order + 1) * (order + 1)
		if acn < lo || acn >= hi {
			t.Errorf("channel %d: order %d, but order %d spans [%d, %d)", acn, order, order, lo, hi)
		}
	}
}

func TestFrom2D(t *testing.T) {
	// Position p carries a harmonic of order (p+1)/2, and every 2D
	// channel must be outside the periphonic set.
	for p, acn := range From2D {
		if wantOrder := (p + 1) / 2; OrderFromChannel[acn] != wantOrder {
			t.Errorf("position %d: ACN %d has order %d, want %d",
				p, acn, OrderFromChannel[acn], wantOrder)
		}
		if PeriphonicMask&(1<<uint(acn)) != 0 {
			t.Errorf("position %d: ACN %d is flagged periphonic", p, acn)
		}
	}
}

func TestPeriphonicMask(t *testing.T) {
	// The 2D subset and the periphonic set partition all channels.
	var mask2D uint32
	for _, acn := range From2D {
		mask2D |= 1 << uint(acn)
	}
	if mask2D&PeriphonicMask != 0 {
		t.Errorf("2D mask %#x overlaps periphonic mask %#x", mask2D, PeriphonicMask)
	}
	if got := mask2D | PeriphonicMask; got != 1<<MaxChannels-1 {
		t.Errorf("2D | periphonic = %#x, want %#x", got, uint32(1<<MaxChannels-1))
	}
}

func TestChannelsForOrder(t *testing.T) {
	tests := []struct {
		order      int
		periphonic bool
		want       int
	}{
		{0, true, 1},
		{0, false, 1},
		{1, true, 4},
		{1, false, 3},
		{2, true, 9},
		{2, false, 5},
		{3, true, 16},
		{3, false, 7},
	}
	for _, tt := range tests {
		if got := ChannelsForOrder(tt.order, tt.periphonic); got != tt.want {
			t.Errorf("ChannelsForOrder(%d, %v) = %d, want %d",
				tt.order, tt.periphonic, got, tt.want)
		}
	}
}

func TestScales_N3DIsIdentity(t *testing.T) {
	for acn, s := range Scales(ScaleN3D) {
		if s != 1 {
			t.Errorf("N3D scale[%d] = %v, want 1", acn, s)
		}
	}
}

func TestScales_SN3D(t *testing.T) {
	// SN3D to N3D conversion is sqrt(2L+1) per order L.
	for acn, s := range Scales(ScaleSN3D) {
		want := math.Sqrt(float64(2*OrderFromChannel[acn] + 1))
		if math.Abs(s-want) > 1e-8 {
			t.Errorf("SN3D scale[%d] = %v, want %v", acn, s, want)
		}
	}
}

func TestScales_FuMa(t *testing.T) {
	fuma := Scales(ScaleFuMa)
	if math.Abs(fuma[0]-math.Sqrt2) > 1e-9 {
		t.Errorf("FuMa W scale = %v, want sqrt(2)", fuma[0])
	}
	// Within each order, ±m pairs share a normalization factor.
	pairs := [][2]int{{1, 3}, {4, 8}, {5, 7}, {9, 15}, {10, 14}, {11, 13}}
	for _, p := range pairs {
		if fuma[p[0]] != fuma[p[1]] {
			t.Errorf("FuMa scale mismatch: channel %d = %v, channel %d = %v",
				p[0], fuma[p[0]], p[1], fuma[p[1]])
		}
	}
}

func TestScales_UnknownFallsBackToN3D(t *testing.T) {
	if Scales(ScaleType(42)) != Scales(ScaleN3D) {
		t.Error("unknown scale type should fall back to the N3D table")
	}
}

func TestScaleTypeString(t *testing.T) {
	tests := []struct {
		t    ScaleType
		want string
	}{
		{ScaleN3D, "N3D"},
		{ScaleSN3D, "SN3D"},
		{ScaleFuMa, "FuMa"},
		{ScaleType(42), "N3D"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("ScaleType(%d).String() = %q, want %q", int(tt.t), got, tt.want)
		}
	}
}
