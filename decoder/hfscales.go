package decoder

import (
	"fmt"

	"github.com/cwbudde/algo-ambisonic/ambi"
)

// HF gain compensation curves applied by decoders of a given ambisonic
// order. The selector set is closed: orders 0 and 1 share the flat
// curve, order 2 and orders 3+ each have their own.
var (
	hfScale1O = [ambi.MaxOrder + 1]float64{1.00000000e+00, 1.00000000e+00, 1.0, 1.0}
	hfScale2O = [ambi.MaxOrder + 1]float64{7.45355990e-01, 1.00000000e+00, 1.0, 1.0}
	hfScale3O = [ambi.MaxOrder + 1]float64{5.89792205e-01, 8.79693856e-01, 1.0, 1.0}
)

func hfScalesForOrder(order int) *[ambi.MaxOrder + 1]float64 {
	if order >= 3 {
		return &hfScale3O
	}
	if order == 2 {
		return &hfScale2O
	}
	return &hfScale1O
}

// HFOrderScales returns, for each order 0..inOrder, the ratio between
// the HF compensation of an inOrder decoder and that of an outOrder
// decoder. Callers use the ratios to rescale a lower-order decoder's
// contribution when blending it with a higher-order one so their
// high-frequency energy stays consistent. Entries above inOrder are
// left at zero.
//
// outOrder must be at least inOrder and inOrder must be non-negative;
// violating either panics.
func HFOrderScales(inOrder, outOrder int) [ambi.MaxOrder + 1]float64 {
	if inOrder < 0 || outOrder < inOrder {
		panic(fmt.Sprintf("decoder: HFOrderScales requires 0 <= inOrder <= outOrder, got in=%d out=%d",
			inOrder, outOrder))
	}

	var ret [ambi.MaxOrder + 1]float64
	target := hfScalesForOrder(outOrder)
	input := hfScalesForOrder(inOrder)
	for i := 0; i <= inOrder && i <= ambi.MaxOrder; i++ {
		ret[i] = input[i] / target[i]
	}
	return ret
}
