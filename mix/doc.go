// Package mix provides the block-mixing primitive used to turn decoded
// gain rows into output feeds: an accumulating weighted sum of input
// channel blocks into a caller-owned destination.
//
// The mix is always additive. Callers own clearing: zero a destination
// before the first contributor writes to it, since several decoders or
// sources may target the same physical output in a render graph.
package mix
