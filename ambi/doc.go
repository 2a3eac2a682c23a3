// Package ambi defines the spherical-harmonic channel conventions shared by
// the ambisonic processing packages: channel counts per order, the ACN
// channel-to-order map, the horizontal (2D) channel subset, and the
// coefficient normalization scale tables (N3D, SN3D, FuMa).
//
// Channels follow the ACN (Ambisonic Channel Number) ordering throughout.
// A full-sphere ("periphonic") stream of order L carries (L+1)² channels;
// a horizontal-only stream carries 2L+1 channels, compacted in the order
// given by [From2D].
package ambi
