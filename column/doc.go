// Package column provides the typed, read-only column representations consumed
// by the reduction kernels.
//
// A column is an ordered sequence of integer, floating, logical or string
// values together with an optional validity bitmap. The bitmap uses the
// Apache Arrow layout (one bit per element, least significant bit first) so
// columns can be exchanged with Arrow arrays without re-encoding. A nil bitmap
// means every element is present.
//
// Floating columns additionally treat NaN as missing, matching IEEE
// arithmetic where NaN poisons every sum it enters.
//
// For interop with hosts that encode missing integers in-band, NAInt32 is the
// reserved sentinel (math.MinInt32). Int32FromSentinel and (*Int32).Sentinel
// convert between the two encodings at the boundary.
package column
