// Package reduce computes plain and weighted sums over numeric columns,
// optionally partitioned into groups.
//
// Three entry points cover the supported shapes:
//
//   - Sum reduces one column to max(ng, 1) values.
//   - SumMatrix reduces every column of a column-major matrix.
//   - SumTable and SumTableFlat reduce every column of a table.
//
// # Missing values
//
// With skip-missing enabled (the default) missing elements are ignored and a
// slot only becomes missing when every contribution to it was missing. With
// skip-missing disabled any missing contribution makes its slot missing.
// Floating results mark missing slots with NaN; integer results carry a
// validity bitmap.
//
// # Integer overflow
//
// Integer sums are accumulated in 64 bits. An ungrouped integer sum that
// leaves [-2147483647, 2147483647] is returned as a Float64 column instead of
// an Int32. A grouped integer sum that leaves the range fails with
// ErrIntegerOverflow and returns no output: a grouped result must be
// uniformly typed across its slots.
//
// # Threads
//
// Floating sums, and ungrouped integer sums, run on a bounded goroutine team
// when more than one thread is requested and the column is longer than the
// configured threshold. Parallel floating sums may differ from the sequential
// result in the lowest mantissa bits; integer results are bit-exact.
// Weighted sums always run sequentially.
package reduce
