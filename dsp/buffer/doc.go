// Package buffer provides the bounded-lookback memoization core used by
// every discrete signal source: a fixed-capacity [Ring] of float64 samples
// addressed by absolute position, and a forward-only [Cache] that generates
// missing samples on demand in strictly increasing position order.
//
// Only the most recent Len() positions are retrievable; reading a position
// that has been evicted fails with [ErrStaleAccess]. The monotonic
// generation order is a hard invariant, not an optimization: recursive
// filters read their own previous output while a new sample is being
// generated, and strict ordering is what guarantees that those reads hit the
// cache instead of recursing.
package buffer
