// Package source defines the discrete signal source contract and the three
// concrete sources the generators are built from: Gaussian white noise,
// caller-supplied finite records, and a bridge that resamples an arbitrary
// continuous signal into the discrete domain.
//
// A [Source] is indexed by signed sample position; negative positions model
// time before the logical start of a record. Sources that own a cache are
// forward-only and single-threaded, see package buffer for the retention
// contract.
package source
