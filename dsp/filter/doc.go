// Package filter provides the causal digital filters applied to discrete
// signal sources, and the buffered [Filtered] source that drives them.
//
// A [Filter] is a pure strategy: its value at position p is a function of
// the upstream source x and the feedback source y at positions <= p only.
// Recursive filters reference y, which [Filtered] wires to its own output
// cache; the forward-only generation order of package buffer guarantees
// those references are already cached when the filter runs.
package filter
