package source

import "time"

// SeedSequence hands out auto-incrementing seeds so that independently
// constructed sources decorrelate by default. The base is derived from the
// wall clock on first use unless Set is called with a nonzero value first.
//
// It replaces the usual global seed counter with an explicit state object:
// tests can construct their own sequence with a known base instead of
// relying on ambient process state.
type SeedSequence struct {
	next uint64
}

// Seeds is the process-wide sequence consulted when a source is constructed
// or reset with seed zero.
var Seeds = new(SeedSequence)

// Set fixes the next seed the sequence will hand out. A zero value re-arms
// wall-clock initialization on the next call to Next.
func (s *SeedSequence) Set(seed uint64) {
	s.next = seed
}

// Next returns the current seed and advances the sequence. On first use of
// a zero-based sequence the base is taken from the wall clock.
func (s *SeedSequence) Next() uint64 {
	if s.next == 0 {
		s.next = uint64(time.Now().UnixNano())
	}

	seed := s.next
	s.next++

	return seed
}

// resolve maps the public seeding convention onto a concrete seed: zero
// draws from the sequence, anything else is used as given.
func (s *SeedSequence) resolve(seed uint64) uint64 {
	if seed == 0 {
		return s.Next()
	}

	return seed
}
