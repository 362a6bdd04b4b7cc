package buffer

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/BenjaminDbb/synthlisa/dsp/core"
)

// ErrStaleAccess indicates a read of a position that has been evicted from
// the retention window. It signals a capacity or prebuffer misconfiguration
// by the caller and is never recovered internally.
var ErrStaleAccess = errors.New("buffer: stale sample access")

// GenerateFunc produces the sample at position pos. Implementations may read
// earlier positions of the cache that owns them; the cache guarantees those
// positions are already generated.
type GenerateFunc func(pos int64) (float64, error)

// Cache memoizes a discretely indexed process over a bounded lookback
// window. Samples are generated lazily, in strictly increasing position
// order, and each position is generated at most once between resets.
//
// A Cache is not safe for concurrent use, and a single instance must not be
// read re-entrantly beyond its own high-water mark from within its
// GenerateFunc.
type Cache struct {
	ring    *Ring
	current int64
	gen     GenerateFunc
}

// empty is the high-water mark of a cache that has generated nothing yet.
const empty = -1

// NewCache returns an empty cache of the given capacity backed by gen.
func NewCache(capacity int64, gen GenerateFunc) *Cache {
	return &Cache{ring: NewRing(capacity), current: empty, gen: gen}
}

// Len returns the retention capacity in samples.
func (c *Cache) Len() int64 {
	return c.ring.Len()
}

// Current returns the high-water mark: the largest position generated so
// far, or -1 if the cache is empty.
func (c *Cache) Current() int64 {
	return c.current
}

// At returns the sample at pos, generating any positions between the
// high-water mark and pos first. Positions at or below Current()-Len() fail
// with [ErrStaleAccess].
//
// The high-water mark advances after every generated sample, so a
// GenerateFunc that reads earlier positions of this same cache always takes
// the memoized path.
func (c *Cache) At(pos int64) (float64, error) {
	if pos <= c.current-c.ring.Len() {
		core.L().Error("buffer: stale sample access",
			zap.Int64("pos", pos),
			zap.Int64("current", c.current),
			zap.Int64("capacity", c.ring.Len()))

		return 0, fmt.Errorf("position %d with high-water mark %d and capacity %d: %w",
			pos, c.current, c.ring.Len(), ErrStaleAccess)
	}

	for c.current < pos {
		next := c.current + 1

		v, err := c.gen(next)
		if err != nil {
			return 0, err
		}

		c.ring.Set(next, v)
		c.current = next
	}

	return c.ring.At(pos), nil
}

// Reset zero-fills the ring and empties the high-water mark, so the next
// access regenerates from the beginning.
func (c *Cache) Reset() {
	c.ring.Reset()
	c.current = empty
}
