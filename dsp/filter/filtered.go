package filter

import (
	"github.com/BenjaminDbb/synthlisa/dsp/buffer"
	"github.com/BenjaminDbb/synthlisa/dsp/source"
)

// Filtered is a buffered source whose generation rule applies a filter to an
// upstream source, passing itself as the feedback source. Its cache holds
// the filter's own past output, which is what makes recursive filters work.
//
// The cache stores unscaled values; the output scale is applied on read, and
// feedback reads therefore see scaled samples, matching the behavior of the
// public accessor.
type Filtered struct {
	cache  *buffer.Cache
	source source.Source
	filter Filter
	scale  float64
}

// NewFiltered returns a filtered source retaining capacity samples of its
// own output, reading from src through flt and scaling output by scale.
func NewFiltered(capacity int64, src source.Source, flt Filter, scale float64) *Filtered {
	f := &Filtered{
		source: src,
		filter: flt,
		scale:  scale,
	}

	f.cache = buffer.NewCache(capacity, f.generate)

	return f
}

// At returns the scaled filter output at pos.
func (f *Filtered) At(pos int64) (float64, error) {
	v, err := f.cache.At(pos)
	if err != nil {
		return 0, err
	}

	return f.scale * v, nil
}

// Reset propagates the seed upstream and empties the output cache.
func (f *Filtered) Reset(seed uint64) {
	f.source.Reset(seed)
	f.cache.Reset()
}

func (f *Filtered) generate(pos int64) (float64, error) {
	return f.filter.Value(f.source, f, pos)
}
