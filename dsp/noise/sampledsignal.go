package noise

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/BenjaminDbb/synthlisa/dsp/core"
	"github.com/BenjaminDbb/synthlisa/dsp/filter"
	"github.com/BenjaminDbb/synthlisa/dsp/interp"
	"github.com/BenjaminDbb/synthlisa/dsp/signal"
	"github.com/BenjaminDbb/synthlisa/dsp/source"
)

// SampledSignal exposes a caller-provided finite record as a continuous
// signal, optionally through a post-filter. The record is left zero-padded;
// reads past its end fail with [source.ErrIndexOutOfRange].
type SampledSignal struct {
	record   *source.Sampled
	filtered *filter.Filtered // nil when no post-filter is configured
	sig      *signal.Interpolated
}

// NewSampledSignal wraps data (not copied) with sampling interval deltat,
// prebuffer duration, per-sample normalization norm, an optional
// post-filter (nil for none), and an interpolator code.
//
// If the interpolator half-window would read beyond the prebuffer near the
// record start it emits a warning on the diagnostic channel but does not
// fail: values near t=0 are then partly determined by the implicit zeros.
func NewSampledSignal(data []float64, deltat, prebuffer, norm float64, flt filter.Filter, interpCode int) (*SampledSignal, error) {
	in, err := interp.New(interpCode)
	if err != nil {
		return nil, fmt.Errorf("sampled-signal interpolator: %w", err)
	}

	if float64(interpCode) > prebuffer/deltat {
		core.L().Warn("noise: interpolator window strays beyond prebuffer near t=0, yielding zeros",
			zap.Int("halfwindow", interpCode),
			zap.Float64("prebuffer_samples", prebuffer/deltat))
	}

	record := source.NewSampled(data, norm)

	s := &SampledSignal{record: record}

	var src source.Source = record
	if flt != nil {
		s.filtered = filter.NewFiltered(int64(prebuffer/deltat)+cachePad, record, flt, 1.0)
		src = s.filtered
	}

	s.sig = signal.NewInterpolated(src, in, deltat, prebuffer, 1.0)

	return s, nil
}

// Value returns the signal at time t.
func (s *SampledSignal) Value(t float64) (float64, error) {
	return s.sig.Value(t)
}

// ValueAt returns the signal at tBase+tCorr using the split evaluation.
func (s *SampledSignal) ValueAt(tBase, tCorr float64) (float64, error) {
	return s.sig.ValueAt(tBase, tCorr)
}

// Reset clears the post-filter cache, if any. The record itself is
// immutable.
func (s *SampledSignal) Reset(seed uint64) {
	s.sig.Reset(seed)
}

// Signal returns the underlying continuous facade.
func (s *SampledSignal) Signal() *signal.Interpolated {
	return s.sig
}
