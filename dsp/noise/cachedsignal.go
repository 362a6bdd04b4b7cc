package noise

import (
	"fmt"

	"github.com/BenjaminDbb/synthlisa/dsp/interp"
	"github.com/BenjaminDbb/synthlisa/dsp/signal"
	"github.com/BenjaminDbb/synthlisa/dsp/source"
)

// CachedSignal memoizes an arbitrary continuous signal: the signal is
// resampled into a buffered discrete source and re-exposed through an
// interpolator, turning repeated evaluations of an expensive generator into
// cheap cache lookups plus interpolation.
type CachedSignal struct {
	resampled *source.Resampled
	sig       *signal.Interpolated
}

// NewCachedSignal caches sig at sampling interval deltat over a retention
// window of capacity samples, reading it back through the interpolator for
// interpCode. The prebuffer is sized to the interpolator half-window so
// evaluations near t=0 stay inside sampled history.
func NewCachedSignal(sig source.Continuous, capacity int64, deltat float64, interpCode int) (*CachedSignal, error) {
	in, err := interp.New(interpCode)
	if err != nil {
		return nil, fmt.Errorf("cached-signal interpolator: %w", err)
	}

	prebuffer := float64(interpCode) * deltat

	resampled := source.NewResampled(capacity, deltat, prebuffer, sig)

	return &CachedSignal{
		resampled: resampled,
		sig:       signal.NewInterpolated(resampled, in, deltat, prebuffer, 1.0),
	}, nil
}

// Value returns the cached signal at time t.
func (c *CachedSignal) Value(t float64) (float64, error) {
	return c.sig.Value(t)
}

// ValueAt returns the cached signal at tBase+tCorr using the split
// evaluation.
func (c *CachedSignal) ValueAt(tBase, tCorr float64) (float64, error) {
	return c.sig.ValueAt(tBase, tCorr)
}

// Reset empties the cache and propagates the seed to the wrapped signal.
func (c *CachedSignal) Reset(seed uint64) {
	c.sig.Reset(seed)
}

// Signal returns the underlying continuous facade.
func (c *CachedSignal) Signal() *signal.Interpolated {
	return c.sig
}
