package source

import "github.com/BenjaminDbb/synthlisa/dsp/buffer"

// Resampled bridges a continuous signal into the discrete domain so that
// filters and interpolators can treat natively discrete and originally
// continuous generators uniformly. Sample pos maps to continuous time
// pos*deltat - prebuffer, and evaluations are memoized by the cache.
type Resampled struct {
	cache     *buffer.Cache
	signal    Continuous
	deltat    float64
	prebuffer float64
}

// NewResampled returns a bridge over signal sampled every deltat seconds,
// shifted left by the prebuffer duration, retaining capacity samples.
func NewResampled(capacity int64, deltat, prebuffer float64, signal Continuous) *Resampled {
	r := &Resampled{
		signal:    signal,
		deltat:    deltat,
		prebuffer: prebuffer,
	}

	r.cache = buffer.NewCache(capacity, r.generate)

	return r
}

// At returns the sample at pos, evaluating the continuous signal for any
// positions not yet cached.
func (r *Resampled) At(pos int64) (float64, error) {
	return r.cache.At(pos)
}

// Reset propagates the seed to the continuous signal and empties the cache.
func (r *Resampled) Reset(seed uint64) {
	r.signal.Reset(seed)
	r.cache.Reset()
}

func (r *Resampled) generate(pos int64) (float64, error) {
	return r.signal.Value(float64(pos)*r.deltat - r.prebuffer)
}
