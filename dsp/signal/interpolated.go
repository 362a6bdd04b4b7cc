package signal

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/BenjaminDbb/synthlisa/dsp/core"
	"github.com/BenjaminDbb/synthlisa/dsp/interp"
	"github.com/BenjaminDbb/synthlisa/dsp/source"
)

// Interpolated presents a discrete source as a function of real time.
// Time t maps to continuous sample position (t+prebuffer)/deltat; the
// integer part addresses the source and the fraction goes to the
// interpolator. The prebuffer reserves history at the start of the record
// so interpolation near t=0 has samples on both sides.
type Interpolated struct {
	src    source.Source
	interp interp.Interpolator

	deltat    float64
	prebuffer float64
	scale     float64
}

// NewInterpolated combines src and in into a continuous facade with
// sampling interval deltat, prebuffer duration, and output scale.
func NewInterpolated(src source.Source, in interp.Interpolator, deltat, prebuffer, scale float64) *Interpolated {
	return &Interpolated{
		src:       src,
		interp:    in,
		deltat:    deltat,
		prebuffer: prebuffer,
		scale:     scale,
	}
}

// Value returns the signal at time t. A zero scale short-circuits to zero
// without touching the source. Range failures from the source propagate
// unchanged apart from added positional context.
func (s *Interpolated) Value(t float64) (float64, error) {
	if s.scale == 0.0 {
		return 0, nil
	}

	ireal := (t + s.prebuffer) / s.deltat
	iint := math.Floor(ireal)
	ifrac := ireal - iint

	v, err := s.interp.Value(s.src, int64(iint), ifrac)
	if err != nil {
		core.L().Error("signal: out-of-range access",
			zap.Float64("t", t), zap.Error(err))

		return 0, fmt.Errorf("value at t=%g: %w", t, err)
	}

	return s.scale * v, nil
}

// ValueAt returns the signal at tBase+tCorr, where tBase may be large and
// tCorr is a small correction. The two terms are floored into integer and
// fractional parts independently and recombined, avoiding the cancellation
// error of summing them in full precision first.
func (s *Interpolated) ValueAt(tBase, tCorr float64) (float64, error) {
	realb := (tBase + s.prebuffer) / s.deltat
	iintb := math.Floor(realb)
	ifracb := realb - iintb

	realc := tCorr / s.deltat
	iintc := math.Floor(realc)
	ifracc := realc - iintc

	ind := int64(iintb) + int64(iintc)
	ifrac := ifracb + ifracc

	if ifrac >= 1.0 {
		ind++
		ifrac -= 1.0
	}

	v, err := s.interp.Value(s.src, ind, ifrac)
	if err != nil {
		core.L().Error("signal: out-of-range access",
			zap.Float64("tBase", tBase), zap.Float64("tCorr", tCorr), zap.Error(err))

		return 0, fmt.Errorf("value at (%g,%g): %w", tBase, tCorr, err)
	}

	return s.scale * v, nil
}

// Reset propagates the seed down through the source.
func (s *Interpolated) Reset(seed uint64) {
	s.src.Reset(seed)
}

// SetInterpolator swaps the interpolation strategy on a live facade.
func (s *Interpolated) SetInterpolator(in interp.Interpolator) {
	s.interp = in
}

// Scale returns the output scale.
func (s *Interpolated) Scale() float64 {
	return s.scale
}

// SetScale changes the output scale. Cached samples are unscaled, so no
// regeneration happens.
func (s *Interpolated) SetScale(scale float64) {
	s.scale = scale
}
