package noise

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/BenjaminDbb/synthlisa/dsp/core"
	"github.com/BenjaminDbb/synthlisa/dsp/filter"
	"github.com/BenjaminDbb/synthlisa/dsp/interp"
	"github.com/BenjaminDbb/synthlisa/dsp/signal"
	"github.com/BenjaminDbb/synthlisa/dsp/source"
)

// ErrUndefinedExponent indicates a power-law exponent with no filter
// mapping. Recognized exponents are -2, 0, and +2.
var ErrUndefinedExponent = errors.New("noise: undefined power-law exponent")

// cachePad extends every generation cache beyond the prebuffer so that
// interpolator windows near the record start stay inside the retention
// window.
const cachePad = 32

// PowerLaw generates stochastic noise whose one-sided power spectral
// density is psd*(f/f0)^exponent: white noise shaped by the filter matching
// the exponent, normalized in closed form from the target PSD and the
// Nyquist frequency, then interpolated to continuous time.
type PowerLaw struct {
	white    *source.WhiteNoise
	filtered *filter.Filtered
	sig      *signal.Interpolated
}

// NewPowerLaw builds a power-law noise generator with sampling interval
// deltat, prebuffer duration, target PSD, spectral exponent (-2, 0 or +2),
// interpolator code (see package interp), and seed (zero for auto-seeding).
func NewPowerLaw(deltat, prebuffer, psd, exponent float64, interpCode int, seed uint64) (*PowerLaw, error) {
	nyquist := 0.5 / deltat

	var (
		flt  filter.Filter
		norm float64
	)

	switch exponent {
	case 0.0:
		flt = filter.Identity{}
		norm = math.Sqrt(psd) * math.Sqrt(nyquist)
	case 2.0:
		flt = filter.Diff{}
		norm = math.Sqrt(psd) * math.Sqrt(nyquist) / (2.0 * math.Pi * deltat)
	case -2.0:
		flt = filter.NewIntegrator(filter.DefaultIntegratorAlpha)
		norm = math.Sqrt(psd) * math.Sqrt(nyquist) * (2.0 * math.Pi * deltat)
	default:
		core.L().Error("noise: undefined power-law exponent", zap.Float64("exponent", exponent))

		return nil, fmt.Errorf("exponent %g: %w", exponent, ErrUndefinedExponent)
	}

	in, err := interp.New(interpCode)
	if err != nil {
		return nil, fmt.Errorf("power-law interpolator: %w", err)
	}

	capacity := int64(prebuffer/deltat) + cachePad

	white := source.NewWhiteNoise(capacity, seed, 1.0)
	filtered := filter.NewFiltered(capacity, white, flt, norm)
	sig := signal.NewInterpolated(filtered, in, deltat, prebuffer, 1.0)

	return &PowerLaw{
		white:    white,
		filtered: filtered,
		sig:      sig,
	}, nil
}

// Value returns the noise at time t.
func (p *PowerLaw) Value(t float64) (float64, error) {
	return p.sig.Value(t)
}

// ValueAt returns the noise at tBase+tCorr using the reduced-cancellation
// split evaluation.
func (p *PowerLaw) ValueAt(tBase, tCorr float64) (float64, error) {
	return p.sig.ValueAt(tBase, tCorr)
}

// Reset propagates the seed down through the filtered and white-noise
// stages.
func (p *PowerLaw) Reset(seed uint64) {
	p.sig.Reset(seed)
}

// Signal returns the underlying continuous facade, exposing scale and
// interpolator adjustments.
func (p *PowerLaw) Signal() *signal.Interpolated {
	return p.sig
}
