package interp

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/BenjaminDbb/synthlisa/dsp/core"
	"github.com/BenjaminDbb/synthlisa/dsp/source"
)

// ErrUndefined indicates an interpolator code with no defined strategy.
var ErrUndefined = errors.New("interp: undefined interpolator code")

// Interpolator evaluates a discrete source at continuous position ind+frac.
// All strategies expect 0 <= frac < 1 except [Extrapolator], which uses
// 1 < frac < 2 so that only past samples are read.
type Interpolator interface {
	Value(src source.Source, ind int64, frac float64) (float64, error)
}

// New maps an integer configuration code to an interpolator: 0 nearest,
// -1 causal extrapolation, 1 linear, >1 polynomial with that half-window.
// Any other code fails with [ErrUndefined].
func New(code int) (Interpolator, error) {
	switch {
	case code == 0:
		return Nearest{}, nil
	case code == -1:
		return Extrapolator{}, nil
	case code == 1:
		return Linear{}, nil
	case code > 1:
		return NewLagrange(code), nil
	default:
		core.L().Error("interp: undefined interpolator code", zap.Int("code", code))

		return nil, fmt.Errorf("code %d: %w", code, ErrUndefined)
	}
}

// Nearest selects the sample closest to ind+frac.
type Nearest struct{}

// Value returns src[ind] for frac < 0.5 and src[ind+1] otherwise.
func (Nearest) Value(src source.Source, ind int64, frac float64) (float64, error) {
	if frac < 0.5 {
		return src.At(ind)
	}

	return src.At(ind + 1)
}

// Linear interpolates between the two samples bracketing ind+frac.
type Linear struct{}

// Value returns (1-frac)*src[ind] + frac*src[ind+1].
func (Linear) Value(src source.Source, ind int64, frac float64) (float64, error) {
	a, err := src.At(ind)
	if err != nil {
		return 0, err
	}

	b, err := src.At(ind + 1)
	if err != nil {
		return 0, err
	}

	return (1.0-frac)*a + frac*b, nil
}

// Extrapolator extends the line through src[ind-1] and src[ind] forward,
// for callers that must never read a sample beyond the last known point.
// The target position is ind+frac with 1 < frac < 2.
type Extrapolator struct{}

// Value returns (-frac)*src[ind-1] + (1+frac)*src[ind].
func (Extrapolator) Value(src source.Source, ind int64, frac float64) (float64, error) {
	a, err := src.At(ind - 1)
	if err != nil {
		return 0, err
	}

	b, err := src.At(ind)
	if err != nil {
		return 0, err
	}

	return (-frac)*a + (1.0+frac)*b, nil
}
