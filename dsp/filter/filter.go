package filter

import "github.com/BenjaminDbb/synthlisa/dsp/source"

// Filter computes one output sample from an upstream source x and a
// feedback source y. Implementations hold immutable coefficients only; all
// evolving state lives in the sources.
type Filter interface {
	Value(x, y source.Source, pos int64) (float64, error)
}

// Identity passes the upstream sample through unchanged.
type Identity struct{}

// Value returns x[pos].
func (Identity) Value(x, y source.Source, pos int64) (float64, error) {
	return x.At(pos)
}

// DefaultIntegratorAlpha is the pole used by the red-noise composites. The
// slight leak keeps the integrated random walk from drifting without bound
// over long runs.
const DefaultIntegratorAlpha = 0.9999

// Integrator is a single-pole recursive integrator: alpha*y[p-1] + x[p].
type Integrator struct {
	alpha float64
}

// NewIntegrator returns an integrator with the given pole.
func NewIntegrator(alpha float64) Integrator {
	return Integrator{alpha: alpha}
}

// Alpha returns the pole.
func (f Integrator) Alpha() float64 {
	return f.alpha
}

// Value returns alpha*y[pos-1] + x[pos].
func (f Integrator) Value(x, y source.Source, pos int64) (float64, error) {
	prev, err := y.At(pos - 1)
	if err != nil {
		return 0, err
	}

	cur, err := x.At(pos)
	if err != nil {
		return 0, err
	}

	return f.alpha*prev + cur, nil
}

// Diff is the first-difference filter: x[p] - x[p-1].
type Diff struct{}

// Value returns x[pos] - x[pos-1].
func (Diff) Value(x, y source.Source, pos int64) (float64, error) {
	cur, err := x.At(pos)
	if err != nil {
		return 0, err
	}

	prev, err := x.At(pos - 1)
	if err != nil {
		return 0, err
	}

	return cur - prev, nil
}

// FIR is a finite-impulse-response filter: sum_i a[i]*x[p-i].
// By convention a[0] = 1 gives unit gain at the current sample.
type FIR struct {
	a []float64
}

// NewFIR returns a FIR filter over a private copy of the coefficients.
func NewFIR(coeffs []float64) *FIR {
	a := make([]float64, len(coeffs))
	copy(a, coeffs)

	return &FIR{a: a}
}

// Coefficients returns a copy of the feedforward coefficients.
func (f *FIR) Coefficients() []float64 {
	a := make([]float64, len(f.a))
	copy(a, f.a)

	return a
}

// Value returns the feedforward convolution at pos.
func (f *FIR) Value(x, y source.Source, pos int64) (float64, error) {
	acc := 0.0

	for i, c := range f.a {
		v, err := x.At(pos - int64(i))
		if err != nil {
			return 0, err
		}

		acc += c * v
	}

	return acc, nil
}

// IIR is a general recursive filter:
//
//	sum_i a[i]*x[p-i] + sum_{j>=1} b[j]*y[p-j]
//
// b[0] is unused by convention; a[0] = 1 gives unit gain.
type IIR struct {
	a []float64
	b []float64
}

// NewIIR returns a recursive filter over private copies of the feedforward
// coefficients a and feedback coefficients b.
func NewIIR(a, b []float64) *IIR {
	fa := make([]float64, len(a))
	copy(fa, a)

	fb := make([]float64, len(b))
	copy(fb, b)

	return &IIR{a: fa, b: fb}
}

// Value returns the recursive convolution at pos.
func (f *IIR) Value(x, y source.Source, pos int64) (float64, error) {
	acc := 0.0

	for i, c := range f.a {
		v, err := x.At(pos - int64(i))
		if err != nil {
			return 0, err
		}

		acc += c * v
	}

	for j := 1; j < len(f.b); j++ {
		v, err := y.At(pos - int64(j))
		if err != nil {
			return 0, err
		}

		acc += f.b[j] * v
	}

	return acc, nil
}
