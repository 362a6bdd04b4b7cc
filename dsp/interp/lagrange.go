package interp

import (
	"math"

	"github.com/BenjaminDbb/synthlisa/dsp/source"
)

// Lagrange evaluates the unique degree-(2H-1) polynomial through the 2H
// samples centered on the target position, H being the half-window. The
// evaluation is an iterative divided-difference (Neville) tableau that
// tracks the nearest abscissa and accumulates the smaller of the two
// adjacent correction terms at each refinement pass, which keeps the
// accumulated error minimal even at large position offsets.
//
// The tableau arrays are 1-based with slot 0 unused, preserving the
// classic formulation's layout. They are scratch reused across calls, so a
// Lagrange instance is not reentrant.
type Lagrange struct {
	window int
	half   int

	xa, ya []float64
	c, d   []float64
}

// NewLagrange returns a polynomial interpolator with the given half-window.
// The total number of samples read per call is 2*half.
func NewLagrange(half int) *Lagrange {
	window := 2 * half
	l := &Lagrange{
		window: window,
		half:   half,
		xa:     make([]float64, window+1),
		ya:     make([]float64, window+1),
		c:      make([]float64, window+1),
		d:      make([]float64, window+1),
	}

	for i := 1; i <= window; i++ {
		l.xa[i] = float64(i)
	}

	return l
}

// Window returns the number of samples read per evaluation.
func (l *Lagrange) Window() int {
	return l.window
}

// Value gathers src[ind-half+1 .. ind+half] and evaluates the interpolating
// polynomial at local coordinate half+frac.
func (l *Lagrange) Value(src source.Source, ind int64, frac float64) (float64, error) {
	for i := 0; i < l.half; i++ {
		v, err := src.At(ind - int64(i))
		if err != nil {
			return 0, err
		}
		l.ya[l.half-i] = v

		v, err = src.At(ind + int64(i) + 1)
		if err != nil {
			return 0, err
		}
		l.ya[l.half+i+1] = v
	}

	return l.polint(float64(l.half) + frac), nil
}

func (l *Lagrange) polint(x float64) float64 {
	n := l.window

	ns := 1
	dif := math.Abs(x - l.xa[1])

	for i := 1; i <= n; i++ {
		if dift := math.Abs(x - l.xa[i]); dift < dif {
			ns = i
			dif = dift
		}

		l.c[i] = l.ya[i]
		l.d[i] = l.ya[i]
	}

	res := l.ya[ns]
	ns--

	for m := 1; m < n; m++ {
		for i := 1; i <= n-m; i++ {
			ho := l.xa[i] - x
			hp := l.xa[i+m] - x

			den := (l.c[i+1] - l.d[i]) / (ho - hp)

			l.d[i] = hp * den
			l.c[i] = ho * den
		}

		// Take whichever correction keeps the walk through the tableau
		// closest to the nearest abscissa.
		if 2*ns < n-m {
			res += l.c[ns+1]
		} else {
			res += l.d[ns]
			ns--
		}
	}

	return res
}

// FastLagrange computes the same polynomial as [Lagrange] but precomputes
// the reciprocal abscissa spacings at construction: for equispaced
// abscissae the tableau denominator at pass m is always -m, so the division
// inside the inner loop becomes a multiplication.
type FastLagrange struct {
	window int
	half   int

	xa, ya []float64
	c, d   []float64
}

// NewFastLagrange returns the precomputing variant with the given
// half-window.
func NewFastLagrange(half int) *FastLagrange {
	window := 2 * half
	l := &FastLagrange{
		window: window,
		half:   half,
		xa:     make([]float64, window+1),
		ya:     make([]float64, window+1),
		c:      make([]float64, window+1),
		d:      make([]float64, window+1),
	}

	for i := 1; i <= window; i++ {
		l.xa[i] = float64(i)
		l.ya[i] = -1.0 / l.xa[i]
	}

	return l
}

// Window returns the number of samples read per evaluation.
func (l *FastLagrange) Window() int {
	return l.window
}

// Value gathers src[ind-half+1 .. ind+half] directly into the tableau
// scratch and evaluates at local coordinate half+frac.
func (l *FastLagrange) Value(src source.Source, ind int64, frac float64) (float64, error) {
	base := ind - int64(l.half)

	for i := l.window; i > 0; i-- {
		v, err := src.At(base + int64(i))
		if err != nil {
			return 0, err
		}

		l.c[i] = v
		l.d[i] = v
	}

	return l.polint(float64(l.half) + frac), nil
}

func (l *FastLagrange) polint(x float64) float64 {
	n := l.window

	ns := 1
	mindif := math.Abs(x - l.xa[1])

	for i := 2; i <= n; i++ {
		if dif := math.Abs(x - l.xa[i]); dif < mindif {
			ns = i
			mindif = dif
		}
	}

	res := l.c[ns]
	ns--

	for m := 1; m < n; m++ {
		for i := 1; i <= n-m; i++ {
			den := l.ya[m] * (l.c[i+1] - l.d[i])

			l.c[i] = (l.xa[i] - x) * den
			l.d[i] = (l.xa[i+m] - x) * den
		}

		if 2*ns < n-m {
			res += l.c[ns+1]
		} else {
			res += l.d[ns]
			ns--
		}
	}

	return res
}
