package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/BenjaminDbb/synthlisa/dsp/core"
)

// funcSource adapts a pure function of position to the source contract.
type funcSource func(pos int64) float64

func (f funcSource) At(pos int64) (float64, error) { return f(pos), nil }
func (f funcSource) Reset(seed uint64)             {}

func ramp(pos int64) float64 { return 2*float64(pos) + 1 }

func TestNearestSelectsClosestSample(t *testing.T) {
	src := funcSource(ramp)
	n := Nearest{}

	v, err := n.Value(src, 3, 0.4)
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != ramp(3) {
		t.Fatalf("frac 0.4: got %v, want src[3] = %v", v, ramp(3))
	}

	v, err = n.Value(src, 3, 0.6)
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != ramp(4) {
		t.Fatalf("frac 0.6: got %v, want src[4] = %v", v, ramp(4))
	}
}

func TestLinearEndpointsExact(t *testing.T) {
	src := funcSource(ramp)
	l := Linear{}

	v, err := l.Value(src, 5, 0)
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != ramp(5) {
		t.Fatalf("frac 0: got %v, want src[5] = %v", v, ramp(5))
	}

	v, err = l.Value(src, 5, 1)
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != ramp(6) {
		t.Fatalf("frac 1: got %v, want src[6] = %v", v, ramp(6))
	}
}

func TestLinearMidpoint(t *testing.T) {
	src := funcSource(ramp)
	v, err := Linear{}.Value(src, 2, 0.5)
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if want := (ramp(2) + ramp(3)) / 2; v != want {
		t.Fatalf("got %v, want %v", v, want)
	}
}

func TestExtrapolatorExactOnLine(t *testing.T) {
	src := funcSource(ramp)
	e := Extrapolator{}

	// frac in (1,2): the target ind+frac lies beyond the last known sample,
	// and only src[ind-1], src[ind] are read.
	for _, frac := range []float64{1.25, 1.5, 1.75} {
		v, err := e.Value(src, 4, frac)
		if err != nil {
			t.Fatalf("Value: %v", err)
		}
		want := 2*(4+frac) + 1
		if !core.NearlyEqual(v, want, 1e-12) {
			t.Fatalf("frac %v: got %v, want %v", frac, v, want)
		}
	}
}

func TestExtrapolatorNeverReadsFuture(t *testing.T) {
	last := int64(4)
	src := funcSource(func(pos int64) float64 {
		if pos > last {
			panic("read past last known sample")
		}
		return ramp(pos)
	})

	if _, err := (Extrapolator{}).Value(src, last, 1.5); err != nil {
		t.Fatalf("Value: %v", err)
	}
}

func TestLagrangeExactOnPolynomial(t *testing.T) {
	// A half-window of H reproduces polynomials up to degree 2H-1 exactly.
	cubic := func(x float64) float64 { return x*x*x - 2*x*x + 3 }
	src := funcSource(func(pos int64) float64 { return cubic(float64(pos)) })

	l := NewLagrange(2)
	for _, frac := range []float64{0, 0.125, 0.5, 0.875} {
		v, err := l.Value(src, 10, frac)
		if err != nil {
			t.Fatalf("Value: %v", err)
		}
		want := cubic(10 + frac)
		if !core.NearlyEqual(v, want, 1e-9) {
			t.Fatalf("frac %v: got %v, want %v", frac, v, want)
		}
	}
}

func TestLagrangeVariantsAgree(t *testing.T) {
	src := funcSource(func(pos int64) float64 {
		return math.Sin(0.37 * float64(pos))
	})

	for half := 2; half <= 8; half++ {
		a := NewLagrange(half)
		b := NewFastLagrange(half)

		for _, ind := range []int64{20, 100, 100000} {
			for _, frac := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 0.999} {
				va, err := a.Value(src, ind, frac)
				if err != nil {
					t.Fatalf("half %d: Lagrange: %v", half, err)
				}
				vb, err := b.Value(src, ind, frac)
				if err != nil {
					t.Fatalf("half %d: FastLagrange: %v", half, err)
				}
				if !core.NearlyEqual(va, vb, 1e-10) {
					t.Fatalf("half %d ind %d frac %v: %v vs %v", half, ind, frac, va, vb)
				}
			}
		}
	}
}

func TestLagrangeMatchesLinearTrend(t *testing.T) {
	src := funcSource(ramp)
	l := NewFastLagrange(4)

	v, err := l.Value(src, 50, 0.3)
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	want := 2*(50+0.3) + 1
	if !core.NearlyEqual(v, want, 1e-9) {
		t.Fatalf("got %v, want %v", v, want)
	}
}

func TestNewCodes(t *testing.T) {
	for _, tc := range []struct {
		code int
		want any
	}{
		{code: 0, want: Nearest{}},
		{code: -1, want: Extrapolator{}},
		{code: 1, want: Linear{}},
	} {
		got, err := New(tc.code)
		if err != nil {
			t.Fatalf("New(%d): %v", tc.code, err)
		}
		if got != tc.want {
			t.Fatalf("New(%d) = %T, want %T", tc.code, got, tc.want)
		}
	}

	got, err := New(5)
	if err != nil {
		t.Fatalf("New(5): %v", err)
	}
	l, ok := got.(*Lagrange)
	if !ok {
		t.Fatalf("New(5) = %T, want *Lagrange", got)
	}
	if l.Window() != 10 {
		t.Fatalf("Window() = %d, want 10", l.Window())
	}

	if _, err := New(-5); !errors.Is(err, ErrUndefined) {
		t.Fatalf("New(-5) err = %v, want ErrUndefined", err)
	}
}
