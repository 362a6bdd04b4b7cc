package filter

import (
	"errors"
	"testing"

	"github.com/BenjaminDbb/synthlisa/dsp/buffer"
	"github.com/BenjaminDbb/synthlisa/dsp/core"
	"github.com/BenjaminDbb/synthlisa/dsp/source"
)

func TestFilteredScaleAppliedOnRead(t *testing.T) {
	f := NewFiltered(16, step{v: 3}, Identity{}, 2.0)

	v, err := f.At(0)
	if err != nil {
		t.Fatalf("At(0): %v", err)
	}
	if v != 6 {
		t.Fatalf("At(0) = %v, want 6", v)
	}
}

func TestFilteredFeedbackSeesScaledOutput(t *testing.T) {
	// With scale s the recursion is raw[p] = alpha*s*raw[p-1] + x[p], so an
	// impulse gives reads of s*(alpha*s)^p.
	const alpha, scale = 0.25, 2.0
	f := NewFiltered(64, impulse{}, NewIntegrator(alpha), scale)

	want := scale
	for p := int64(0); p < 12; p++ {
		v, err := f.At(p)
		if err != nil {
			t.Fatalf("At(%d): %v", p, err)
		}
		if !core.NearlyEqual(v, want, 1e-15) {
			t.Fatalf("At(%d) = %v, want %v", p, v, want)
		}
		want *= alpha * scale
	}
}

func TestFilteredRecursiveOverWhiteNoiseIsStable(t *testing.T) {
	white := source.NewWhiteNoise(128, 42, 1.0)
	f := NewFiltered(128, white, NewIntegrator(DefaultIntegratorAlpha), 1.0)

	forward := make([]float64, 64)
	for p := range forward {
		v, err := f.At(int64(p))
		if err != nil {
			t.Fatalf("At(%d): %v", p, err)
		}
		forward[p] = v
	}

	for p := 63; p >= 0; p-- {
		v, err := f.At(int64(p))
		if err != nil {
			t.Fatalf("At(%d): %v", p, err)
		}
		if v != forward[p] {
			t.Fatalf("At(%d) drifted on re-read", p)
		}
	}
}

func TestFilteredStaleAccessPropagates(t *testing.T) {
	f := NewFiltered(4, step{v: 1}, Identity{}, 1.0)
	if _, err := f.At(10); err != nil {
		t.Fatalf("At(10): %v", err)
	}
	if _, err := f.At(2); !errors.Is(err, buffer.ErrStaleAccess) {
		t.Fatalf("err = %v, want ErrStaleAccess", err)
	}
}

func TestFilteredResetPropagatesUpstream(t *testing.T) {
	white := source.NewWhiteNoise(64, 5, 1.0)
	f := NewFiltered(64, white, Identity{}, 1.0)

	first, err := f.At(0)
	if err != nil {
		t.Fatalf("At(0): %v", err)
	}

	f.Reset(5)
	again, err := f.At(0)
	if err != nil {
		t.Fatalf("At(0) after reset: %v", err)
	}
	if first != again {
		t.Fatal("reset with the same seed should reproduce the stream")
	}

	f.Reset(6)
	other, err := f.At(0)
	if err != nil {
		t.Fatalf("At(0) after reseed: %v", err)
	}
	if other == first {
		t.Fatal("reset with a different seed should change the stream")
	}
}
