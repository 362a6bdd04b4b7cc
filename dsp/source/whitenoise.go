package source

import (
	"math"
	"math/rand"

	"github.com/BenjaminDbb/synthlisa/dsp/buffer"
)

// WhiteNoise is a buffered source of i.i.d. zero-mean Gaussian deviates
// scaled by a fixed normalization factor.
//
// Deviates come from the polar Box-Muller transform: each pair of uniform
// draws yields two independent Gaussians, one returned immediately and one
// held for the next generation call. The generation rule ignores the sample
// position, so values are meaningful only through the memoizing cache.
type WhiteNoise struct {
	cache *buffer.Cache
	rng   *rand.Rand
	seeds *SeedSequence
	norm  float64

	spare    float64
	hasSpare bool
}

// Option configures a WhiteNoise source.
type Option func(*WhiteNoise)

// WithSeeds overrides the seed sequence consulted when a zero seed is
// requested. The default is the process-wide [Seeds].
func WithSeeds(seq *SeedSequence) Option {
	return func(w *WhiteNoise) {
		if seq != nil {
			w.seeds = seq
		}
	}
}

// NewWhiteNoise returns a white-noise source retaining the given number of
// samples, scaled by norm. A zero seed draws the next seed from the
// sequence; a nonzero seed is exactly reproducible.
func NewWhiteNoise(capacity int64, seed uint64, norm float64, opts ...Option) *WhiteNoise {
	w := &WhiteNoise{
		seeds: Seeds,
		norm:  norm,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}

	w.cache = buffer.NewCache(capacity, w.generate)
	w.reseed(seed)

	return w
}

// At returns the deviate at position pos, generating forward as needed.
func (w *WhiteNoise) At(pos int64) (float64, error) {
	return w.cache.At(pos)
}

// Reset re-seeds the generator and empties the cache.
func (w *WhiteNoise) Reset(seed uint64) {
	w.reseed(seed)
	w.cache.Reset()
}

func (w *WhiteNoise) reseed(seed uint64) {
	w.rng = rand.New(rand.NewSource(int64(w.seeds.resolve(seed))))
	w.hasSpare = false
	w.spare = 0
}

func (w *WhiteNoise) generate(pos int64) (float64, error) {
	if w.hasSpare {
		w.hasSpare = false
		return w.norm * w.spare, nil
	}

	var x, y, r2 float64
	for {
		x = -1.0 + 2.0*w.rng.Float64()
		y = -1.0 + 2.0*w.rng.Float64()

		r2 = x*x + y*y
		if r2 <= 1.0 && r2 != 0 {
			break
		}
	}

	root := math.Sqrt(-2.0 * math.Log(r2) / r2)

	w.spare = x * root
	w.hasSpare = true

	return w.norm * y * root, nil
}
