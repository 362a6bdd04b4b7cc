package psd

import (
	"errors"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const defaultSegmentSize = 256

var (
	// ErrShortInput indicates fewer input samples than one segment.
	ErrShortInput = errors.New("psd: input shorter than one segment")
	// ErrBadSegment indicates a segment size that is not a power of two of
	// at least 8.
	ErrBadSegment = errors.New("psd: segment size must be a power of two >= 8")
)

// Config holds Welch estimation parameters.
type Config struct {
	// SampleRate in Hz; defaults to 1, giving normalized frequency.
	SampleRate float64
	// SegmentSize in samples, a power of two; defaults to 256. Segments
	// half-overlap.
	SegmentSize int
}

// Result holds a one-sided PSD estimate over SegmentSize/2+1 bins.
type Result struct {
	// Freqs holds the bin center frequencies in Hz.
	Freqs []float64
	// Power holds the PSD estimate per bin, in units^2/Hz.
	Power []float64
	// Segments is the number of averaged periodograms.
	Segments int
}

// Welch estimates the one-sided PSD of signal.
func Welch(signal []float64, cfg Config) (Result, error) {
	cfg = normalizeConfig(cfg)

	n := cfg.SegmentSize
	if n < 8 || n&(n-1) != 0 {
		return Result{}, ErrBadSegment
	}
	if len(signal) < n {
		return Result{}, ErrShortInput
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, err
	}

	win := hann(n)

	sumw2 := 0.0
	for _, w := range win {
		sumw2 += w * w
	}

	bins := n/2 + 1
	accum := make([]float64, bins)

	seg := make([]float64, n)
	inData := make([]complex128, n)
	out := make([]complex128, n)
	re := make([]float64, bins)
	im := make([]float64, bins)
	pw := make([]float64, bins)

	hop := n / 2
	segments := 0

	for start := 0; start+n <= len(signal); start += hop {
		copy(seg, signal[start:start+n])
		vecmath.MulBlockInPlace(seg, win)

		for i, v := range seg {
			inData[i] = complex(v, 0)
		}

		if err := plan.Forward(out, inData); err != nil {
			return Result{}, err
		}

		for k := 0; k < bins; k++ {
			re[k] = real(out[k])
			im[k] = imag(out[k])
		}

		vecmath.Power(pw, re, im)
		vecmath.AddBlockInPlace(accum, pw)

		segments++
	}

	// One-sided normalization: divide by fs*sum(w^2) per segment, average
	// over segments, and double the interior bins to fold in the negative
	// frequencies.
	power := make([]float64, bins)
	vecmath.ScaleBlock(power, accum, 1.0/(cfg.SampleRate*sumw2*float64(segments)))

	for k := 1; k < bins-1; k++ {
		power[k] *= 2
	}

	freqs := make([]float64, bins)
	for k := range freqs {
		freqs[k] = float64(k) * cfg.SampleRate / float64(n)
	}

	return Result{Freqs: freqs, Power: power, Segments: segments}, nil
}

// BandAverage returns the mean PSD over bins whose frequency lies in
// [lo, hi].
func BandAverage(r Result, lo, hi float64) float64 {
	sum := 0.0
	count := 0

	for k, f := range r.Freqs {
		if f < lo || f > hi {
			continue
		}

		sum += r.Power[k]
		count++
	}

	if count == 0 {
		return 0
	}

	return sum / float64(count)
}

func normalizeConfig(cfg Config) Config {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 1
	}

	if cfg.SegmentSize <= 0 {
		cfg.SegmentSize = defaultSegmentSize
	}

	return cfg
}

// hann returns the periodic Hann window of length n.
func hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n)))
	}

	return w
}
