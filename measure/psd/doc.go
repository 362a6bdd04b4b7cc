// Package psd estimates one-sided power spectral density via Welch's method:
// Hann-windowed, half-overlapping segments, periodogram averaging. It is the
// measurement-side companion of the generators in dsp/noise, whose target
// PSD and spectral exponent it can verify empirically.
package psd
