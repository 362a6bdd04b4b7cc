package source

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/BenjaminDbb/synthlisa/dsp/core"
)

// Sampled wraps a caller-owned, fully materialized record. The slice is not
// copied; the caller keeps ownership and must not mutate it during use.
//
// Negative positions read as zero (nothing happened before the recording
// started). Positions at or past the end fail with [ErrIndexOutOfRange].
type Sampled struct {
	data []float64
	norm float64
}

// NewSampled wraps data, scaling every sample by norm on read.
func NewSampled(data []float64, norm float64) *Sampled {
	return &Sampled{data: data, norm: norm}
}

// Len returns the record length.
func (s *Sampled) Len() int64 {
	return int64(len(s.data))
}

// At returns the sample at pos.
func (s *Sampled) At(pos int64) (float64, error) {
	switch {
	case pos < 0:
		return 0, nil
	case pos >= int64(len(s.data)):
		core.L().Error("source: sampled read past end of record",
			zap.Int64("pos", pos),
			zap.Int64("length", int64(len(s.data))))

		return 0, fmt.Errorf("position %d of %d-sample record: %w",
			pos, len(s.data), ErrIndexOutOfRange)
	default:
		return s.norm * s.data[pos], nil
	}
}

// Reset is a no-op: the record is immutable and holds no cache or
// randomness.
func (s *Sampled) Reset(seed uint64) {}
