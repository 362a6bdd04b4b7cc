package buffer

// Ring is a fixed-capacity circular store of float64 samples addressed by
// absolute position. Position p lives in slot p mod Len(); the Ring itself
// performs no bounds checking, retention enforcement is the owning
// [Cache]'s job.
type Ring struct {
	data []float64
}

// NewRing returns a zero-filled ring of the given capacity.
// Capacities below one are raised to one.
func NewRing(capacity int64) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{data: make([]float64, capacity)}
}

// Len returns the ring capacity.
func (r *Ring) Len() int64 {
	return int64(len(r.data))
}

// At returns the sample stored in the slot for position pos.
// Negative positions address slots like any others, so a freshly reset ring
// reads as zero everywhere; this is what left-pads filter history.
func (r *Ring) At(pos int64) float64 {
	return r.data[r.slot(pos)]
}

// Set stores v in the slot for position pos.
func (r *Ring) Set(pos int64, v float64) {
	r.data[r.slot(pos)] = v
}

// Reset zero-fills all slots.
func (r *Ring) Reset() {
	for i := range r.data {
		r.data[i] = 0
	}
}

func (r *Ring) slot(pos int64) int64 {
	n := int64(len(r.data))
	s := pos % n
	if s < 0 {
		s += n
	}
	return s
}
