package curve

import "math"

// Length is the fixed number of samples in every curve, one per animation frame.
// The effect system reads curves from a fixed-size memory region, so curves are
// never grown, shrunk or resized.
const Length = 160

// MaxSample is the largest value a sample can hold, set by the one-byte wire
// format each sample is written into.
const MaxSample = 255

// Curve is an ordered sequence of Length quantized samples. Sample i drives
// frame i of the effect animation. Curves are plain values: every operation
// reads its input and returns a freshly allocated result.
type Curve []int

// New returns an all-zero curve of the fixed length.
func New() Curve {
	return make(Curve, Length)
}

// At returns sample i, treating indices outside the stored range as 0. This
// keeps all operations total over short or hand-built inputs.
func (c Curve) At(i int) int {
	if i < 0 || i >= len(c) {
		return 0
	}
	return c[i]
}

// Clone returns an independent full-length copy of the curve. Callers that
// need a buffer free of aliasing use this rather than assigning the slice.
func (c Curve) Clone() Curve {
	out := New()
	for i := range out {
		out[i] = c.At(i)
	}
	return out
}

// Bytes returns the curve as the ordered byte sequence consumed by the
// memory-patch writer: byte i is written at offset i of the target region,
// so index 0 corresponds to frame 0 with no reordering.
func (c Curve) Bytes() []byte {
	out := make([]byte, Length)
	for i := range out {
		out[i] = byte(ClampSample(c.At(i)))
	}
	return out
}

// ClampSample clamps v to the valid sample range [0, MaxSample].
func ClampSample(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxSample {
		return MaxSample
	}
	return v
}

// Quantize converts a raw sample value to its stored form: floored to an
// integer, then clamped to the valid range. Non-finite values clamp to the
// nearest bound and NaN quantizes to 0, so callers never fail on degenerate
// parameter combinations.
func Quantize(v float64) int {
	v = math.Floor(v)
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > MaxSample:
		return MaxSample
	}
	return int(v)
}
