package curve

// DefaultScaleMidpoint is the pivot Scale uses when callers have no reason to
// pick another one: the centre of the sample range.
const DefaultScaleMidpoint = 128

// Invert returns a curve with every sample mirrored about the sample range,
// y = MaxSample - y. Applying it twice restores the original curve.
func Invert(c Curve) Curve {
	out := New()
	for i := range out {
		out[i] = MaxSample - c.At(i)
	}
	return out
}

// Reverse returns the curve played backwards: output sample i holds input
// sample Length-1-i.
func Reverse(c Curve) Curve {
	out := New()
	for i := range out {
		out[i] = c.At(Length - 1 - i)
	}
	return out
}

// Scale stretches or compresses the curve about a midpoint,
// y = midpoint + (y - midpoint) * factor, floored and clamped.
// A factor of 1.0 returns the curve unchanged.
func Scale(c Curve, factor float64, midpoint int) Curve {
	out := New()
	m := float64(midpoint)
	for i := range out {
		out[i] = Quantize(m + (float64(c.At(i))-m)*factor)
	}
	return out
}

// Shift adds a constant offset to every sample, clamped to the sample range.
func Shift(c Curve, offset int) Curve {
	out := New()
	for i := range out {
		out[i] = ClampSample(c.At(i) + offset)
	}
	return out
}
