package curve_test

import (
	"math/rand"
	"testing"

	"github.com/emufx/fxcurve/curve"
	"github.com/stretchr/testify/assert"
	gtassert "gotest.tools/v3/assert"
)

// Returns a curve filled with random in-range samples.
func randomCurve() curve.Curve {
	c := curve.New()
	for i := range c {
		c[i] = rand.Intn(curve.MaxSample + 1)
	}
	return c
}

func TestInvertIsItsOwnInverse(t *testing.T) {
	c := randomCurve()
	gtassert.DeepEqual(t, c, curve.Invert(curve.Invert(c)))
}

func TestReverseIsItsOwnInverse(t *testing.T) {
	c := randomCurve()
	gtassert.DeepEqual(t, c, curve.Reverse(curve.Reverse(c)))
}

func TestInvertAndReverseCommute(t *testing.T) {
	c := randomCurve()
	gtassert.DeepEqual(t, curve.Invert(curve.Reverse(c)), curve.Reverse(curve.Invert(c)))
}

func TestScaleIdentity(t *testing.T) {
	c := randomCurve()
	gtassert.DeepEqual(t, c, curve.Scale(c, 1.0, curve.DefaultScaleMidpoint))
}

func TestShiftIdentity(t *testing.T) {
	c := randomCurve()
	gtassert.DeepEqual(t, c, curve.Shift(c, 0))
}

func TestScale(t *testing.T) {
	testCases := []struct {
		name     string
		sample   int
		factor   float64
		midpoint int
		expected int
	}{
		{
			name:     "halved_towards_midpoint",
			sample:   10,
			factor:   0.5,
			midpoint: 128,
			expected: 69, // 128 + (10-128)*0.5 = 69
		},
		{
			name:     "doubled_clamps_high",
			sample:   200,
			factor:   2.0,
			midpoint: 128,
			expected: 255, // 128 + 72*2 = 272, clamped
		},
		{
			name:     "doubled_clamps_low",
			sample:   10,
			factor:   2.0,
			midpoint: 128,
			expected: 0, // 128 - 118*2 = -108, clamped
		},
		{
			name:     "midpoint_zero",
			sample:   100,
			factor:   0.5,
			midpoint: 0,
			expected: 50,
		},
		{
			name:     "midpoint_is_fixed_point",
			sample:   128,
			factor:   7.5,
			midpoint: 128,
			expected: 128,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := curve.New()
			c[0] = tc.sample
			out := curve.Scale(c, tc.factor, tc.midpoint)
			assert.Equal(t, tc.expected, out[0])
			assert.Len(t, out, curve.Length)
		})
	}
}

func TestShiftClamps(t *testing.T) {
	c := curve.New()
	c[0] = 200
	c[1] = 50

	up := curve.Shift(c, 100)
	assert.Equal(t, 255, up[0])
	assert.Equal(t, 150, up[1])

	down := curve.Shift(c, -100)
	assert.Equal(t, 100, down[0])
	assert.Equal(t, 0, down[1])
}

func TestManipulatorsDoNotMutateInput(t *testing.T) {
	c := randomCurve()
	orig := c.Clone()

	curve.Invert(c)
	curve.Reverse(c)
	curve.Scale(c, 0.5, curve.DefaultScaleMidpoint)
	curve.Shift(c, 17)

	gtassert.DeepEqual(t, orig, c)
}

func TestShortInputReadAsZero(t *testing.T) {
	short := curve.Curve{5, 10}

	inverted := curve.Invert(short)
	assert.Len(t, inverted, curve.Length)
	assert.Equal(t, 250, inverted[0])
	assert.Equal(t, 255, inverted[2]) // missing sample treated as 0

	reversed := curve.Reverse(short)
	assert.Equal(t, 0, reversed[0])
	assert.Equal(t, 5, reversed[curve.Length-1])
}
