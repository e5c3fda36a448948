package generator

import (
	"errors"
	"math"

	"github.com/emufx/fxcurve/curve"
)

// Params carries every value the curve families can consume. Each family
// reads only the fields it documents; the rest are ignored. Use
// DefaultParams as the starting point so the shape fields carry their
// documented defaults.
type Params struct {
	StartFrame int // first frame of the active transition window
	EndFrame   int // first frame past the window; EndFrame <= StartFrame is a valid degenerate window

	StartVal int // transition endpoints for the direct families
	EndVal   int
	MinVal   int // waveform bounds for sine, triangle and sawtooth
	MaxVal   int
	LowVal   int // pulse levels
	HighVal  int
	Value    int // constant level

	Power     float64 // easing exponent
	Strength  float64 // exponential steepness
	Cycles    float64 // waveform periods within the window (sine, triangle)
	Teeth     float64 // sawtooth periods within the window
	Pulses    float64 // pulse periods within the window
	Phase     float64 // fractional period offset (sine, triangle)
	DutyCycle float64 // fraction of each pulse period held high, clamped to [0,1]
}

// DefaultParams returns a Params with the documented shape defaults set.
// Repetition counts and exponents are deliberately not validated anywhere
// beyond these defaults; zero and negative values pass through untouched.
func DefaultParams() Params {
	return Params{
		Power:     2.0,
		Strength:  10,
		Cycles:    1,
		Teeth:     1,
		Pulses:    1,
		DutyCycle: 0.5,
	}
}

// A Func generates a complete fixed-length curve from a parameter set.
type Func func(p Params) curve.Curve

// A map between family name and generator function pairs.
var generators = map[string]Func{
	"linear": func(p Params) curve.Curve {
		return Linear(p.StartFrame, p.EndFrame, p.StartVal, p.EndVal)
	},
	"ease_in": func(p Params) curve.Curve {
		return EaseIn(p.StartFrame, p.EndFrame, p.StartVal, p.EndVal, p.Power)
	},
	"ease_out": func(p Params) curve.Curve {
		return EaseOut(p.StartFrame, p.EndFrame, p.StartVal, p.EndVal, p.Power)
	},
	"s_curve": func(p Params) curve.Curve {
		return SCurve(p.StartFrame, p.EndFrame, p.StartVal, p.EndVal, p.Power)
	},
	"exponential_in": func(p Params) curve.Curve {
		return ExponentialIn(p.StartFrame, p.EndFrame, p.StartVal, p.EndVal, p.Strength)
	},
	"exponential_out": func(p Params) curve.Curve {
		return ExponentialOut(p.StartFrame, p.EndFrame, p.StartVal, p.EndVal, p.Strength)
	},
	"sine": func(p Params) curve.Curve {
		return SineWave(p.StartFrame, p.EndFrame, p.MinVal, p.MaxVal, p.Cycles, p.Phase)
	},
	"triangle": func(p Params) curve.Curve {
		return TriangleWave(p.StartFrame, p.EndFrame, p.MinVal, p.MaxVal, p.Cycles, p.Phase)
	},
	"sawtooth": func(p Params) curve.Curve {
		return Sawtooth(p.StartFrame, p.EndFrame, p.MinVal, p.MaxVal, p.Teeth)
	},
	"pulse": func(p Params) curve.Curve {
		return Pulse(p.StartFrame, p.EndFrame, p.LowVal, p.HighVal, p.Pulses, p.DutyCycle)
	},
	"constant": func(p Params) curve.Curve {
		return Constant(p.Value)
	},
}

// Names returns the names of all registered curve families.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	return names
}

// FromName returns the named generator function.
func FromName(name string) (Func, error) {
	gen, ok := generators[name]
	if !ok {
		return nil, errors.New("curve family not found")
	}

	return gen, nil
}

// window applies the frame-window policy shared by every family except
// constant: hold `before` ahead of the window, hold `after` at and past its
// end, and evaluate fn on the normalized position t inside it. The branch
// order makes the interior unreachable whenever endFrame <= startFrame, so
// the division below can never be by zero.
func window(startFrame, endFrame int, before, after float64, fn func(t float64) float64) curve.Curve {
	c := curve.New()
	for i := range c {
		var v float64
		switch {
		case i < startFrame:
			v = before
		case i >= endFrame:
			v = after
		default:
			t := float64(i-startFrame) / float64(endFrame-startFrame)
			v = fn(t)
		}
		c[i] = curve.Quantize(v)
	}
	return c
}

// clampVal clamps an endpoint value to the sample range before interpolation.
func clampVal(v int) float64 {
	return float64(curve.ClampSample(v))
}

// Linear interpolates from startVal to endVal across the window,
// y = start + (end-start)*t.
func Linear(startFrame, endFrame, startVal, endVal int) curve.Curve {
	sv, ev := clampVal(startVal), clampVal(endVal)
	return window(startFrame, endFrame, sv, ev, func(t float64) float64 {
		return sv + (ev-sv)*t
	})
}

// EaseIn interpolates with an accelerating start, y = start + (end-start)*t^power.
func EaseIn(startFrame, endFrame, startVal, endVal int, power float64) curve.Curve {
	sv, ev := clampVal(startVal), clampVal(endVal)
	return window(startFrame, endFrame, sv, ev, func(t float64) float64 {
		return sv + (ev-sv)*math.Pow(t, power)
	})
}

// EaseOut interpolates with a decelerating finish,
// y = start + (end-start)*(1 - (1-t)^power).
func EaseOut(startFrame, endFrame, startVal, endVal int, power float64) curve.Curve {
	sv, ev := clampVal(startVal), clampVal(endVal)
	return window(startFrame, endFrame, sv, ev, func(t float64) float64 {
		return sv + (ev-sv)*(1-math.Pow(1-t, power))
	})
}

// SCurve interpolates with acceleration into the midpoint and deceleration out
// of it. The eased fraction is 2^(power-1)*t^power below t=0.5 and
// 1 - ((-2t+2)^power)/2 above it.
func SCurve(startFrame, endFrame, startVal, endVal int, power float64) curve.Curve {
	sv, ev := clampVal(startVal), clampVal(endVal)
	return window(startFrame, endFrame, sv, ev, func(t float64) float64 {
		var f float64
		if t < 0.5 {
			f = math.Pow(2, power-1) * math.Pow(t, power)
		} else {
			f = 1 - math.Pow(-2*t+2, power)/2
		}
		return sv + (ev-sv)*f
	})
}

// ExponentialIn interpolates with an exponential ramp-up,
// y = start + (end-start)*2^(strength*(t-1)). The fraction is forced to 0 at
// t=0 so the first window frame equals startVal exactly.
func ExponentialIn(startFrame, endFrame, startVal, endVal int, strength float64) curve.Curve {
	sv, ev := clampVal(startVal), clampVal(endVal)
	return window(startFrame, endFrame, sv, ev, func(t float64) float64 {
		if t == 0 {
			return sv
		}
		return sv + (ev-sv)*math.Pow(2, strength*(t-1))
	})
}

// ExponentialOut interpolates with an exponential ramp-down,
// y = start + (end-start)*(1 - 2^(-strength*t)). The fraction is forced to 1
// at t=1 so the transition lands on endVal exactly.
func ExponentialOut(startFrame, endFrame, startVal, endVal int, strength float64) curve.Curve {
	sv, ev := clampVal(startVal), clampVal(endVal)
	return window(startFrame, endFrame, sv, ev, func(t float64) float64 {
		if t == 1 {
			return ev
		}
		return sv + (ev-sv)*(1-math.Pow(2, -strength*t))
	})
}

// SineWave oscillates between minVal and maxVal, completing `cycles` periods
// across the window, offset by `phase` periods. The hold values outside the
// window are the waveform extrapolated to the boundary phase positions, not
// minVal or maxVal.
func SineWave(startFrame, endFrame, minVal, maxVal int, cycles, phase float64) curve.Curve {
	lo, hi := clampVal(minVal), clampVal(maxVal)
	amp, offset := (hi-lo)/2, (hi+lo)/2
	wave := func(waveT float64) float64 {
		return offset + amp*math.Sin(waveT*2*math.Pi)
	}
	return window(startFrame, endFrame, wave(phase), wave(cycles+phase), func(t float64) float64 {
		return wave(t*cycles + phase)
	})
}

// TriangleWave oscillates between minVal and maxVal on a piecewise-linear
// ramp: rising over the first quarter period, falling through the middle half,
// rising again over the last quarter. Boundary holds extrapolate the waveform
// like SineWave.
func TriangleWave(startFrame, endFrame, minVal, maxVal int, cycles, phase float64) curve.Curve {
	lo, hi := clampVal(minVal), clampVal(maxVal)
	amp, offset := (hi-lo)/2, (hi+lo)/2
	wave := func(waveT float64) float64 {
		w := waveT - math.Floor(waveT) // fold into [0,1)
		var y float64
		switch {
		case w < 0.25:
			y = 4 * w
		case w < 0.75:
			y = 1 - 4*(w-0.25)
		default:
			y = -1 + 4*(w-0.75)
		}
		return offset + amp*y
	}
	return window(startFrame, endFrame, wave(phase), wave(cycles+phase), func(t float64) float64 {
		return wave(t*cycles + phase)
	})
}

// Sawtooth ramps from minVal towards maxVal `teeth` times across the window,
// y = min + (max-min)*((t*teeth) mod 1).
func Sawtooth(startFrame, endFrame, minVal, maxVal int, teeth float64) curve.Curve {
	lo, hi := clampVal(minVal), clampVal(maxVal)
	saw := func(waveT float64) float64 {
		return lo + (hi-lo)*(waveT-math.Floor(waveT))
	}
	return window(startFrame, endFrame, saw(0), saw(teeth), func(t float64) float64 {
		return saw(t * teeth)
	})
}

// Pulse produces a rectangular wave that holds highVal for the first
// `dutyCycle` fraction of each of `pulses` periods and lowVal for the rest.
// Unlike every other family, the hold value on BOTH sides of the window is
// lowVal; the wave only ever reaches highVal inside the window.
func Pulse(startFrame, endFrame, lowVal, highVal int, pulses, dutyCycle float64) curve.Curve {
	lo, hi := clampVal(lowVal), clampVal(highVal)
	if dutyCycle < 0 {
		dutyCycle = 0
	}
	if dutyCycle > 1 {
		dutyCycle = 1
	}
	return window(startFrame, endFrame, lo, lo, func(t float64) float64 {
		w := t * pulses
		if w-math.Floor(w) < dutyCycle {
			return hi
		}
		return lo
	})
}

// Constant fills the whole curve with one value, ignoring the frame window.
func Constant(value int) curve.Curve {
	c := curve.New()
	v := curve.ClampSample(value)
	for i := range c {
		c[i] = v
	}
	return c
}
