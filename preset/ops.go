package preset

import (
	"github.com/emufx/fxcurve/curve"
)

// Op is a single manipulation applied to a generated curve. Ops are pure:
// Apply reads its input and returns a new curve.
type Op interface {
	Apply(c curve.Curve) curve.Curve
	TypeAsString() string // Returns the op type as a string
}

// InvertOp mirrors every sample about the sample range.
type InvertOp struct{}

func (InvertOp) Apply(c curve.Curve) curve.Curve { return curve.Invert(c) }

func (InvertOp) TypeAsString() string { return "invert" }

// ReverseOp plays the curve backwards.
type ReverseOp struct{}

func (ReverseOp) Apply(c curve.Curve) curve.Curve { return curve.Reverse(c) }

func (ReverseOp) TypeAsString() string { return "reverse" }

// ScaleOp stretches or compresses the curve about a midpoint.
type ScaleOp struct {
	Factor   float64
	Midpoint int
}

func (o ScaleOp) Apply(c curve.Curve) curve.Curve { return curve.Scale(c, o.Factor, o.Midpoint) }

func (ScaleOp) TypeAsString() string { return "scale" }

// ShiftOp offsets every sample by a constant.
type ShiftOp struct {
	Offset int
}

func (o ShiftOp) Apply(c curve.Curve) curve.Curve { return curve.Shift(c, o.Offset) }

func (ShiftOp) TypeAsString() string { return "shift" }

// CopyOp duplicates the curve unchanged. Useful as an explicit aliasing
// barrier in an op chain.
type CopyOp struct{}

func (CopyOp) Apply(c curve.Curve) curve.Curve { return c.Clone() }

func (CopyOp) TypeAsString() string { return "copy" }
