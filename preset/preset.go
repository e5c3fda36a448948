// Package preset provides named, buildable descriptions of effect curves:
// a generator family, its parameters and an optional chain of manipulation
// ops, decodable from yaml configuration.
package preset

import (
	"github.com/emufx/fxcurve/curve"
	"github.com/emufx/fxcurve/generator"
	"github.com/google/uuid"
)

// Definition describes one effect curve ready to be built.
type Definition struct {
	Family string           // name of the generator family, see generator.Names
	Params generator.Params // fully resolved generator parameters
	Ops    []Op             // manipulations applied in order after generation
}

// DefinitionParams are the raw parameters used to request a Definition. These
// map onto the fields of generator.Params; the shape fields are pointers so
// that absent yaml keys take the documented defaults while explicit zeros
// pass through untouched.
type DefinitionParams struct {
	Family string `yaml:"family" mapstructure:"family"` // name of the generator family

	StartFrame int `yaml:"start_frame" mapstructure:"start_frame"` // first frame of the transition window
	EndFrame   int `yaml:"end_frame" mapstructure:"end_frame"`     // first frame past the window

	StartVal int `yaml:"start_val" mapstructure:"start_val"` // transition endpoints for the direct families
	EndVal   int `yaml:"end_val" mapstructure:"end_val"`
	MinVal   int `yaml:"min_val" mapstructure:"min_val"` // waveform bounds for sine, triangle, sawtooth
	MaxVal   int `yaml:"max_val" mapstructure:"max_val"`
	LowVal   int `yaml:"low_val" mapstructure:"low_val"` // pulse levels
	HighVal  int `yaml:"high_val" mapstructure:"high_val"`
	Value    int `yaml:"value" mapstructure:"value"` // constant level

	Power     *float64 `yaml:"power" mapstructure:"power"`           // easing exponent, default 2.0
	Strength  *float64 `yaml:"strength" mapstructure:"strength"`     // exponential steepness, default 10
	Cycles    *float64 `yaml:"cycles" mapstructure:"cycles"`         // periods within the window, default 1
	Teeth     *float64 `yaml:"teeth" mapstructure:"teeth"`           // sawtooth periods, default 1
	Pulses    *float64 `yaml:"pulses" mapstructure:"pulses"`         // pulse periods, default 1
	Phase     *float64 `yaml:"phase" mapstructure:"phase"`           // fractional period offset, default 0
	DutyCycle *float64 `yaml:"duty_cycle" mapstructure:"duty_cycle"` // fraction of each pulse held high, default 0.5

	Ops []interface{} `yaml:"ops" mapstructure:"ops"` // op entries, each a map with an "op" type field
}

// NewDefinition returns a Definition with the requested parameters, checking
// the family name and op entries for invalid values.
func NewDefinition(params DefinitionParams) (*Definition, error) {
	// Validate the family up front so broken configuration fails at decode
	// time rather than at build time.
	if _, err := generator.FromName(params.Family); err != nil {
		return nil, err
	}

	p := generator.DefaultParams()
	p.StartFrame = params.StartFrame
	p.EndFrame = params.EndFrame
	p.StartVal = params.StartVal
	p.EndVal = params.EndVal
	p.MinVal = params.MinVal
	p.MaxVal = params.MaxVal
	p.LowVal = params.LowVal
	p.HighVal = params.HighVal
	p.Value = params.Value

	if params.Power != nil {
		p.Power = *params.Power
	}
	if params.Strength != nil {
		p.Strength = *params.Strength
	}
	if params.Cycles != nil {
		p.Cycles = *params.Cycles
	}
	if params.Teeth != nil {
		p.Teeth = *params.Teeth
	}
	if params.Pulses != nil {
		p.Pulses = *params.Pulses
	}
	if params.Phase != nil {
		p.Phase = *params.Phase
	}
	if params.DutyCycle != nil {
		p.DutyCycle = *params.DutyCycle
	}

	ops := make([]Op, 0, len(params.Ops))
	for _, entry := range params.Ops {
		op, err := createOpFromYamlEntry(entry)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	return &Definition{
		Family: params.Family,
		Params: p,
		Ops:    ops,
	}, nil
}

// Build generates the curve and applies the op chain in order.
func (d *Definition) Build() (curve.Curve, error) {
	gen, err := generator.FromName(d.Family)
	if err != nil {
		return nil, err
	}

	c := gen(d.Params)
	for _, op := range d.Ops {
		c = op.Apply(c)
	}
	return c, nil
}

// Container is a collection of named curve definitions.
type Container map[string]*Definition

// Add stores a definition in the container under a fresh UUID and returns the UUID.
func (c *Container) Add(d *Definition) uuid.UUID {
	id := uuid.New()
	(*c)[id.String()] = d
	return id
}

// BuildAll builds every definition in the container, keyed by name.
func (c Container) BuildAll() (map[string]curve.Curve, error) {
	curves := make(map[string]curve.Curve, len(c))
	for name := range c {
		built, err := c[name].Build()
		if err != nil {
			return nil, err
		}
		curves[name] = built
	}
	return curves, nil
}
