package preset

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/emufx/fxcurve/curve"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// UnmarshalYAML unmarshals a map of named curve definitions into the container.
func (c *Container) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw map[string]map[string]interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	for name, yamlEntry := range raw {
		def, err := createDefinitionFromYamlEntry(yamlEntry)
		if err != nil {
			return fmt.Errorf("curve definition %q: %w", name, err)
		}
		(*c)[name] = def
	}

	return nil
}

// GetDecodeHook returns a decodeHook function that can be used to unmarshal
// curve definitions using mapstructure. This supports configuration solutions
// like spf13/viper that use mapstructure to unmarshal yaml files.
func GetDecodeHook() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, yamlEntry interface{}) (interface{}, error) {
		if t == reflect.TypeOf(&Definition{}) {
			return createDefinitionFromYamlEntry(yamlEntry)
		}
		// Otherwise, return the yaml entry as is (default behaviour)
		return yamlEntry, nil
	}
}

// Creates a definition from a yaml entry by decoding it into DefinitionParams
// and running it through the checked constructor.
func createDefinitionFromYamlEntry(yamlEntry interface{}) (*Definition, error) {
	// yaml.v2 produces map[interface{}]interface{} for nested maps, so
	// normalise the keys before handing the entry to mapstructure.
	m, err := cast.ToStringMapE(yamlEntry)
	if err != nil {
		return nil, fmt.Errorf("yaml entry cannot be parsed to a map: %v", yamlEntry)
	}

	var params DefinitionParams
	decoderConfig := &mapstructure.DecoderConfig{
		Result: &params,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(m); err != nil {
		return nil, err
	}

	return NewDefinition(params)
}

// Creates an op from a yaml list entry based on its "op" type field.
func createOpFromYamlEntry(yamlEntry interface{}) (Op, error) {
	m, err := cast.ToStringMapE(yamlEntry)
	if err != nil {
		return nil, fmt.Errorf("op entry cannot be parsed to a map: %v", yamlEntry)
	}

	name, err := cast.ToStringE(m["op"])
	if err != nil || name == "" {
		return nil, errors.New("op type field is missing or not a string")
	}

	switch name {
	case "invert":
		return InvertOp{}, nil
	case "reverse":
		return ReverseOp{}, nil
	case "copy":
		return CopyOp{}, nil
	case "scale":
		raw, ok := m["factor"]
		if !ok {
			return nil, errors.New("scale op requires a factor field")
		}
		factor, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil, fmt.Errorf("scale op factor: %w", err)
		}
		op := ScaleOp{Factor: factor, Midpoint: curve.DefaultScaleMidpoint}
		if raw, ok := m["midpoint"]; ok {
			midpoint, err := cast.ToIntE(raw)
			if err != nil {
				return nil, fmt.Errorf("scale op midpoint: %w", err)
			}
			op.Midpoint = midpoint
		}
		return op, nil
	case "shift":
		raw, ok := m["offset"]
		if !ok {
			return nil, errors.New("shift op requires an offset field")
		}
		offset, err := cast.ToIntE(raw)
		if err != nil {
			return nil, fmt.Errorf("shift op offset: %w", err)
		}
		return ShiftOp{Offset: offset}, nil
	default:
		return nil, fmt.Errorf("unknown op type: %s", name)
	}
}
