package document

import (
	"errors"
	"fmt"
	"math"

	"github.com/goccy/go-yaml"
)

// ErrMalformedYAML indicates the input could not be parsed as YAML.
var ErrMalformedYAML = errors.New("document: malformed YAML")

// DecodeYAML parses a YAML document keeping mapping order. Only the first
// document of a multi-document stream is read. Infinities and NaN have no
// JSON form and are rejected.
func DecodeYAML(data []byte) (Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedYAML, err)
	}
	if err := checkFinite(v); err != nil {
		return nil, err
	}
	return FromValue(v), nil
}

func checkFinite(v any) error {
	switch t := v.(type) {
	case float64:
		if math.IsInf(t, 0) || math.IsNaN(t) {
			return fmt.Errorf("%w: %v cannot be represented in JSON", ErrMalformedYAML, t)
		}
	case float32:
		return checkFinite(float64(t))
	case yaml.MapSlice:
		for _, item := range t {
			if err := checkFinite(item.Value); err != nil {
				return err
			}
		}
	case map[string]any:
		for _, item := range t {
			if err := checkFinite(item); err != nil {
				return err
			}
		}
	case []any:
		for _, item := range t {
			if err := checkFinite(item); err != nil {
				return err
			}
		}
	}
	return nil
}
