package document

import (
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
)

// FromValue converts plain Go values into a Node. Keys of map[string]any are
// visited in sorted order; yaml.MapSlice keeps its own order.
func FromValue(v any) Node {
	switch t := v.(type) {
	case Node:
		return t
	case map[string]any:
		o := NewObject()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			o.set(k, FromValue(t[k]))
		}
		return o
	case yaml.MapSlice:
		o := NewObject()
		for _, item := range t {
			o.set(keyString(item.Key), FromValue(item.Value))
		}
		return o
	case []any:
		a := make(Array, len(t))
		for i, item := range t {
			a[i] = FromValue(item)
		}
		return a
	default:
		return Scalar{Value: t}
	}
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

