package metrics

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Kind discriminates the closed set of context value types.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
)

// Value is one context entry: an integer, a float, or a string. Context
// dictionaries are heterogeneous in the result artifacts, but the set of
// shapes is closed; anything else is a malformed artifact.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

func IntValue(v int64) Value     { return Value{kind: KindInt, i: v} }
func FloatValue(v float64) Value { return Value{kind: KindFloat, f: v} }
func StringValue(v string) Value { return Value{kind: KindString, s: v} }

func (v Value) Kind() Kind { return v.kind }

// String returns the display form of the value.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return v.s
	}
}

// AsInt converts the value to an integer. Integer values pass through and
// strings are parsed; floats never convert implicitly.
func (v Value) AsInt() (int64, error) {
	switch v.kind {
	case KindInt:
		return v.i, nil
	case KindString:
		n, err := strconv.ParseInt(v.s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not an integer", v.s)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("value %s is not an integer", v.String())
	}
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(other Value) bool {
	return v == other
}

// canonical returns the kind-tagged form hashed into fingerprints. The tag
// keeps int 4, float 4.0 and string "4" from colliding.
func (v Value) canonical() string {
	switch v.kind {
	case KindInt:
		return "i:" + strconv.FormatInt(v.i, 10)
	case KindFloat:
		return "f:" + strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return "s:" + v.s
	}
}

// UnmarshalYAML decodes a scalar node into the matching value kind.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("context value must be a scalar, got %s", nodeKindName(node.Kind))
	}
	switch node.Tag {
	case "!!int":
		n, err := strconv.ParseInt(node.Value, 10, 64)
		if err != nil {
			return fmt.Errorf("context value %q: %w", node.Value, err)
		}
		*v = IntValue(n)
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("context value %q: %w", node.Value, err)
		}
		*v = FloatValue(f)
	case "!!str":
		*v = StringValue(node.Value)
	default:
		return fmt.Errorf("context value %q has unsupported type %s", node.Value, node.Tag)
	}
	return nil
}

// MarshalYAML emits the native scalar so aggregate dumps round-trip.
func (v Value) MarshalYAML() (interface{}, error) {
	switch v.kind {
	case KindInt:
		return v.i, nil
	case KindFloat:
		return v.f, nil
	default:
		return v.s, nil
	}
}

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}
