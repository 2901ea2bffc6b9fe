package jsii

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// wire is the exchange shape shared with the rest of the documentation
// pipeline, e.g. {"kind":"map","elementType":{"kind":"builtIn","builtIn":"string"}}.
type wire struct {
	Kind        string `json:"kind" yaml:"kind"`
	Message     string `json:"message,omitempty" yaml:"message,omitempty"`
	ElementType *wire  `json:"elementType,omitempty" yaml:"elementType,omitempty"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	BuiltIn     string `json:"builtIn,omitempty" yaml:"builtIn,omitempty"`
}

func toWire(t Type) *wire {
	if t == nil {
		t = Unknown{}
	}

	w := &wire{Kind: t.Kind().String()}

	switch tt := t.(type) {
	case Error:
		w.Message = tt.Message
	case Map:
		w.ElementType = toWire(tt.ElementType)
	case List:
		w.ElementType = toWire(tt.ElementType)
	case NamedType:
		w.Name = tt.Name
	case BuiltIn:
		w.BuiltIn = string(tt.BuiltIn)
	}

	return w
}

func fromWire(w *wire) (Type, error) {
	if w == nil {
		return nil, fmt.Errorf("missing type")
	}

	kind, ok := ParseKind(w.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown type kind %q", w.Kind)
	}

	switch kind {
	case KindError:
		return Error{Message: w.Message}, nil

	case KindMap, KindList:
		elem, err := fromWire(w.ElementType)
		if err != nil {
			return nil, fmt.Errorf("%s element: %w", kind, err)
		}

		if kind == KindMap {
			return MapOf(elem), nil
		}

		return ListOf(elem), nil

	case KindNamedType:
		if w.Name == "" {
			return nil, fmt.Errorf("namedType without name")
		}

		return Named(w.Name), nil

	case KindBuiltIn:
		b := BuiltInType(w.BuiltIn)
		if !b.Valid() {
			return nil, fmt.Errorf("unknown built-in type %q", w.BuiltIn)
		}

		return Primitive(b), nil

	default:
		return Unknown{}, nil
	}
}

// Marshal encodes t as JSON in the pipeline exchange shape.
func Marshal(t Type) ([]byte, error) {
	return json.Marshal(toWire(t))
}

// Unmarshal decodes a JSON-encoded Type.
func Unmarshal(data []byte) (Type, error) {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to parse type JSON: %w", err)
	}

	return fromWire(&w)
}

// UnmarshalYAML decodes a YAML-encoded Type.
func UnmarshalYAML(data []byte) (Type, error) {
	var w wire
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to parse type YAML: %w", err)
	}

	return fromWire(&w)
}

func (t Unknown) MarshalJSON() ([]byte, error)   { return Marshal(t) }
func (t Error) MarshalJSON() ([]byte, error)     { return Marshal(t) }
func (t Map) MarshalJSON() ([]byte, error)       { return Marshal(t) }
func (t List) MarshalJSON() ([]byte, error)      { return Marshal(t) }
func (t NamedType) MarshalJSON() ([]byte, error) { return Marshal(t) }
func (t BuiltIn) MarshalJSON() ([]byte, error)   { return Marshal(t) }

func (t Unknown) MarshalYAML() (any, error)   { return toWire(t), nil }
func (t Error) MarshalYAML() (any, error)     { return toWire(t), nil }
func (t Map) MarshalYAML() (any, error)       { return toWire(t), nil }
func (t List) MarshalYAML() (any, error)      { return toWire(t), nil }
func (t NamedType) MarshalYAML() (any, error) { return toWire(t), nil }
func (t BuiltIn) MarshalYAML() (any, error)   { return toWire(t), nil }
