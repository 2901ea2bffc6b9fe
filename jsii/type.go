// Package jsii defines the language-agnostic type vocabulary that code
// samples are classified into before being rendered for other languages.
//
// A Type is a closed sum of six variants:
//   - Unknown: the type could not be determined
//   - Error: the type is a construct samples do not support
//   - Map: string-keyed container of ElementType
//   - List: ordered container of ElementType
//   - NamedType: user-defined or aliased nominal type
//   - BuiltIn: primitive type
//
// Values are immutable and comparable with ==.
package jsii

// Type is a classified type. Only the variants in this package implement it.
type Type interface {
	// Kind returns the active variant.
	Kind() Kind

	// String returns a compact notation such as "map<list<string>>".
	String() string

	sealed()
}

// Unknown is a type that could not be determined or is unsupported.
type Unknown struct{}

// Error is a type whose determination failed with a diagnostic.
type Error struct {
	Message string
}

// Map is a key-value container whose values have ElementType.
type Map struct {
	ElementType Type
}

// List is an ordered container whose values have ElementType.
type List struct {
	ElementType Type
}

// NamedType is a user-defined or aliased nominal type.
type NamedType struct {
	Name string
}

// BuiltIn is a primitive type.
type BuiltIn struct {
	BuiltIn BuiltInType
}

func (Unknown) Kind() Kind   { return KindUnknown }
func (Error) Kind() Kind     { return KindError }
func (Map) Kind() Kind       { return KindMap }
func (List) Kind() Kind      { return KindList }
func (NamedType) Kind() Kind { return KindNamedType }
func (BuiltIn) Kind() Kind   { return KindBuiltIn }

func (Unknown) sealed()   {}
func (Error) sealed()     {}
func (Map) sealed()       {}
func (List) sealed()      {}
func (NamedType) sealed() {}
func (BuiltIn) sealed()   {}

func (Unknown) String() string { return KindUnknown.String() }

func (e Error) String() string { return "error(" + e.Message + ")" }

func (m Map) String() string { return "map<" + elementString(m.ElementType) + ">" }

func (l List) String() string { return "list<" + elementString(l.ElementType) + ">" }

func (n NamedType) String() string { return n.Name }

func (b BuiltIn) String() string { return string(b.BuiltIn) }

func elementString(t Type) string {
	if t == nil {
		return KindUnknown.String()
	}

	return t.String()
}

// MapOf returns a Map of elem.
func MapOf(elem Type) Map { return Map{ElementType: elem} }

// ListOf returns a List of elem.
func ListOf(elem Type) List { return List{ElementType: elem} }

// Named returns a NamedType called name.
func Named(name string) NamedType { return NamedType{Name: name} }

// Primitive returns a BuiltIn of b.
func Primitive(b BuiltInType) BuiltIn { return BuiltIn{BuiltIn: b} }

// Failed returns an Error carrying message.
func Failed(message string) Error { return Error{Message: message} }

// Equal reports whether a and b are structurally equal. Nil equals only nil.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if a.Kind() != b.Kind() {
		return false
	}

	switch at := a.(type) {
	case Map:
		return Equal(at.ElementType, b.(Map).ElementType)
	case List:
		return Equal(at.ElementType, b.(List).ElementType)
	default:
		return a == b
	}
}

// Depth returns the container nesting depth of t: 0 for anything that is
// not a Map or List.
func Depth(t Type) int {
	switch tt := t.(type) {
	case Map:
		return 1 + Depth(tt.ElementType)
	case List:
		return 1 + Depth(tt.ElementType)
	default:
		return 0
	}
}
