package jsii

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind discriminates the variants of Type.
type Kind int

const (
	KindUnknown   Kind = iota // unknown
	KindError                 // error
	KindMap                   // map
	KindList                  // list
	KindNamedType             // namedType
	KindBuiltIn               // builtIn
)

// ParseKind returns the Kind for a wire tag such as "namedType".
func ParseKind(s string) (Kind, bool) {
	for k := KindUnknown; k <= KindBuiltIn; k++ {
		if k.String() == s {
			return k, true
		}
	}

	return KindUnknown, false
}

// BuiltInType is a primitive type of the jsii type vocabulary.
type BuiltInType string

const (
	BuiltInAny     BuiltInType = "any"
	BuiltInBoolean BuiltInType = "boolean"
	BuiltInNumber  BuiltInType = "number"
	BuiltInString  BuiltInType = "string"
	BuiltInVoid    BuiltInType = "void"
)

// BuiltInTypes lists every built-in in declaration order.
var BuiltInTypes = []BuiltInType{
	BuiltInAny,
	BuiltInBoolean,
	BuiltInNumber,
	BuiltInString,
	BuiltInVoid,
}

// Valid reports whether b is one of BuiltInTypes.
func (b BuiltInType) Valid() bool {
	switch b {
	case BuiltInAny, BuiltInBoolean, BuiltInNumber, BuiltInString, BuiltInVoid:
		return true
	default:
		return false
	}
}
