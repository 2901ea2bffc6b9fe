package jsii

// Visitor handles every variant of Type. Implementations must cover all six
// cases, so adding a variant breaks every call site at compile time.
type Visitor[R any] interface {
	VisitUnknown() R
	VisitError(e Error) R
	VisitMap(m Map) R
	VisitList(l List) R
	VisitNamedType(n NamedType) R
	VisitBuiltIn(b BuiltIn) R
}

// Accept dispatches t to the matching Visitor method. A nil t is visited as
// Unknown.
func Accept[R any](t Type, v Visitor[R]) R {
	switch tt := t.(type) {
	case Error:
		return v.VisitError(tt)
	case Map:
		return v.VisitMap(tt)
	case List:
		return v.VisitList(tt)
	case NamedType:
		return v.VisitNamedType(tt)
	case BuiltIn:
		return v.VisitBuiltIn(tt)
	default:
		return v.VisitUnknown()
	}
}
