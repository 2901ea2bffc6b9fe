package gotypes

import (
	"go/types"

	"sample-typer/internal/classify"
	"sample-typer/jsii"
)

// Inspector implements every classify capability over go/types.
// It holds no state and only reads the types it is given.
type Inspector struct{}

var _ classify.Inspector[types.Type] = Inspector{}

// NewClassifier returns a Classifier wired to go/types.
func NewClassifier() *classify.Classifier[types.Type] {
	return classify.NewFromInspector[types.Type](Inspector{})
}

// Determine classifies a go/types type.
func Determine(t types.Type) jsii.Type {
	return NewClassifier().Determine(t)
}

// InferenceFailed reports whether go/types could not resolve t. The checker
// records types.Typ[types.Invalid] for such expressions, also as the target
// of an alias whose right-hand side did not resolve. Pointers to such types
// are unresolved too, keeping pointers transparent.
func (in Inspector) InferenceFailed(t types.Type) bool {
	if t == nil {
		return true
	}

	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		return in.InferenceFailed(ptr.Elem())
	}

	basic, ok := t.(*types.Basic)

	return ok && basic.Kind() == types.Invalid
}

// NonNullable strips every level of pointer indirection.
func (Inspector) NonNullable(t types.Type) types.Type {
	for {
		ptr, ok := t.(*types.Pointer)
		if !ok {
			return t
		}

		t = ptr.Elem()
	}
}

// AliasName returns the name of a package-level type alias. Universe aliases
// such as any are predeclared and not user-level.
func (Inspector) AliasName(t types.Type) (string, bool) {
	alias, ok := t.(*types.Alias)
	if !ok {
		return "", false
	}

	obj := alias.Obj()
	if obj == nil || obj.Pkg() == nil {
		return "", false
	}

	return obj.Name(), true
}

// SymbolName returns the name of a defined type.
func (Inspector) SymbolName(t types.Type) (string, bool) {
	named, ok := t.(*types.Named)
	if !ok {
		return "", false
	}

	return named.Obj().Name(), true
}

// IsUnionOrIntersection reports whether t is a union with several terms, an
// interface literal whose type set combines several types, or a type
// parameter constrained by one.
func (Inspector) IsUnionOrIntersection(t types.Type) bool {
	switch tt := t.(type) {
	case *types.Union:
		return tt.Len() > 1

	case *types.Interface:
		return combinesTypes(tt)

	case *types.TypeParam:
		iface, ok := tt.Constraint().Underlying().(*types.Interface)
		return ok && combinesTypes(iface)
	}

	return false
}

// combinesTypes reports whether an interface type set is a union of terms or
// the intersection of several embedded types.
func combinesTypes(iface *types.Interface) bool {
	if iface.NumEmbeddeds() > 1 {
		return true
	}

	for i := range iface.NumEmbeddeds() {
		switch embedded := iface.EmbeddedType(i).(type) {
		case *types.Union:
			if embedded.Len() > 1 {
				return true
			}

		case *types.Interface:
			if combinesTypes(embedded) {
				return true
			}
		}
	}

	return false
}

// MapElementType recognizes unnamed maps with string-kinded keys. A named
// map type is classified by its name instead.
func (in Inspector) MapElementType(t types.Type) classify.Element[types.Type] {
	m, ok := t.(*types.Map)
	if !ok || !IsStringKind(m.Key()) {
		return classify.NotContainer[types.Type]()
	}

	return in.element(m.Elem())
}

// ListElementType recognizes unnamed slices and arrays.
func (in Inspector) ListElementType(t types.Type) classify.Element[types.Type] {
	switch tt := t.(type) {
	case *types.Slice:
		return in.element(tt.Elem())

	case *types.Array:
		return in.element(tt.Elem())
	}

	return classify.NotContainer[types.Type]()
}

func (in Inspector) element(elem types.Type) classify.Element[types.Type] {
	if in.InferenceFailed(elem) {
		return classify.OpaqueContainer[types.Type]()
	}

	return classify.ContainerOf(elem)
}
