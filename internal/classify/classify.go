package classify

import "sample-typer/jsii"

// UnsupportedUnionMessage is the diagnostic for union and intersection types.
const UnsupportedUnionMessage = "Type unions or intersections are not supported in examples"

// Classifier determines the jsii type of checker types of kind T.
type Classifier[T any] struct {
	checker    TypeChecker[T]
	containers ContainerInspector[T]
	builtins   BuiltInLookup[T]
}

// New creates a Classifier from separate capabilities.
func New[T any](checker TypeChecker[T], containers ContainerInspector[T], builtins BuiltInLookup[T]) *Classifier[T] {
	return &Classifier[T]{
		checker:    checker,
		containers: containers,
		builtins:   builtins,
	}
}

// NewFromInspector creates a Classifier backed by a single Inspector.
func NewFromInspector[T any](in Inspector[T]) *Classifier[T] {
	return New[T](in, in, in)
}

// Determine classifies t. The first matching rule wins:
//  1. unresolved by the checker: Unknown
//  2. nullability is stripped
//  3. map-like container: Map of the classified element (any if opaque)
//  4. ordered container: List of the classified element (any if opaque)
//  5. alias: NamedType of the alias
//  6. declared symbol: NamedType of the symbol
//  7. built-in: BuiltIn
//  8. union or intersection: Error
//  9. Unknown
//
// Aliases are checked before symbols so the name an author wrote survives.
func (c *Classifier[T]) Determine(t T) jsii.Type {
	if c.checker.InferenceFailed(t) {
		return jsii.Unknown{}
	}

	t = c.checker.NonNullable(t)

	if elem := c.containers.MapElementType(t); elem.IsContainer {
		return jsii.MapOf(c.element(elem))
	}

	if elem := c.containers.ListElementType(t); elem.IsContainer {
		return jsii.ListOf(c.element(elem))
	}

	if name, ok := c.checker.AliasName(t); ok {
		return jsii.Named(name)
	}

	if name, ok := c.checker.SymbolName(t); ok {
		return jsii.Named(name)
	}

	if builtIn, ok := c.builtins.BuiltInTypeName(t); ok {
		return jsii.Primitive(builtIn)
	}

	if c.checker.IsUnionOrIntersection(t) {
		return jsii.Failed(UnsupportedUnionMessage)
	}

	return jsii.Unknown{}
}

func (c *Classifier[T]) element(elem Element[T]) jsii.Type {
	if !elem.HasElem {
		return jsii.Primitive(jsii.BuiltInAny)
	}

	return c.Determine(elem.Elem)
}

// Determine classifies t with a one-off Classifier over in.
func Determine[T any](in Inspector[T], t T) jsii.Type {
	return NewFromInspector(in).Determine(t)
}
