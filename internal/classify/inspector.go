package classify

import "sample-typer/jsii"

// TypeChecker answers questions about types of kind T owned by a type
// checker. Implementations must not mutate checker state.
type TypeChecker[T any] interface {
	// InferenceFailed reports whether the checker itself could not resolve t,
	// typically because a sample lacks the context to infer it.
	InferenceFailed(t T) bool

	// NonNullable strips nullability, turning "T or nothing" into T.
	NonNullable(t T) T

	// AliasName returns the name of the user-level alias t was written as.
	AliasName(t T) (string, bool)

	// SymbolName returns the name of the declared entity t corresponds to.
	SymbolName(t T) (string, bool)

	// IsUnionOrIntersection reports whether t combines several types.
	IsUnionOrIntersection(t T) bool
}

// Element is the answer of a ContainerInspector.
type Element[T any] struct {
	// IsContainer is set when the inspected type has the container shape.
	IsContainer bool
	// HasElem is set when the element type could be determined.
	HasElem bool
	// Elem is the element type; meaningful only with HasElem.
	Elem T
}

// NotContainer is the Element for a type without container shape.
func NotContainer[T any]() Element[T] {
	return Element[T]{}
}

// ContainerOf is the Element for a container with element type elem.
func ContainerOf[T any](elem T) Element[T] {
	return Element[T]{IsContainer: true, HasElem: true, Elem: elem}
}

// OpaqueContainer is the Element for a container whose element type is
// not determinable.
func OpaqueContainer[T any]() Element[T] {
	return Element[T]{IsContainer: true}
}

// ContainerInspector recognizes container types of kind T.
type ContainerInspector[T any] interface {
	// MapElementType reports whether t is a map-like (string-keyed) container.
	MapElementType(t T) Element[T]

	// ListElementType reports whether t is an ordered container.
	ListElementType(t T) Element[T]
}

// BuiltInLookup maps types onto the built-in name table.
type BuiltInLookup[T any] interface {
	BuiltInTypeName(t T) (jsii.BuiltInType, bool)
}

// Inspector bundles every capability a Classifier needs.
type Inspector[T any] interface {
	TypeChecker[T]
	ContainerInspector[T]
	BuiltInLookup[T]
}
