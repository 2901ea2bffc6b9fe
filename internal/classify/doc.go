// Package classify maps a type produced by a type checker onto the jsii
// type vocabulary.
//
// The checker is injected as three capabilities so the decision procedure
// can run against any front end, or against mock types in tests:
//   - TypeChecker: inference failure, nullability, alias and declared symbols, unions
//   - ContainerInspector: map-like and ordered container element types
//   - BuiltInLookup: the built-in primitive name table
//
// Classification is a pure function of the capabilities and the input
// type and is safe for concurrent use.
package classify
