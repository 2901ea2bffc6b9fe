// Package gotypes backs the classifier with Go's own type checker.
//
// Mapping of classifier capabilities onto go/types:
//   - inference failure: the invalid basic type go/types assigns to anything it could not resolve
//   - nullability: pointer indirection
//   - map-like container: unnamed map with a string-kinded key
//   - ordered container: unnamed slice or array
//   - alias: a *types.Alias declared in a package
//   - declared symbol: a *types.Named
//   - union/intersection: union terms, or interface literals embedding several types
package gotypes
