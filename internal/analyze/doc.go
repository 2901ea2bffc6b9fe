// Package analyze provides package loading and API catalog extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to walk the exported
// surface of real packages and classify the type of every member, so
// documentation samples can be checked against the same vocabulary.
//
// Key types:
//   - TypeID: package import path + member path
//   - Member: one exported field, parameter, result, variable or constant
//   - Catalog: every member of the loaded packages
package analyze
