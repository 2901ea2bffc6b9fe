// Package diagnostic provides structured errors, warnings and infos produced
// while typing documentation samples.
//
// Key capabilities:
//   - Unsupported type reports (unions, intersections)
//   - Unknown type notes, for bindings whose annotation is omitted
//   - Type-check warnings forwarded from the compiler front end
package diagnostic
