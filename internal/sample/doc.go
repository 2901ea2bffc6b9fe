// Package sample type-checks Go code samples taken from documentation and
// classifies the type of every binding they introduce.
//
// Samples do not need to be complete programs. A snippet without a package
// clause is wrapped into a synthetic file (leading imports are hoisted) and
// positions are mapped back onto the snippet with //line directives. Type
// errors do not stop checking; unresolved expressions classify as unknown.
package sample
