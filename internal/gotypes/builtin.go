package gotypes

import (
	"go/types"

	"sample-typer/jsii"
)

// BuiltInTypeName maps t onto the jsii built-in table:
//   - bool and untyped bool: boolean
//   - string kinds: string
//   - integer and float kinds: number
//   - the empty interface (any): any
//   - the empty result list of a call: void
//
// Complex numbers, unsafe.Pointer and untyped nil have no built-in.
func (Inspector) BuiltInTypeName(t types.Type) (jsii.BuiltInType, bool) {
	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		return basicBuiltIn(tt)

	case *types.Interface:
		if tt.Empty() {
			return jsii.BuiltInAny, true
		}

	case *types.Tuple:
		if tt.Len() == 0 {
			return jsii.BuiltInVoid, true
		}
	}

	return "", false
}

func basicBuiltIn(b *types.Basic) (jsii.BuiltInType, bool) {
	info := b.Info()

	switch {
	case info&types.IsBoolean != 0:
		return jsii.BuiltInBoolean, true
	case info&types.IsString != 0:
		return jsii.BuiltInString, true
	case info&types.IsComplex != 0:
		return "", false
	case info&types.IsNumeric != 0:
		return jsii.BuiltInNumber, true
	default:
		return "", false
	}
}

// IsStringKind returns true if t is string-kinded once names are stripped.
func IsStringKind(t types.Type) bool {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return false
	}

	return basic.Info()&types.IsString != 0
}
