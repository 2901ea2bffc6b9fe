package gotypes

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sample-typer/internal/classify"
	"sample-typer/jsii"
)

const fixtureSource = `package fixture

type Bucket struct{ Name string }
type Props = struct{ Size int }
type Tags = map[string]string
type Labels map[string]string
type Reader interface{ Read() }
type Writer interface{ Write() }
type Broken = Missing

var (
	str     string
	i64     int64
	f32     float32
	flag    bool
	cplx    complex128
	anyVal  any
	empty   interface{}
	pstr    *string
	ppint   **int
	bucket  Bucket
	pbucket *Bucket
	props   Props
	tags    Tags
	ptags   *Tags
	labels  Labels
	counts  map[string]int
	nested  map[string]map[string]bool
	byID    map[int]string
	groups  map[string][]Bucket
	names   []string
	coords  [3]float64
	rw      interface{ Reader; Writer }
	methods interface{ Close() }
	ch      chan int
	fn      func()
	anon    struct{ X int }
	failure error
	broken  = undefinedValue
	lost    map[string]Missing
	lostLst []Missing

	brokenAlias  Broken
	pbrokenAlias *Broken
	lostAlias    map[string]Broken
)

func Generic[T int | string](v T) {}

func Plain[T any](v T) {}
`

func checkFixture(t *testing.T) *types.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "fixture.go", fixtureSource, 0)
	require.NoError(t, err)

	// Type errors are expected: the fixture references undeclared names.
	conf := types.Config{Error: func(error) {}}
	pkg, _ := conf.Check("fixture", fset, []*ast.File{file}, nil)
	require.NotNil(t, pkg)

	return pkg
}

func lookupType(t *testing.T, pkg *types.Package, name string) types.Type {
	t.Helper()

	obj := pkg.Scope().Lookup(name)
	require.NotNil(t, obj, "object %s not found", name)

	return obj.Type()
}

func typeParam(t *testing.T, pkg *types.Package, funcName string) types.Type {
	t.Helper()

	sig, ok := lookupType(t, pkg, funcName).(*types.Signature)
	require.True(t, ok)
	require.Equal(t, 1, sig.TypeParams().Len())

	return sig.TypeParams().At(0)
}

func TestDetermine_Fixture(t *testing.T) {
	pkg := checkFixture(t)

	str := jsii.Primitive(jsii.BuiltInString)
	num := jsii.Primitive(jsii.BuiltInNumber)

	tests := []struct {
		name     string
		expected jsii.Type
	}{
		{"str", str},
		{"i64", num},
		{"f32", num},
		{"flag", jsii.Primitive(jsii.BuiltInBoolean)},
		{"cplx", jsii.Unknown{}},
		{"anyVal", jsii.Primitive(jsii.BuiltInAny)},
		{"empty", jsii.Primitive(jsii.BuiltInAny)},
		{"pstr", str},
		{"ppint", num},
		{"bucket", jsii.Named("Bucket")},
		{"pbucket", jsii.Named("Bucket")},
		{"props", jsii.Named("Props")},
		{"tags", jsii.Named("Tags")},
		{"ptags", jsii.Named("Tags")},
		{"labels", jsii.Named("Labels")},
		{"counts", jsii.MapOf(num)},
		{"nested", jsii.MapOf(jsii.MapOf(jsii.Primitive(jsii.BuiltInBoolean)))},
		{"byID", jsii.Unknown{}},
		{"groups", jsii.MapOf(jsii.ListOf(jsii.Named("Bucket")))},
		{"names", jsii.ListOf(str)},
		{"coords", jsii.ListOf(num)},
		{"rw", jsii.Failed(classify.UnsupportedUnionMessage)},
		{"methods", jsii.Unknown{}},
		{"ch", jsii.Unknown{}},
		{"fn", jsii.Unknown{}},
		{"anon", jsii.Unknown{}},
		{"failure", jsii.Named("error")},
		{"broken", jsii.Unknown{}},
		{"lost", jsii.MapOf(jsii.Primitive(jsii.BuiltInAny))},
		{"lostLst", jsii.ListOf(jsii.Primitive(jsii.BuiltInAny))},
		{"brokenAlias", jsii.Unknown{}},
		{"pbrokenAlias", jsii.Unknown{}},
		{"lostAlias", jsii.MapOf(jsii.Primitive(jsii.BuiltInAny))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Determine(lookupType(t, pkg, tt.name)))
		})
	}
}

func TestDetermine_TypeParameters(t *testing.T) {
	pkg := checkFixture(t)

	assert.Equal(t, jsii.Failed(classify.UnsupportedUnionMessage), Determine(typeParam(t, pkg, "Generic")))
	assert.Equal(t, jsii.Unknown{}, Determine(typeParam(t, pkg, "Plain")))
}

func TestDetermine_Synthetic(t *testing.T) {
	tests := []struct {
		name     string
		input    types.Type
		expected jsii.Type
	}{
		{"nil", nil, jsii.Unknown{}},
		{"invalid", types.Typ[types.Invalid], jsii.Unknown{}},
		{"untyped bool", types.Typ[types.UntypedBool], jsii.Primitive(jsii.BuiltInBoolean)},
		{"untyped float", types.Typ[types.UntypedFloat], jsii.Primitive(jsii.BuiltInNumber)},
		{"untyped nil", types.Typ[types.UntypedNil], jsii.Unknown{}},
		{"empty result", types.NewTuple(), jsii.Primitive(jsii.BuiltInVoid)},
		{
			"union",
			types.NewUnion([]*types.Term{
				types.NewTerm(false, types.Typ[types.String]),
				types.NewTerm(false, types.Typ[types.Int]),
			}),
			jsii.Failed(classify.UnsupportedUnionMessage),
		},
		{
			"single term",
			types.NewUnion([]*types.Term{types.NewTerm(true, types.Typ[types.String])}),
			jsii.Unknown{},
		},
		{
			"map of map",
			types.NewMap(types.Typ[types.String], types.NewMap(types.Typ[types.String], types.Typ[types.String])),
			jsii.MapOf(jsii.MapOf(jsii.Primitive(jsii.BuiltInString))),
		},
		{
			"pointer to slice",
			types.NewPointer(types.NewSlice(types.NewPointer(types.Typ[types.Float64]))),
			jsii.ListOf(jsii.Primitive(jsii.BuiltInNumber)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Determine(tt.input))
		})
	}
}

func TestDetermine_PointerIsTransparent(t *testing.T) {
	pkg := checkFixture(t)

	for _, name := range []string{"str", "bucket", "tags", "counts", "names", "rw", "anon", "brokenAlias"} {
		base := lookupType(t, pkg, name)
		assert.Equal(t, Determine(base), Determine(types.NewPointer(base)), name)
	}
}

func TestInspector_InferenceFailed(t *testing.T) {
	pkg := checkFixture(t)
	in := Inspector{}

	broken := lookupType(t, pkg, "brokenAlias")
	_, isAlias := broken.(*types.Alias)
	require.True(t, isAlias, "expected an alias, got %T", broken)

	assert.True(t, in.InferenceFailed(broken))
	assert.True(t, in.InferenceFailed(types.NewPointer(broken)))
	assert.True(t, in.InferenceFailed(types.Typ[types.Invalid]))
	assert.True(t, in.InferenceFailed(nil))

	assert.False(t, in.InferenceFailed(lookupType(t, pkg, "props")))
	assert.False(t, in.InferenceFailed(types.NewPointer(types.Typ[types.Int])))
}

func TestInspector_MapElementType(t *testing.T) {
	in := Inspector{}

	elem := in.MapElementType(types.NewMap(types.Typ[types.String], types.Typ[types.Int]))
	assert.True(t, elem.IsContainer)
	assert.True(t, elem.HasElem)
	assert.Equal(t, types.Typ[types.Int], elem.Elem)

	opaque := in.MapElementType(types.NewMap(types.Typ[types.String], types.Typ[types.Invalid]))
	assert.True(t, opaque.IsContainer)
	assert.False(t, opaque.HasElem)

	assert.False(t, in.MapElementType(types.NewMap(types.Typ[types.Int], types.Typ[types.Int])).IsContainer)
	assert.False(t, in.MapElementType(types.NewSlice(types.Typ[types.Int])).IsContainer)
}

func TestIsStringKind(t *testing.T) {
	assert.True(t, IsStringKind(types.Typ[types.String]))
	assert.True(t, IsStringKind(types.Typ[types.UntypedString]))
	assert.False(t, IsStringKind(types.Typ[types.Int]))
	assert.False(t, IsStringKind(types.NewSlice(types.Typ[types.Byte])))
}
