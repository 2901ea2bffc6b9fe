package classify

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"sample-typer/jsii"
)

// fakeType is a hand-built checker type.
type fakeType struct {
	failed      bool
	nullable    *fakeType // set for "T | null", points at T
	mapElem     *fakeType
	mapOpaque   bool
	listElem    *fakeType
	listOpaque  bool
	alias       string
	symbol      string
	builtIn     jsii.BuiltInType
	union       bool
	description string
}

type fakeChecker struct{}

func (fakeChecker) InferenceFailed(t *fakeType) bool { return t.failed }

func (fakeChecker) NonNullable(t *fakeType) *fakeType {
	for t.nullable != nil {
		t = t.nullable
	}
	return t
}

func (fakeChecker) AliasName(t *fakeType) (string, bool)   { return t.alias, t.alias != "" }
func (fakeChecker) SymbolName(t *fakeType) (string, bool)  { return t.symbol, t.symbol != "" }
func (fakeChecker) IsUnionOrIntersection(t *fakeType) bool { return t.union }

func (fakeChecker) MapElementType(t *fakeType) Element[*fakeType] {
	switch {
	case t.mapElem != nil:
		return ContainerOf(t.mapElem)
	case t.mapOpaque:
		return OpaqueContainer[*fakeType]()
	default:
		return NotContainer[*fakeType]()
	}
}

func (fakeChecker) ListElementType(t *fakeType) Element[*fakeType] {
	switch {
	case t.listElem != nil:
		return ContainerOf(t.listElem)
	case t.listOpaque:
		return OpaqueContainer[*fakeType]()
	default:
		return NotContainer[*fakeType]()
	}
}

func (fakeChecker) BuiltInTypeName(t *fakeType) (jsii.BuiltInType, bool) {
	return t.builtIn, t.builtIn != ""
}

var (
	stringType = &fakeType{builtIn: jsii.BuiltInString, description: "string"}
	numberType = &fakeType{builtIn: jsii.BuiltInNumber, description: "number"}
	errorType  = &fakeType{failed: true, description: "error"}
)

func newClassifier() *Classifier[*fakeType] {
	return NewFromInspector[*fakeType](fakeChecker{})
}

func TestDetermine(t *testing.T) {
	tests := []struct {
		name     string
		input    *fakeType
		expected jsii.Type
	}{
		{
			name:     "inference failure is unknown",
			input:    &fakeType{failed: true, symbol: "Ignored", builtIn: jsii.BuiltInString},
			expected: jsii.Unknown{},
		},
		{
			name:     "built-in",
			input:    stringType,
			expected: jsii.Primitive(jsii.BuiltInString),
		},
		{
			name:     "nullable built-in",
			input:    &fakeType{nullable: numberType, union: true},
			expected: jsii.Primitive(jsii.BuiltInNumber),
		},
		{
			name:     "map of built-in",
			input:    &fakeType{mapElem: stringType},
			expected: jsii.MapOf(jsii.Primitive(jsii.BuiltInString)),
		},
		{
			name:     "map with opaque element",
			input:    &fakeType{mapOpaque: true},
			expected: jsii.MapOf(jsii.Primitive(jsii.BuiltInAny)),
		},
		{
			name:     "map with unresolved element",
			input:    &fakeType{mapElem: errorType},
			expected: jsii.MapOf(jsii.Unknown{}),
		},
		{
			name:     "list of named",
			input:    &fakeType{listElem: &fakeType{symbol: "Bucket"}},
			expected: jsii.ListOf(jsii.Named("Bucket")),
		},
		{
			name:     "list with opaque element",
			input:    &fakeType{listOpaque: true},
			expected: jsii.ListOf(jsii.Primitive(jsii.BuiltInAny)),
		},
		{
			name:     "map shape wins over alias",
			input:    &fakeType{mapElem: stringType, alias: "Tags"},
			expected: jsii.MapOf(jsii.Primitive(jsii.BuiltInString)),
		},
		{
			name:     "alias wins over symbol",
			input:    &fakeType{alias: "Props", symbol: "__type"},
			expected: jsii.Named("Props"),
		},
		{
			name:     "symbol wins over built-in",
			input:    &fakeType{symbol: "Duration", builtIn: jsii.BuiltInNumber},
			expected: jsii.Named("Duration"),
		},
		{
			name:     "built-in wins over union",
			input:    &fakeType{builtIn: jsii.BuiltInBoolean, union: true},
			expected: jsii.Primitive(jsii.BuiltInBoolean),
		},
		{
			name:     "union is an error",
			input:    &fakeType{union: true},
			expected: jsii.Failed(UnsupportedUnionMessage),
		},
		{
			name:     "nothing matches",
			input:    &fakeType{description: "object literal"},
			expected: jsii.Unknown{},
		},
		{
			name:     "nested nullable containers",
			input:    &fakeType{nullable: &fakeType{mapElem: &fakeType{nullable: &fakeType{listElem: numberType}}}},
			expected: jsii.MapOf(jsii.ListOf(jsii.Primitive(jsii.BuiltInNumber))),
		},
	}

	c := newClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Determine(tt.input))
		})
	}
}

func TestDetermine_BuiltInsNeverFallThrough(t *testing.T) {
	c := newClassifier()
	for _, b := range jsii.BuiltInTypes {
		got := c.Determine(&fakeType{builtIn: b})
		assert.Equal(t, jsii.Primitive(b), got, b)
	}
}

func TestDetermine_NullableIsTransparent(t *testing.T) {
	c := newClassifier()
	inputs := []*fakeType{
		stringType,
		{symbol: "Queue"},
		{alias: "Props"},
		{mapElem: numberType},
		{union: true},
		{},
	}

	for _, in := range inputs {
		wrapped := &fakeType{nullable: in}
		doubly := &fakeType{nullable: wrapped}
		assert.Equal(t, c.Determine(in), c.Determine(wrapped))
		assert.Equal(t, c.Determine(in), c.Determine(doubly))
	}
}

func TestDetermine_NestingDepthPreserved(t *testing.T) {
	c := newClassifier()
	input := &fakeType{mapElem: &fakeType{mapElem: stringType}}

	got := c.Determine(input)

	want := jsii.MapOf(jsii.MapOf(jsii.Primitive(jsii.BuiltInString)))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Determine() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, jsii.Depth(got))
}

func TestDetermine_Idempotent(t *testing.T) {
	c := newClassifier()
	input := &fakeType{listElem: &fakeType{mapElem: &fakeType{alias: "Tag"}}}

	first := c.Determine(input)
	second := c.Determine(input)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second Determine() differs (-first +second):\n%s", diff)
	}
}

func TestDetermine_ConcurrentUse(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := newClassifier()
	input := &fakeType{mapElem: &fakeType{listElem: &fakeType{symbol: "Rule"}}}
	want := jsii.MapOf(jsii.ListOf(jsii.Named("Rule")))

	var wg sync.WaitGroup
	results := make([]jsii.Type, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Determine(input)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestDetermine_Func(t *testing.T) {
	got := Determine[*fakeType](fakeChecker{}, &fakeType{listElem: stringType})
	assert.Equal(t, jsii.ListOf(jsii.Primitive(jsii.BuiltInString)), got)
}

func TestNew_SeparateCapabilities(t *testing.T) {
	c := New[*fakeType](fakeChecker{}, fakeChecker{}, fakeChecker{})
	assert.Equal(t, jsii.Named("Props"), c.Determine(&fakeType{alias: "Props"}))
}
