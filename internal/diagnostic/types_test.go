package diagnostic

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}

func TestDiagnostics_AddAndMerge(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo(CodeUnknownType, "type of x is unknown", "a.go", "2:1")
	d.AddWarning(CodeTypeCheck, "undefined: foo", "a.go", "2:6")
	assert.True(t, d.IsValid())
	assert.True(t, d.HasWarnings())

	var other Diagnostics
	other.AddError(CodeUnsupportedType, "unions", "b.go", "4:2")
	d.Merge(other)

	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())
	require.Len(t, d.All(), 3)
	assert.Equal(t, SeverityError, d.All()[0].Severity)
	assert.EqualError(t, d.Error(), "b.go:4:2: [unsupported-type] unions")
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{"full", Diagnostic{Code: "c", Message: "m", Sample: "s.go", Position: "1:2"}, "s.go:1:2: [c] m"},
		{"no position", Diagnostic{Code: "c", Message: "m", Sample: "s.go"}, "s.go: [c] m"},
		{"position only", Diagnostic{Message: "m", Position: "3:4"}, "3:4: m"},
		{"bare", Diagnostic{Message: "m"}, "m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestDiagnostic_JSONSeverity(t *testing.T) {
	data, err := json.Marshal(Diagnostic{Severity: SeverityWarning, Code: "c", Message: "m"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"severity":"warning","code":"c","message":"m"}`, string(data))
}
