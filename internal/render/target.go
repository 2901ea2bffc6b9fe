package render

import (
	"fmt"
	"strings"

	"sample-typer/internal/common"
	"sample-typer/internal/suggest"
)

// Target is a documentation language samples are rendered for.
type Target int

const (
	TargetTypeScript Target = iota
	TargetPython
	TargetJava
	TargetCSharp
	TargetGo
)

// Targets lists every supported target.
var Targets = []Target{TargetTypeScript, TargetPython, TargetJava, TargetCSharp, TargetGo}

// String returns the canonical target name.
func (t Target) String() string {
	switch t {
	case TargetTypeScript:
		return "typescript"
	case TargetPython:
		return "python"
	case TargetJava:
		return "java"
	case TargetCSharp:
		return "csharp"
	case TargetGo:
		return "go"
	default:
		return common.UnknownStr
	}
}

// ParseTarget parses a target name case-insensitively. Common short forms
// such as "ts", "py", "c#" and "golang" are accepted.
func ParseTarget(name string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "typescript", "ts":
		return TargetTypeScript, nil
	case "python", "py":
		return TargetPython, nil
	case "java":
		return TargetJava, nil
	case "csharp", "c#", "cs", "dotnet":
		return TargetCSharp, nil
	case "go", "golang":
		return TargetGo, nil
	default:
		return 0, fmt.Errorf("unknown target %q%s", name, suggest.Hint(name, targetNames()))
	}
}

// ParseTargets parses a list of target names.
func ParseTargets(names []string) ([]Target, error) {
	targets := make([]Target, 0, len(names))
	for _, name := range names {
		t, err := ParseTarget(name)
		if err != nil {
			return nil, err
		}

		targets = append(targets, t)
	}

	return targets, nil
}

func targetNames() []string {
	names := make([]string, 0, len(Targets))
	for _, t := range Targets {
		names = append(names, t.String())
	}

	return names
}
