package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"sample-typer/internal/common"
	"sample-typer/internal/config"
	"sample-typer/internal/diagnostic"
	"sample-typer/internal/render"
	"sample-typer/jsii"
)

const noAnnotation = "-"

// writeStructured writes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// writeTable renders data with a header row.
func writeTable(w io.Writer, data pterm.TableData) error {
	text, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	_, err = fmt.Fprintln(w, text)

	return err
}

// writeDump writes a debug dump of v.
func writeDump(w io.Writer, v any) {
	fmt.Fprint(w, spew.Sdump(v))
}

// writeDiagnostics prints diagnostics with a severity prefix. Infos are only
// printed when showInfos is set.
func writeDiagnostics(w io.Writer, diags diagnostic.Diagnostics, showInfos bool) {
	for _, d := range diags.All() {
		switch d.Severity {
		case diagnostic.SeverityError:
			fmt.Fprint(w, pterm.Error.Sprintln(d.String()))
		case diagnostic.SeverityWarning:
			fmt.Fprint(w, pterm.Warning.Sprintln(d.String()))
		case diagnostic.SeverityInfo:
			if showInfos {
				fmt.Fprint(w, pterm.Info.Sprintln(d.String()))
			}
		}
	}
}

func targetHeaders(targets []render.Target) []string {
	headers := make([]string, 0, len(targets))
	for _, t := range targets {
		headers = append(headers, t.String())
	}

	return headers
}

// annotationCells renders t for each target, using a dash for omitted
// annotations.
func annotationCells(targets []render.Target, t jsii.Type) []string {
	cells := make([]string, 0, len(targets))
	for _, target := range targets {
		text, ok := render.Render(target, t)
		if !ok {
			text = noAnnotation
		}

		cells = append(cells, text)
	}

	return cells
}

// annotationsByName renders t keyed by target name.
func annotationsByName(targets []render.Target, t jsii.Type) map[string]string {
	out := make(map[string]string, len(targets))
	for target, text := range render.RenderAll(targets, t) {
		out[target.String()] = text
	}

	return out
}

func typeString(t jsii.Type) string {
	if t == nil {
		return common.UnknownStr
	}

	return t.String()
}

// visible reports whether a binding of type t is listed.
func visible(t jsii.Type, showUnknown bool) bool {
	if showUnknown {
		return true
	}

	return t != nil && t.Kind() != jsii.KindUnknown
}
