package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"sample-typer/internal/common"
	"sample-typer/internal/config"
	"sample-typer/jsii"
)

// renderCmd renders a serialized type
var renderCmd = &cobra.Command{
	Use:   "render <type>",
	Short: "Render a serialized jsii type for each target language",
	Long: `Render a jsii type given in its JSON (or YAML) wire form as a type
annotation in each target language. Unknown and error types render as nothing.`,
	Example: `  sample-typer render '{"kind":"map","elementType":{"kind":"builtIn","builtIn":"number"}}'`,
	Args:    cobra.ExactArgs(1),
	RunE:    runRender,
}

type renderResult struct {
	Type        jsii.Type         `json:"type" yaml:"type"`
	Annotations map[string]string `json:"annotations" yaml:"annotations"`
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, targets, err := loadConfig()
	if err != nil {
		return err
	}

	arg, _ := common.First(args)

	// YAML is a superset of JSON, so both wire forms parse here.
	t, err := jsii.UnmarshalYAML([]byte(arg))
	if err != nil {
		return fmt.Errorf("invalid type %q: %w", arg, err)
	}

	out := cmd.OutOrStdout()
	if dump {
		writeDump(out, t)
	}

	if cfg.Format != config.FormatTable {
		return writeStructured(out, cfg.Format, renderResult{
			Type:        t,
			Annotations: annotationsByName(targets, t),
		})
	}

	data := pterm.TableData{{"Target", "Annotation"}}
	for i, cell := range annotationCells(targets, t) {
		data = append(data, []string{targets[i].String(), cell})
	}

	return writeTable(out, data)
}
