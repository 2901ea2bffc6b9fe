package main

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sample-typer/internal/common"
	"sample-typer/internal/config"
	"sample-typer/internal/diagnostic"
	"sample-typer/internal/render"
	"sample-typer/internal/sample"
)

const stdinSample = "stdin"

// annotateCmd type-checks samples and lists their bindings
var annotateCmd = &cobra.Command{
	Use:   "annotate [files...]",
	Short: "Type-check samples and classify the bindings they declare",
	Long: `Type-check Go samples and classify every variable they declare.

Samples without a package clause are checked as the body of a function, so
plain statement snippets work. With no files the sample is read from stdin.`,
	Example: `  sample-typer annotate docs/samples/*.go
  echo 'tags := map[string]string{}' | sample-typer annotate -t ts,py`,
	RunE: runAnnotate,
}

type annotatedBinding struct {
	sample.Binding `yaml:",inline"`
	Annotations    map[string]string `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

type annotatedReport struct {
	Sample      string                 `json:"sample" yaml:"sample"`
	Bindings    []annotatedBinding     `json:"bindings" yaml:"bindings"`
	Diagnostics diagnostic.Diagnostics `json:"diagnostics" yaml:"diagnostics"`
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	cfg, targets, err := loadConfig()
	if err != nil {
		return err
	}

	checker := sample.NewChecker(sample.Options{
		Logger:      logger,
		Concurrency: cfg.Concurrency,
	})

	reports, err := checkSamples(cmd, checker, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if dump {
		writeDump(out, reports)
	}

	if cfg.Format == config.FormatTable {
		err = writeAnnotateTable(out, reports, targets, cfg.ShowUnknown)
	} else {
		err = writeStructured(out, cfg.Format, annotateReports(reports, targets, cfg.ShowUnknown))
	}

	if err != nil {
		return err
	}

	return checkFailures(cfg, reports)
}

func checkSamples(cmd *cobra.Command, checker *sample.Checker, args []string) ([]*sample.Report, error) {
	if !common.IsEmpty(args) {
		logger.Debug("Checking samples", zap.Strings("files", args))
		return checker.CheckFiles(cmd.Context(), args)
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read sample from stdin: %w", err)
	}

	report, err := checker.Check(cmd.Context(), sample.Sample{Name: stdinSample, Source: string(data)})
	if err != nil {
		return nil, err
	}

	return []*sample.Report{report}, nil
}

func annotateReports(reports []*sample.Report, targets []render.Target, showUnknown bool) []annotatedReport {
	out := make([]annotatedReport, 0, len(reports))

	for _, r := range reports {
		ar := annotatedReport{Sample: r.Sample, Diagnostics: r.Diagnostics}
		for _, b := range r.Bindings {
			if !visible(b.Type, showUnknown) {
				continue
			}

			ar.Bindings = append(ar.Bindings, annotatedBinding{
				Binding:     b,
				Annotations: annotationsByName(targets, b.Type),
			})
		}

		out = append(out, ar)
	}

	return out
}

func writeAnnotateTable(w io.Writer, reports []*sample.Report, targets []render.Target, showUnknown bool) error {
	header := append([]string{"Sample", "Position", "Name", "Go type", "jsii type"}, targetHeaders(targets)...)
	data := pterm.TableData{header}

	for _, r := range reports {
		for _, b := range r.Bindings {
			if !visible(b.Type, showUnknown) {
				continue
			}

			row := []string{r.Sample, b.Position, b.Name, b.GoType, typeString(b.Type)}
			data = append(data, append(row, annotationCells(targets, b.Type)...))
		}
	}

	if err := writeTable(w, data); err != nil {
		return err
	}

	for _, r := range reports {
		writeDiagnostics(w, r.Diagnostics, showUnknown)
	}

	return nil
}

// checkFailures turns unsupported types and type errors into a failed run
// when the config asks for it.
func checkFailures(cfg *config.Config, reports []*sample.Report) error {
	var unsupported, typeErrors int

	for _, r := range reports {
		unsupported += len(r.Diagnostics.Errors)
		typeErrors += len(r.Diagnostics.Warnings)
	}

	if cfg.Strict && unsupported > 0 {
		return fmt.Errorf("%d binding(s) use unsupported types", unsupported)
	}

	if cfg.FailOnTypeErrors && typeErrors > 0 {
		return fmt.Errorf("%d type error(s) in samples", typeErrors)
	}

	return nil
}
