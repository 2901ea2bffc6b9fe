package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sample-typer/internal/analyze"
	"sample-typer/internal/common"
	"sample-typer/internal/config"
)

var catalogDir string

// catalogCmd classifies the exported API of packages
var catalogCmd = &cobra.Command{
	Use:   "catalog [packages...]",
	Short: "Classify the exported API of Go packages",
	Long: `Load Go packages and classify every exported field, function parameter,
result, variable and constant. Defaults to ./... when no pattern is given.`,
	Example: `  sample-typer catalog ./examples/shop
  sample-typer catalog -d ../api -f yaml ./...`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogDir, "dir", "d", "", "Directory package patterns are resolved in")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, targets, err := loadConfig()
	if err != nil {
		return err
	}

	patterns := args
	if common.IsEmpty(patterns) {
		patterns = []string{"./..."}
	}

	catalog, err := analyze.NewAnalyzer(logger).WithDir(catalogDir).LoadPackages(cmd.Context(), patterns...)
	if err != nil {
		return err
	}

	logger.Debug("Catalog loaded",
		zap.Strings("packages", catalog.PackagePaths()),
		zap.Int("members", len(catalog.Members())))

	out := cmd.OutOrStdout()
	if dump {
		writeDump(out, catalog)
	}

	if cfg.Format != config.FormatTable {
		pkgs := make([]*analyze.PackageInfo, 0, len(catalog.Packages))
		for _, path := range catalog.PackagePaths() {
			pkgs = append(pkgs, catalog.Packages[path])
		}

		return writeStructured(out, cfg.Format, pkgs)
	}

	header := append([]string{"Package", "Member", "Kind", "Go type", "jsii type"}, targetHeaders(targets)...)
	data := pterm.TableData{header}

	for _, path := range catalog.PackagePaths() {
		for _, m := range catalog.Packages[path].Members {
			if !visible(m.Type, cfg.ShowUnknown) {
				continue
			}

			row := []string{common.PkgAlias(path), m.Path, m.Kind.String(), m.GoType, typeString(m.Type)}
			data = append(data, append(row, annotationCells(targets, m.Type)...))
		}
	}

	return writeTable(out, data)
}
