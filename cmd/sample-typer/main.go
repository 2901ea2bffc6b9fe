// Package main provides the CLI entrypoint for sample-typer.
//
// sample-typer classifies the types used by Go code samples into the
// language-neutral jsii type model so they can be rendered as type
// annotations in other documentation languages:
//   - annotate type-checks samples and lists every binding with its type
//   - catalog classifies the exported API of Go packages
//   - render renders a serialized jsii type for each target language
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sample-typer/internal/config"
	"sample-typer/internal/render"
)

var (
	// Global flags
	verbose    bool
	configPath string
	format     string
	targets    []string
	dump       bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sample-typer",
	Short: "Classify the types of Go code samples for multi-language docs",
	Long: `sample-typer type-checks Go code samples and classifies every binding
they declare as a jsii type: a built-in, a named type, a string-keyed map or a
list of those. Types that cannot be expressed are reported as unknown or as
errors and are left without an annotation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error

		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Config file (default: "+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "Output format: table, json or yaml")
	rootCmd.PersistentFlags().StringSliceVarP(&targets, "targets", "t", nil, "Target languages to render annotations for")
	rootCmd.PersistentFlags().BoolVar(&dump, "dump", false, "Dump the raw results for debugging")

	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(renderCmd)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (*config.Config, []render.Target, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	if format != "" {
		cfg.Format = strings.ToLower(format)
	}

	if len(targets) > 0 {
		cfg.Targets = targets
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	parsed, err := cfg.RenderTargets()
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("Loaded config",
		zap.String("format", cfg.Format),
		zap.Strings("targets", cfg.Targets),
		zap.Bool("strict", cfg.Strict))

	return cfg, parsed, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
