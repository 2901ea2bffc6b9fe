package sample

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sample-typer/internal/classify"
	"sample-typer/internal/common"
	"sample-typer/internal/diagnostic"
	"sample-typer/internal/gotypes"
	"sample-typer/jsii"
)

// DefaultConcurrency bounds CheckFiles when Options.Concurrency is unset.
const DefaultConcurrency = 4

// Options configures a Checker.
type Options struct {
	// Importer resolves imports of samples. Calls are serialized, so it may
	// be shared by concurrent checks. When nil every check builds its own gc
	// importer.
	Importer types.Importer
	// Logger receives debug output. Defaults to a no-op logger.
	Logger *zap.Logger
	// Concurrency bounds the number of samples checked at once by CheckFiles.
	Concurrency int
}

// Checker parses, type-checks and annotates samples.
type Checker struct {
	importer    types.Importer
	classifier  *classify.Classifier[types.Type]
	logger      *zap.Logger
	concurrency int
}

// NewChecker creates a new Checker.
func NewChecker(opts Options) *Checker {
	c := &Checker{
		classifier:  gotypes.NewClassifier(),
		logger:      opts.Logger,
		concurrency: opts.Concurrency,
	}

	if opts.Importer != nil {
		c.importer = &lockedImporter{importer: opts.Importer}
	}

	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	if c.concurrency <= 0 {
		c.concurrency = DefaultConcurrency
	}

	return c
}

// Sample is a named piece of Go source.
type Sample struct {
	Name   string
	Source string
}

// Binding is a name introduced by a sample together with its classified type.
type Binding struct {
	Name     string         `json:"name" yaml:"name"`
	Position string         `json:"position" yaml:"position"`
	GoType   string         `json:"goType" yaml:"goType"`
	Type     jsii.Type      `json:"type" yaml:"type"`
	Pos      token.Position `json:"-" yaml:"-"`
}

// Report is the result of checking one sample.
type Report struct {
	Sample      string                 `json:"sample" yaml:"sample"`
	Bindings    []Binding              `json:"bindings" yaml:"bindings"`
	Diagnostics diagnostic.Diagnostics `json:"diagnostics" yaml:"diagnostics"`
}

// Lookup returns the first binding called name.
func (r *Report) Lookup(name string) (Binding, bool) {
	for _, b := range r.Bindings {
		if b.Name == name {
			return b, true
		}
	}

	return Binding{}, false
}

// Check type-checks a sample and classifies every binding it declares.
// It fails only when the sample cannot be parsed or ctx is done; type
// errors are reported as warnings.
func (c *Checker) Check(ctx context.Context, s Sample) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := s.Name
	if name == "" {
		name = common.DefaultSampleName
	}

	src := s.Source
	wrapped := !hasPackageClause(name, src)
	if wrapped {
		src = wrapSnippet(name, src)
	}

	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sample %s: %w", name, err)
	}

	report := &Report{Sample: name}

	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
	}

	conf := types.Config{
		Importer: c.importerFor(fset),
		Error: func(err error) {
			c.recordTypeError(report, err)
		},
	}

	// The returned error duplicates what Error already recorded.
	_, _ = conf.Check(file.Name.Name, fset, []*ast.File{file}, info)

	c.annotate(report, fset, file, info)

	c.logger.Debug("checked sample",
		zap.String("sample", name),
		zap.Bool("wrapped", wrapped),
		zap.Int("bindings", len(report.Bindings)),
		zap.Int("errors", len(report.Diagnostics.Errors)),
	)

	return report, nil
}

// importerFor returns the shared importer, or a fresh gc importer bound to
// fset. The gc importer caches packages in an unsynchronized map, so it is
// never shared between checks.
func (c *Checker) importerFor(fset *token.FileSet) types.Importer {
	if c.importer != nil {
		return c.importer
	}

	return importer.ForCompiler(fset, "gc", nil)
}

// lockedImporter serializes calls to a caller-supplied importer.
type lockedImporter struct {
	mu       sync.Mutex
	importer types.Importer
}

func (l *lockedImporter) Import(path string) (*types.Package, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.importer.Import(path)
}

// CheckSource is a shortcut for checking an unnamed sample.
func (c *Checker) CheckSource(ctx context.Context, src string) (*Report, error) {
	return c.Check(ctx, Sample{Source: src})
}

// CheckFiles checks the samples stored at paths concurrently. Reports are
// returned in the order of paths.
func (c *Checker) CheckFiles(ctx context.Context, paths []string) ([]*Report, error) {
	reports := make([]*Report, len(paths))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(c.concurrency)

	for i, path := range paths {
		eg.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read sample %s: %w", path, err)
			}

			report, err := c.Check(egCtx, Sample{Name: path, Source: string(data)})
			if err != nil {
				return err
			}

			reports[i] = report

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// recordTypeError turns a go/types error into a warning. Soft errors such as
// unused variables are expected in samples and only logged.
func (c *Checker) recordTypeError(report *Report, err error) {
	var typeErr types.Error
	if !errors.As(err, &typeErr) {
		report.Diagnostics.AddWarning(diagnostic.CodeTypeCheck, err.Error(), report.Sample, "")
		return
	}

	if typeErr.Soft {
		c.logger.Debug("soft type error", zap.String("sample", report.Sample), zap.String("msg", typeErr.Msg))
		return
	}

	pos := typeErr.Fset.Position(typeErr.Pos)
	report.Diagnostics.AddWarning(diagnostic.CodeTypeCheck, typeErr.Msg, report.Sample, positionString(pos))
}

func positionString(pos token.Position) string {
	if !pos.IsValid() {
		return ""
	}

	if pos.Column == 0 {
		return fmt.Sprintf("%d", pos.Line)
	}

	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}
