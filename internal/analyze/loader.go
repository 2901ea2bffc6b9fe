package analyze

import (
	"context"
	"fmt"
	"go/types"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"sample-typer/internal/classify"
	"sample-typer/internal/gotypes"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds an API catalog.
type Analyzer struct {
	catalog    *Catalog
	classifier *classify.Classifier[types.Type]
	logger     *zap.Logger
	dir        string
}

// NewAnalyzer creates a new Analyzer. A nil logger disables logging.
func NewAnalyzer(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Analyzer{
		catalog:    NewCatalog(),
		classifier: gotypes.NewClassifier(),
		logger:     logger,
	}
}

// WithDir sets the directory package patterns are resolved in.
func (a *Analyzer) WithDir(dir string) *Analyzer {
	a.dir = dir
	return a
}

// LoadPackages loads the specified packages and builds the catalog.
// Patterns are standard Go package patterns (e.g., "./...", "sample-typer/examples/shop").
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) (*Catalog, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg.Types)
		a.logger.Debug("cataloged package",
			zap.String("pkg", pkg.PkgPath),
			zap.Int("members", len(a.catalog.Packages[pkg.PkgPath].Members)),
		)
	}

	return a.catalog, nil
}

// processPackage extracts the exported members of a type-checked package.
func (a *Analyzer) processPackage(pkg *types.Package) {
	info := &PackageInfo{
		Path: pkg.Path(),
		Name: pkg.Name(),
	}

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !obj.Exported() {
			continue
		}

		path := NewMemberPath(name)

		switch o := obj.(type) {
		case *types.TypeName:
			info.Members = append(info.Members, a.typeMembers(pkg, o, path)...)

		case *types.Func:
			info.Members = append(info.Members, a.signatureMembers(pkg, o.Type().(*types.Signature), path)...)

		case *types.Var:
			info.Members = append(info.Members, a.member(pkg, MemberVar, path, o.Type()))

		case *types.Const:
			info.Members = append(info.Members, a.member(pkg, MemberConst, path, o.Type()))
		}
	}

	a.catalog.Packages[pkg.Path()] = info
}

// typeMembers returns the exported fields and method signatures of a named type.
func (a *Analyzer) typeMembers(pkg *types.Package, obj *types.TypeName, path *MemberPath) []Member {
	if obj.IsAlias() {
		return nil
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil
	}

	var members []Member

	if st, ok := named.Underlying().(*types.Struct); ok {
		for i := range st.NumFields() {
			field := st.Field(i)
			if !field.Exported() {
				continue
			}

			members = append(members, a.member(pkg, MemberField, path.Field(field.Name()), field.Type()))
		}
	}

	for i := range named.NumMethods() {
		method := named.Method(i)
		if !method.Exported() {
			continue
		}

		members = append(members, a.signatureMembers(pkg, method.Type().(*types.Signature), path.Field(method.Name()))...)
	}

	if iface, ok := named.Underlying().(*types.Interface); ok {
		for i := range iface.NumExplicitMethods() {
			method := iface.ExplicitMethod(i)
			if !method.Exported() {
				continue
			}

			members = append(members, a.signatureMembers(pkg, method.Type().(*types.Signature), path.Field(method.Name()))...)
		}
	}

	return members
}

// signatureMembers returns one member per parameter and result.
func (a *Analyzer) signatureMembers(pkg *types.Package, sig *types.Signature, path *MemberPath) []Member {
	var members []Member

	params := sig.Params()
	for i := range params.Len() {
		name := params.At(i).Name()
		if name == "" || name == "_" {
			name = "arg" + strconv.Itoa(i)
		}

		members = append(members, a.member(pkg, MemberParam, path.Param(name), params.At(i).Type()))
	}

	results := sig.Results()
	for i := range results.Len() {
		members = append(members, a.member(pkg, MemberResult, path.Result(i), results.At(i).Type()))
	}

	return members
}

func (a *Analyzer) member(pkg *types.Package, kind MemberKind, path *MemberPath, t types.Type) Member {
	p := path.String()

	return Member{
		ID:     TypeID{PkgPath: pkg.Path(), Name: p},
		Path:   p,
		Kind:   kind,
		GoType: types.TypeString(t, types.RelativeTo(pkg)),
		Type:   a.classifier.Determine(t),
	}
}
