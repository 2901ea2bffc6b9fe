package sample

import (
	"go/ast"
	"go/token"
	"go/types"

	"go.uber.org/zap"

	"sample-typer/internal/diagnostic"
	"sample-typer/jsii"
)

// annotate walks the file in source order and records a Binding for every
// name introduced by :=, var, const or a defining range clause.
func (c *Checker) annotate(report *Report, fset *token.FileSet, file *ast.File, info *types.Info) {
	ast.Inspect(file, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.AssignStmt:
			if node.Tok == token.DEFINE {
				for _, lhs := range node.Lhs {
					c.bind(report, fset, info, lhs)
				}
			}

		case *ast.ValueSpec:
			for _, name := range node.Names {
				c.bind(report, fset, info, name)
			}

		case *ast.RangeStmt:
			if node.Tok == token.DEFINE {
				c.bind(report, fset, info, node.Key)
				c.bind(report, fset, info, node.Value)
			}
		}

		return true
	})
}

func (c *Checker) bind(report *Report, fset *token.FileSet, info *types.Info, expr ast.Expr) {
	ident, ok := expr.(*ast.Ident)
	if !ok || ident.Name == "_" {
		return
	}

	// A := that reuses an existing variable defines nothing for it.
	obj := info.Defs[ident]
	if obj == nil {
		return
	}

	pos := fset.Position(ident.Pos())
	typ := c.classifier.Determine(obj.Type())

	binding := Binding{
		Name:     ident.Name,
		Position: positionString(pos),
		GoType:   goTypeString(obj.Type(), obj.Pkg()),
		Type:     typ,
		Pos:      pos,
	}
	report.Bindings = append(report.Bindings, binding)

	switch tt := typ.(type) {
	case jsii.Error:
		report.Diagnostics.AddError(diagnostic.CodeUnsupportedType,
			ident.Name+": "+tt.Message, report.Sample, binding.Position)

	case jsii.Unknown:
		report.Diagnostics.AddInfo(diagnostic.CodeUnknownType,
			"type of "+ident.Name+" could not be determined", report.Sample, binding.Position)
	}

	c.logger.Debug("classified binding",
		zap.String("sample", report.Sample),
		zap.String("name", ident.Name),
		zap.String("goType", binding.GoType),
		zap.Stringer("type", typ),
	)
}

// goTypeString prints t relative to pkg, so "sample.Order" reads "Order"
// while "time.Time" keeps its package name.
func goTypeString(t types.Type, pkg *types.Package) string {
	if t == nil {
		return "invalid type"
	}

	return types.TypeString(t, func(other *types.Package) string {
		if other == pkg {
			return ""
		}

		return other.Name()
	})
}
