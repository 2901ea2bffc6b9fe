package sample

import (
	"fmt"
	"go/parser"
	"go/scanner"
	"go/token"
	"strings"
)

const syntheticPackage = "sample"

// hasPackageClause reports whether src parses as the start of a Go file.
func hasPackageClause(name, src string) bool {
	_, err := parser.ParseFile(token.NewFileSet(), name, src, parser.PackageClauseOnly)
	return err == nil
}

// region is a run of snippet lines [start, end), 0-based.
type region struct {
	start, end int
}

// wrapSnippet turns a statement-level snippet into a compilable file. Leading
// import lines go to file scope. So do func and type declarations written at
// column 1, so helpers, methods and their receiver types work; everything
// else goes into a function body. Each copied region is preceded by a //line
// directive so positions stay relative to the snippet.
func wrapSnippet(name, src string) string {
	lines := strings.Split(src, "\n")

	var imports []string
	body := 0

scan:
	for body < len(lines) {
		trimmed := strings.TrimSpace(lines[body])

		switch {
		case trimmed == "":
			body++

		case strings.HasPrefix(trimmed, "import ("):
			imports = append(imports, lineDirective(name, body+1))
			for ; body < len(lines); body++ {
				imports = append(imports, lines[body])
				if strings.TrimSpace(lines[body]) == ")" {
					body++
					break
				}
			}

		case strings.HasPrefix(trimmed, "import "):
			imports = append(imports, lineDirective(name, body+1), lines[body])
			body++

		default:
			break scan
		}
	}

	decls := declRegions(lines, body)

	var sb strings.Builder

	sb.WriteString("package " + syntheticPackage + "\n\n")

	for _, line := range imports {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	for _, r := range decls {
		writeRegion(&sb, name, lines, r)
	}

	sb.WriteString("\nfunc _() {\n")

	next := body
	for _, r := range decls {
		if next < r.start {
			writeRegion(&sb, name, lines, region{start: next, end: r.start})
		}

		next = r.end
	}

	if next < len(lines) {
		writeRegion(&sb, name, lines, region{start: next, end: len(lines)})
	}

	sb.WriteString("\n}\n")

	return sb.String()
}

// declRegions finds the func and type declarations in lines[from:] that start
// at column 1 outside any bracket. A declaration ends with the first
// semicolon, explicit or inserted at a newline, at bracket depth zero.
func declRegions(lines []string, from int) []region {
	if from >= len(lines) {
		return nil
	}

	src := []byte(strings.Join(lines[from:], "\n"))

	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var s scanner.Scanner
	s.Init(file, src, nil, 0)

	var (
		regions []region
		depth   int
		start   = -1
		prevTok = token.SEMICOLON
	)

	for {
		pos, tok, _ := s.Scan()
		if tok == token.EOF {
			break
		}

		p := fset.Position(pos)
		line := from + p.Line - 1

		switch tok {
		case token.LPAREN, token.LBRACK, token.LBRACE:
			depth++

		case token.RPAREN, token.RBRACK, token.RBRACE:
			if depth > 0 {
				depth--
			}

		case token.FUNC, token.TYPE:
			if depth == 0 && start < 0 && p.Column == 1 && prevTok == token.SEMICOLON {
				start = line
			}

		case token.SEMICOLON:
			if depth == 0 && start >= 0 {
				regions = append(regions, region{start: start, end: line + 1})
				start = -1
			}
		}

		prevTok = tok
	}

	if start >= 0 {
		regions = append(regions, region{start: start, end: len(lines)})
	}

	return regions
}

func writeRegion(sb *strings.Builder, name string, lines []string, r region) {
	sb.WriteString(lineDirective(name, r.start+1))
	sb.WriteString("\n")
	sb.WriteString(strings.Join(lines[r.start:r.end], "\n"))
	sb.WriteString("\n")
}

func lineDirective(name string, line int) string {
	return fmt.Sprintf("//line %s:%d:1", name, line)
}
