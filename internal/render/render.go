// Package render renders classified types as type annotations in the
// target languages of the documentation.
//
// Unknown and error types render as nothing: the sample is emitted
// without an annotation.
package render

import (
	"sample-typer/jsii"
)

// annotation is the visitor result: ok is false when nothing is rendered.
type annotation struct {
	text string
	ok   bool
}

func some(text string) annotation { return annotation{text: text, ok: true} }

func none() annotation { return annotation{} }

// Render returns the annotation of t for target.
func Render(target Target, t jsii.Type) (string, bool) {
	var a annotation

	switch target {
	case TargetTypeScript:
		a = jsii.Accept[annotation](t, typeScript{})
	case TargetPython:
		a = jsii.Accept[annotation](t, python{})
	case TargetJava:
		a = jsii.Accept[annotation](t, java{})
	case TargetCSharp:
		a = jsii.Accept[annotation](t, csharp{})
	case TargetGo:
		a = jsii.Accept[annotation](t, golang{})
	}

	return a.text, a.ok
}

// RenderAll renders t for every target; targets without an annotation are
// left out.
func RenderAll(targets []Target, t jsii.Type) map[Target]string {
	out := make(map[Target]string, len(targets))
	for _, target := range targets {
		if text, ok := Render(target, t); ok {
			out[target] = text
		}
	}

	return out
}

// container renders a wrapped element, failing when the element cannot be
// rendered.
func container(v jsii.Visitor[annotation], elem jsii.Type, wrap func(string) string) annotation {
	inner := jsii.Accept(elem, v)
	if !inner.ok {
		return none()
	}

	return some(wrap(inner.text))
}

type typeScript struct{}

func (typeScript) VisitUnknown() annotation         { return none() }
func (typeScript) VisitError(jsii.Error) annotation { return none() }

func (v typeScript) VisitMap(m jsii.Map) annotation {
	return container(v, m.ElementType, func(s string) string { return "Record<string, " + s + ">" })
}

func (v typeScript) VisitList(l jsii.List) annotation {
	return container(v, l.ElementType, func(s string) string { return s + "[]" })
}

func (typeScript) VisitNamedType(n jsii.NamedType) annotation { return some(n.Name) }

func (typeScript) VisitBuiltIn(b jsii.BuiltIn) annotation { return some(string(b.BuiltIn)) }

type python struct{}

func (python) VisitUnknown() annotation         { return none() }
func (python) VisitError(jsii.Error) annotation { return none() }

func (v python) VisitMap(m jsii.Map) annotation {
	return container(v, m.ElementType, func(s string) string { return "typing.Mapping[str, " + s + "]" })
}

func (v python) VisitList(l jsii.List) annotation {
	return container(v, l.ElementType, func(s string) string { return "typing.List[" + s + "]" })
}

func (python) VisitNamedType(n jsii.NamedType) annotation { return some(n.Name) }

func (python) VisitBuiltIn(b jsii.BuiltIn) annotation {
	switch b.BuiltIn {
	case jsii.BuiltInAny:
		return some("typing.Any")
	case jsii.BuiltInBoolean:
		return some("bool")
	case jsii.BuiltInNumber:
		return some("jsii.Number")
	case jsii.BuiltInString:
		return some("str")
	case jsii.BuiltInVoid:
		return some("None")
	}

	return none()
}

type java struct{}

func (java) VisitUnknown() annotation         { return none() }
func (java) VisitError(jsii.Error) annotation { return none() }

func (v java) VisitMap(m jsii.Map) annotation {
	return container(v, m.ElementType, func(s string) string { return "Map<String, " + s + ">" })
}

func (v java) VisitList(l jsii.List) annotation {
	return container(v, l.ElementType, func(s string) string { return "List<" + s + ">" })
}

func (java) VisitNamedType(n jsii.NamedType) annotation { return some(n.Name) }

func (java) VisitBuiltIn(b jsii.BuiltIn) annotation {
	switch b.BuiltIn {
	case jsii.BuiltInAny:
		return some("Object")
	case jsii.BuiltInBoolean:
		return some("Boolean")
	case jsii.BuiltInNumber:
		return some("Number")
	case jsii.BuiltInString:
		return some("String")
	case jsii.BuiltInVoid:
		return some("void")
	}

	return none()
}

type csharp struct{}

func (csharp) VisitUnknown() annotation         { return none() }
func (csharp) VisitError(jsii.Error) annotation { return none() }

func (v csharp) VisitMap(m jsii.Map) annotation {
	return container(v, m.ElementType, func(s string) string { return "IDictionary<string, " + s + ">" })
}

func (v csharp) VisitList(l jsii.List) annotation {
	return container(v, l.ElementType, func(s string) string { return s + "[]" })
}

func (csharp) VisitNamedType(n jsii.NamedType) annotation { return some(n.Name) }

func (csharp) VisitBuiltIn(b jsii.BuiltIn) annotation {
	switch b.BuiltIn {
	case jsii.BuiltInAny:
		return some("object")
	case jsii.BuiltInBoolean:
		return some("bool")
	case jsii.BuiltInNumber:
		return some("double")
	case jsii.BuiltInString:
		return some("string")
	case jsii.BuiltInVoid:
		return some("void")
	}

	return none()
}

// golang renders jsii Go bindings, where every value is passed by pointer.
type golang struct{}

func (golang) VisitUnknown() annotation         { return none() }
func (golang) VisitError(jsii.Error) annotation { return none() }

func (v golang) VisitMap(m jsii.Map) annotation {
	return container(v, m.ElementType, func(s string) string { return "*map[string]" + s })
}

func (v golang) VisitList(l jsii.List) annotation {
	return container(v, l.ElementType, func(s string) string { return "*[]" + s })
}

func (golang) VisitNamedType(n jsii.NamedType) annotation { return some(n.Name) }

func (golang) VisitBuiltIn(b jsii.BuiltIn) annotation {
	switch b.BuiltIn {
	case jsii.BuiltInAny:
		return some("interface{}")
	case jsii.BuiltInBoolean:
		return some("*bool")
	case jsii.BuiltInNumber:
		return some("*float64")
	case jsii.BuiltInString:
		return some("*string")
	case jsii.BuiltInVoid:
		return none()
	}

	return none()
}
