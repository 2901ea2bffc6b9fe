package analyze

import (
	"strconv"
	"strings"
)

// MemberPath builds a readable path string for an API member.
// Examples:
//   - "Order" for a type or package-level variable
//   - "Order.Items" for a struct field
//   - "Order.Cancel(reason)" for a method parameter
//   - "NewOrder#1" for the second result of a function
type MemberPath struct {
	parts []string
}

// NewMemberPath creates a new MemberPath from a root name.
func NewMemberPath(root string) *MemberPath {
	return &MemberPath{
		parts: []string{root},
	}
}

// Field appends a field or method name to the path.
func (p *MemberPath) Field(name string) *MemberPath {
	return &MemberPath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Param appends a parameter indicator "(name)" to the last element.
func (p *MemberPath) Param(name string) *MemberPath {
	return p.suffix("(" + name + ")")
}

// Result appends a result indicator "#index" to the last element.
func (p *MemberPath) Result(index int) *MemberPath {
	return p.suffix("#" + strconv.Itoa(index))
}

func (p *MemberPath) suffix(s string) *MemberPath {
	if len(p.parts) == 0 {
		return &MemberPath{parts: []string{s}}
	}

	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] += s

	return &MemberPath{parts: newParts}
}

// String returns the full path string.
func (p *MemberPath) String() string {
	return strings.Join(p.parts, ".")
}
