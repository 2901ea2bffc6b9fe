package analyze

import (
	"sort"

	"sample-typer/internal/common"
	"sample-typer/jsii"
)

// TypeID uniquely identifies a member by its package path and member path.
type TypeID struct {
	PkgPath string // e.g., "sample-typer/examples/shop"
	Name    string // e.g., "Order.Items"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// MemberKind represents the kind of an API member.
type MemberKind int

const (
	MemberUnknown MemberKind = iota
	MemberField              // exported struct field
	MemberParam              // function or method parameter
	MemberResult             // function or method result
	MemberVar                // package-level variable
	MemberConst              // package-level constant
)

// String returns a human-readable representation of the MemberKind.
func (k MemberKind) String() string {
	switch k {
	case MemberField:
		return "field"
	case MemberParam:
		return "param"
	case MemberResult:
		return "result"
	case MemberVar:
		return "var"
	case MemberConst:
		return "const"
	default:
		return common.UnknownStr
	}
}

// MarshalText encodes the kind by name.
func (k MemberKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Member describes one exported API member and its classified type.
type Member struct {
	ID     TypeID     `json:"-" yaml:"-"`
	Path   string     `json:"path" yaml:"path"`
	Kind   MemberKind `json:"kind" yaml:"kind"`
	GoType string     `json:"goType" yaml:"goType"`
	Type   jsii.Type  `json:"type" yaml:"type"`
}

// Catalog holds the members of all loaded packages.
type Catalog struct {
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewCatalog creates a new empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		Packages: make(map[string]*PackageInfo),
	}
}

// Lookup returns the member for a given TypeID, or false if not found.
func (c *Catalog) Lookup(id TypeID) (Member, bool) {
	pkg, ok := c.Packages[id.PkgPath]
	if !ok {
		return Member{}, false
	}

	for _, m := range pkg.Members {
		if m.Path == id.Name {
			return m, true
		}
	}

	return Member{}, false
}

// PackagePaths returns the loaded package paths in sorted order.
func (c *Catalog) PackagePaths() []string {
	paths := make([]string, 0, len(c.Packages))
	for path := range c.Packages {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	return paths
}

// Members returns every member of every package, packages in sorted order.
func (c *Catalog) Members() []Member {
	var all []Member
	for _, path := range c.PackagePaths() {
		all = append(all, c.Packages[path].Members...)
	}

	return all
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path    string   `json:"path" yaml:"path"`
	Name    string   `json:"name" yaml:"name"`
	Members []Member `json:"members" yaml:"members"`
}
