package bundle

import (
	"regexp"
	"slices"
	"strings"
)

// Kind distinguishes project packages from their dependencies.
type Kind string

const (
	// KindDependency is a package pulled in by a project.
	KindDependency Kind = "dependency"
	// KindProject is a project or workspace member package recorded in a lock
	// file (uv records them with an editable or virtual source).
	KindProject Kind = "project"
)

// Component is a single package occurrence.
//
// Name keeps the spelling found in the source file; matching on it must be
// case-insensitive. Version is opaque here and may be empty for manifest-only
// components. ID is the node key used by every edge.
type Component struct {
	Name    string
	Version string
	ID      string
	PURL    string
	Kind    Kind
}

// IsProject reports whether the component is a project or workspace member
// rather than a third-party dependency. An empty Kind reads as a dependency.
func (c Component) IsProject() bool { return c.Kind == KindProject }

// EdgeSet lists the identifiers one component directly depends on, in source
// order.
type EdgeSet struct {
	Ref       string
	DependsOn []string
}

// ParentComponent is the identity of the project being inspected.
type ParentComponent struct {
	Name    string
	Version string
	ID      string
	PURL    string
	Type    string
}

// ModeFlags records which manifest dialects were detected. The flags are
// independent; a manifest can carry several tool tables at once.
type ModeFlags struct {
	Poetry bool
	UV     bool
	Hatch  bool
}

// Any reports whether at least one dialect was detected.
func (m ModeFlags) Any() bool { return m.Poetry || m.UV || m.Hatch }

// Bundle is the parsed, not yet indexed, dependency data of one project.
type Bundle struct {
	Parent         *ParentComponent
	Components     []Component
	Dependencies   []EdgeSet
	Roots          []string
	DirectDeps     []string
	Groups         map[string][]string
	WorkspacePaths []string
	Modes          ModeFlags
}

// ParentComponent returns the parent component and true, or the zero value
// and false when no manifest identity is known.
func (b *Bundle) ParentComponent() (ParentComponent, bool) {
	if b == nil || b.Parent == nil {
		return ParentComponent{}, false
	}
	return *b.Parent, true
}

// GroupsOf returns the sorted groups the named dependency belongs to.
//
// Names are compared in their PEP 503 form, so "ruamel.yaml", "Ruamel_YAML"
// and "ruamel-yaml" all find the same entry. When several keys share a
// normalized form their groups are merged. Returns nil when the name is in no
// group.
func (b *Bundle) GroupsOf(name string) []string {
	if b == nil || len(b.Groups) == 0 {
		return nil
	}
	want := NormalizeName(name)
	var out []string
	for k, groups := range b.Groups {
		if NormalizeName(k) == want {
			out = append(out, groups...)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return sortedCopy(out)
}

var separatorRuns = regexp.MustCompile(`[-_.]+`)

// NormalizeName converts a Python package name to its PEP 503 canonical
// form: lowercase, with runs of "-", "_" and "." collapsed to "-".
func NormalizeName(name string) string {
	return separatorRuns.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

// EdgeCount returns the total number of dependency edges across all edge sets.
func (b *Bundle) EdgeCount() int {
	if b == nil {
		return 0
	}
	n := 0
	for _, e := range b.Dependencies {
		n += len(e.DependsOn)
	}
	return n
}

// AddGroup records name as a member of group. Membership is a set; adding
// the same pair twice has no effect.
func (b *Bundle) AddGroup(name, group string) {
	if b.Groups == nil {
		b.Groups = make(map[string][]string)
	}
	if slices.Contains(b.Groups[name], group) {
		return
	}
	b.Groups[name] = append(b.Groups[name], group)
}

func sortedCopy(s []string) []string {
	out := slices.Clone(s)
	slices.Sort(out)
	return slices.Compact(out)
}
