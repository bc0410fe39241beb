package io

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/lockgraph/pkg/depgraph"
	lgerrors "github.com/matzehuels/lockgraph/pkg/errors"
	"github.com/matzehuels/lockgraph/pkg/summary"
)

// absent is printed in place of a missing value.
const absent = "<none>"

// textWriter writes "key: value" lines. Styling follows the color profile of
// the destination, so files and pipes receive plain text.
type textWriter struct {
	w   io.Writer
	key lipgloss.Style
	dim lipgloss.Style
	err error
}

func newTextWriter(w io.Writer) *textWriter {
	r := lipgloss.NewRenderer(w)
	return &textWriter{
		w:   w,
		key: r.NewStyle().Foreground(lipgloss.Color("36")),
		dim: r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) field(key string, value any) {
	t.printf("%s %v\n", t.key.Render(key+":"), value)
}

func (t *textWriter) item(id, detail string) {
	if detail == "" {
		t.printf("  - %s\n", id)
		return
	}
	t.printf("  - %s %s\n", id, t.dim.Render("("+detail+")"))
}

// WriteSummaryText writes s as a line-oriented report.
func WriteSummaryText(s summary.Summary, w io.Writer) error {
	t := newTextWriter(w)
	t.field("components", s.Components)
	t.field("roots", s.Roots)
	t.field("dependencies", s.Dependencies)
	t.field("edges", s.Edges)
	t.field("directDeps", s.DirectDeps)
	t.field("groups", s.Groups)
	t.field("workspacePaths", s.WorkspacePaths)
	t.field("poetryMode", s.PoetryMode)
	t.field("uvMode", s.UVMode)
	t.field("hatchMode", s.HatchMode)
	t.field("parentName", orAbsent(s.ParentName))
	t.field("parentVersion", orAbsent(s.ParentVersion))
	t.field("parentId", orAbsent(s.ParentID))
	t.field("parentPurl", orAbsent(s.ParentPURL))
	t.field("parentType", orAbsent(s.ParentType))
	return t.err
}

// WriteNodeText writes one extracted node with its direct dependencies and
// direct dependents, resolving identifiers through idx for display.
func WriteNodeText(idx *depgraph.Index, sub depgraph.Subgraph, w io.Writer) error {
	c, ok := idx.Component(sub.Root)
	if !ok {
		return lgerrors.New(lgerrors.ErrCodeInternal, "subgraph root %q is not in the index", sub.Root)
	}
	dependents, err := idx.Dependents(sub.Root)
	if err != nil {
		return err
	}

	t := newTextWriter(w)
	t.field("root", sub.Root)
	t.field("name", c.Name)
	t.field("version", orAbsent(&c.Version))
	t.field("kind", orAbsent((*string)(&c.Kind)))
	t.field("isRoot", idx.IsRoot(sub.Root))
	if groups := idx.Bundle().GroupsOf(c.Name); len(groups) > 0 {
		t.field("groups", strings.Join(groups, ", "))
	}
	t.field("dependsOn", len(sub.Node.DependsOn))
	for _, id := range sub.Node.DependsOn {
		t.item(id, label(idx, id))
	}
	t.field("requiredBy", len(dependents))
	for _, id := range dependents {
		t.item(id, label(idx, id))
	}
	return t.err
}

// WriteBundleText writes every component in bundle order followed by its
// direct dependencies.
func WriteBundleText(idx *depgraph.Index, w io.Writer) error {
	t := newTextWriter(w)
	if p, ok := idx.Bundle().ParentComponent(); ok {
		t.field("parent", p.Name+" "+p.Version)
	} else {
		t.field("parent", absent)
	}
	t.field("components", idx.Len())
	t.field("roots", strings.Join(idx.Roots(), ", "))
	for _, c := range idx.Components() {
		marker := ""
		if idx.IsRoot(c.ID) {
			marker = " [root]"
		}
		t.printf("%s%s\n", t.key.Render(c.ID), marker)
		deps, err := idx.LookupEdgeSet(c.ID)
		if err != nil {
			return err
		}
		for _, d := range deps {
			t.item(d, "")
		}
	}
	return t.err
}

func label(idx *depgraph.Index, id string) string {
	c, ok := idx.Component(id)
	if !ok {
		return ""
	}
	if c.Version == "" {
		return c.Name
	}
	return c.Name + " " + c.Version
}

func orAbsent(s *string) string {
	if s == nil || *s == "" {
		return absent
	}
	return *s
}
