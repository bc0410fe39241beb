package depgraph

import (
	"slices"
	"strings"

	"github.com/matzehuels/lockgraph/pkg/bundle"
	lgerrors "github.com/matzehuels/lockgraph/pkg/errors"
)

// Index is a validated, read-only view over a bundle.
//
// The zero value is not usable - use New.
type Index struct {
	b          *bundle.Bundle
	byID       map[string]*bundle.Component
	byName     map[string][]*bundle.Component // lower-cased name -> components in bundle order
	edges      map[string][]string
	dependents map[string][]string
	roots      map[string]bool
	rootOrder  []string
}

// New indexes b. A nil bundle yields an empty index.
//
// New fails with a MALFORMED_GRAPH error when a component has an empty or
// duplicate identifier, or when an edge set or the root list references an
// identifier absent from the component table. Edge sets sharing a ref are
// merged in order with repeated targets removed.
func New(b *bundle.Bundle) (*Index, error) {
	if b == nil {
		b = &bundle.Bundle{}
	}
	x := &Index{
		b:          b,
		byID:       make(map[string]*bundle.Component, len(b.Components)),
		byName:     make(map[string][]*bundle.Component, len(b.Components)),
		edges:      make(map[string][]string, len(b.Dependencies)),
		dependents: make(map[string][]string),
		roots:      make(map[string]bool, len(b.Roots)),
	}

	for i := range b.Components {
		c := &b.Components[i]
		if c.ID == "" {
			return nil, lgerrors.New(lgerrors.ErrCodeMalformedGraph, "component %q has an empty identifier", c.Name)
		}
		if _, dup := x.byID[c.ID]; dup {
			return nil, lgerrors.New(lgerrors.ErrCodeMalformedGraph, "duplicate identifier %q", c.ID)
		}
		x.byID[c.ID] = c
		key := nameKey(c.Name)
		x.byName[key] = append(x.byName[key], c)
	}

	for _, set := range b.Dependencies {
		if _, ok := x.byID[set.Ref]; !ok {
			return nil, lgerrors.MalformedGraph(set.Ref, "edge set")
		}
		for _, to := range set.DependsOn {
			if _, ok := x.byID[to]; !ok {
				return nil, lgerrors.MalformedGraph(to, "dependency of "+set.Ref)
			}
			if slices.Contains(x.edges[set.Ref], to) {
				continue
			}
			x.edges[set.Ref] = append(x.edges[set.Ref], to)
			x.dependents[to] = append(x.dependents[to], set.Ref)
		}
	}

	for _, id := range b.Roots {
		if _, ok := x.byID[id]; !ok {
			return nil, lgerrors.MalformedGraph(id, "root list")
		}
		if x.roots[id] {
			continue
		}
		x.roots[id] = true
		x.rootOrder = append(x.rootOrder, id)
	}

	return x, nil
}

// Bundle returns the bundle the index was built from.
func (x *Index) Bundle() *bundle.Bundle { return x.b }

// Len returns the number of components.
func (x *Index) Len() int { return len(x.byID) }

// Component returns the component with the given identifier and true, or the
// zero value and false if it is unknown.
func (x *Index) Component(id string) (bundle.Component, bool) {
	c, ok := x.byID[id]
	if !ok {
		return bundle.Component{}, false
	}
	return *c, true
}

// Components returns all components in bundle order.
func (x *Index) Components() []bundle.Component { return slices.Clone(x.b.Components) }

// Roots returns the root identifiers in root-list order with repeats removed.
func (x *Index) Roots() []string { return slices.Clone(x.rootOrder) }

// IsRoot reports whether id is in the root set.
func (x *Index) IsRoot(id string) bool { return x.roots[id] }

// Matches returns every component whose name equals name case-insensitively,
// in bundle order. Returns nil when nothing matches.
func (x *Index) Matches(name string) []bundle.Component {
	hits := x.byName[nameKey(name)]
	if len(hits) == 0 {
		return nil
	}
	out := make([]bundle.Component, len(hits))
	for i, c := range hits {
		out[i] = *c
	}
	return out
}

func nameKey(name string) string { return strings.ToLower(name) }
