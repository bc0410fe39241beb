package depgraph

import (
	"slices"

	lgerrors "github.com/matzehuels/lockgraph/pkg/errors"
)

// Node is one component and its direct dependencies.
type Node struct {
	Ref       string   `json:"ref"`
	DependsOn []string `json:"dependsOn"`
}

// Subgraph is the one-hop extraction rooted at a single identifier.
type Subgraph struct {
	Root string `json:"root"`
	Node Node   `json:"node"`
}

// ResolveByName returns the identifier of the component named name, matched
// case-insensitively.
//
// When several components share the name, the first one in the root set wins;
// if none of them is a root, the first in bundle order is returned. Fails with
// NOT_FOUND naming the queried value when nothing matches.
func (x *Index) ResolveByName(name string) (string, error) {
	hits := x.Matches(name)
	if len(hits) == 0 {
		return "", lgerrors.NotFound("name", name)
	}
	for _, c := range hits {
		if x.roots[c.ID] {
			return c.ID, nil
		}
	}
	return hits[0].ID, nil
}

// LookupEdgeSet returns the direct dependencies of id. The result is never
// nil for a known identifier. Fails with NOT_FOUND when id is unknown.
func (x *Index) LookupEdgeSet(id string) ([]string, error) {
	if _, ok := x.byID[id]; !ok {
		return nil, lgerrors.NotFound("identifier", id)
	}
	out := slices.Clone(x.edges[id])
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// Dependents returns the identifiers that directly depend on id, in the order
// their edge sets appear in the bundle. Fails with NOT_FOUND when id is
// unknown.
func (x *Index) Dependents(id string) ([]string, error) {
	if _, ok := x.byID[id]; !ok {
		return nil, lgerrors.NotFound("identifier", id)
	}
	out := slices.Clone(x.dependents[id])
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// ExtractSubgraph returns id with its direct edges. It does not compute a
// transitive closure.
func (x *Index) ExtractSubgraph(id string) (Subgraph, error) {
	deps, err := x.LookupEdgeSet(id)
	if err != nil {
		return Subgraph{}, err
	}
	return Subgraph{Root: id, Node: Node{Ref: id, DependsOn: deps}}, nil
}
