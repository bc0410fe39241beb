package lockfile

import (
	"slices"

	"github.com/matzehuels/lockgraph/pkg/bundle"
)

// lockEntry is one locked package, independent of the lock dialect.
type lockEntry struct {
	name    string
	version string
	kind    bundle.Kind
	deps    []depRef
	groups  []string
}

// depRef names a dependency. Version is set only when the lock pins which
// of several same-named entries is meant.
type depRef struct {
	name    string
	version string
}

// buildBundle turns lock entries into components, edge sets and roots.
// Roots are the entries without incoming edges, in lock order.
func buildBundle(entries []lockEntry, opts Options) *bundle.Bundle {
	b := &bundle.Bundle{
		Components:   make([]bundle.Component, len(entries)),
		Dependencies: make([]bundle.EdgeSet, len(entries)),
	}

	ids := idAllocator{}
	byName := make(map[string][]int, len(entries))
	for i, e := range entries {
		p := purl(e.name, e.version)
		kind := e.kind
		if kind == "" {
			kind = bundle.KindDependency
		}
		b.Components[i] = bundle.Component{
			Name:    e.name,
			Version: e.version,
			ID:      ids.next(p),
			PURL:    p,
			Kind:    kind,
		}
		key := normalize(e.name)
		byName[key] = append(byName[key], i)
		for _, g := range e.groups {
			b.AddGroup(key, g)
		}
	}

	incoming := make([]bool, len(entries))
	for i, e := range entries {
		from := b.Components[i].ID
		targets := []string{}
		for _, d := range e.deps {
			j, ok := pick(entries, byName[normalize(d.name)], d.version)
			if !ok {
				opts.Logger("skipping dependency %s of %s: not in lock", d.name, from)
				continue
			}
			to := b.Components[j].ID
			if slices.Contains(targets, to) {
				continue
			}
			targets = append(targets, to)
			if j != i {
				incoming[j] = true
			}
		}
		b.Dependencies[i] = bundle.EdgeSet{Ref: from, DependsOn: targets}
	}

	for i, c := range b.Components {
		if !incoming[i] {
			b.Roots = append(b.Roots, c.ID)
		}
	}
	return b
}

// pick chooses among same-named candidates: an exact version match when a
// version is requested, otherwise the first candidate in lock order.
func pick(entries []lockEntry, candidates []int, version string) (int, bool) {
	if len(candidates) == 0 {
		return 0, false
	}
	if version != "" {
		for _, c := range candidates {
			if entries[c].version == version {
				return c, true
			}
		}
	}
	return candidates[0], true
}

// isDefaultGroup reports whether a lock group name means "main dependencies"
// rather than an opt-in group.
func isDefaultGroup(g string) bool {
	return g == "" || g == "main" || g == "default"
}
