package lockfile

import (
	"slices"

	"github.com/matzehuels/lockgraph/pkg/bundle"
)

// Merge combines a lock bundle with a manifest bundle.
//
// Components and edges come from lock. Parent, direct dependencies, workspace
// paths and mode flags come from manifest. Group membership is the union of
// both. Roots become the lock components whose names the manifest declares;
// when none match, the lock's own roots are kept. Neither input is modified.
func Merge(lock, manifest *bundle.Bundle) *bundle.Bundle {
	out := &bundle.Bundle{
		Components:     slices.Clone(lock.Components),
		Dependencies:   slices.Clone(lock.Dependencies),
		Parent:         manifest.Parent,
		DirectDeps:     slices.Clone(manifest.DirectDeps),
		WorkspacePaths: slices.Clone(manifest.WorkspacePaths),
		Modes:          manifest.Modes,
	}
	for _, src := range []*bundle.Bundle{manifest, lock} {
		for name, groups := range src.Groups {
			for _, g := range groups {
				out.AddGroup(name, g)
			}
		}
	}

	declared := make(map[string]bool, len(manifest.DirectDeps)+len(manifest.Groups))
	for _, name := range manifest.DirectDeps {
		declared[normalize(name)] = true
	}
	for name := range manifest.Groups {
		declared[normalize(name)] = true
	}
	for _, c := range lock.Components {
		if declared[normalize(c.Name)] {
			out.Roots = append(out.Roots, c.ID)
		}
	}
	if len(out.Roots) == 0 {
		out.Roots = slices.Clone(lock.Roots)
	}
	return out
}
