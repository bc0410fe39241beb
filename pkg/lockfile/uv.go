package lockfile

import (
	"maps"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/lockgraph/pkg/bundle"
	lgerrors "github.com/matzehuels/lockgraph/pkg/errors"
)

// UVLock parses uv.lock and uv-workspace.lock files.
//
// Packages with an editable or virtual source, and packages listed under
// [manifest] members, are workspace projects and get [bundle.KindProject].
// Edges include optional and dev dependencies; for project packages the
// extra or dev group name is recorded as group membership of the target.
type UVLock struct{}

func (p *UVLock) Type() string             { return "uv.lock" }
func (p *UVLock) IncludesTransitive() bool { return true }
func (p *UVLock) Supports(name string) bool {
	return name == "uv.lock" || name == "uv-workspace.lock"
}

func (p *UVLock) Parse(path string, opts Options) (*bundle.Bundle, error) {
	opts = opts.WithDefaults()
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var lock uvFile
	if err := toml.Unmarshal(data, &lock); err != nil {
		return nil, lgerrors.Wrap(lgerrors.ErrCodeInvalidFormat, err, "decode %s", path)
	}

	members := make(map[string]bool, len(lock.Manifest.Members))
	for _, m := range lock.Manifest.Members {
		members[normalize(m)] = true
	}

	entries := make([]lockEntry, len(lock.Packages))
	index := make(map[string]int, len(lock.Packages))
	for i, pkg := range lock.Packages {
		kind := bundle.KindDependency
		if pkg.isProject() || members[normalize(pkg.Name)] {
			kind = bundle.KindProject
		}
		e := lockEntry{name: pkg.Name, version: pkg.Version, kind: kind}
		e.deps = appendUVDeps(e.deps, pkg.Dependencies)
		for _, extra := range slices.Sorted(maps.Keys(pkg.OptionalDependencies)) {
			e.deps = appendUVDeps(e.deps, pkg.OptionalDependencies[extra])
		}
		for _, group := range slices.Sorted(maps.Keys(pkg.DevDependencies)) {
			e.deps = appendUVDeps(e.deps, pkg.DevDependencies[group])
		}
		entries[i] = e
		if _, ok := index[normalize(pkg.Name)]; !ok {
			index[normalize(pkg.Name)] = i
		}
	}

	for _, pkg := range lock.Packages {
		if !pkg.isProject() && !members[normalize(pkg.Name)] {
			continue
		}
		for _, tables := range []map[string][]uvDep{pkg.OptionalDependencies, pkg.DevDependencies} {
			for group, deps := range tables {
				for _, d := range deps {
					if i, ok := index[normalize(d.Name)]; ok && !slices.Contains(entries[i].groups, group) {
						entries[i].groups = append(entries[i].groups, group)
					}
				}
			}
		}
	}

	opts.Logger("%s: %d packages, %d workspace members", p.Type(), len(entries), len(lock.Manifest.Members))
	return buildBundle(entries, opts), nil
}

func appendUVDeps(out []depRef, deps []uvDep) []depRef {
	for _, d := range deps {
		out = append(out, depRef{name: d.Name, version: d.Version})
	}
	return out
}

type uvFile struct {
	Manifest struct {
		Members []string `toml:"members"`
	} `toml:"manifest"`
	Packages []uvPackage `toml:"package"`
}

type uvPackage struct {
	Name                 string             `toml:"name"`
	Version              string             `toml:"version"`
	Source               map[string]any     `toml:"source"`
	Dependencies         []uvDep            `toml:"dependencies"`
	OptionalDependencies map[string][]uvDep `toml:"optional-dependencies"`
	DevDependencies      map[string][]uvDep `toml:"dev-dependencies"`
}

type uvDep struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

func (p uvPackage) isProject() bool {
	_, editable := p.Source["editable"]
	_, virtual := p.Source["virtual"]
	return editable || virtual
}
