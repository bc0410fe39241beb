package lockfile

import (
	"maps"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/lockgraph/pkg/bundle"
	lgerrors "github.com/matzehuels/lockgraph/pkg/errors"
)

// PoetryLock parses poetry.lock files. It provides a full transitive closure
// of the dependency graph.
type PoetryLock struct{}

func (p *PoetryLock) Type() string              { return "poetry.lock" }
func (p *PoetryLock) IncludesTransitive() bool  { return true }
func (p *PoetryLock) Supports(name string) bool { return name == "poetry.lock" }

func (p *PoetryLock) Parse(path string, opts Options) (*bundle.Bundle, error) {
	opts = opts.WithDefaults()
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var lock poetryFile
	if err := toml.Unmarshal(data, &lock); err != nil {
		return nil, lgerrors.Wrap(lgerrors.ErrCodeInvalidFormat, err, "decode %s", path)
	}

	entries := make([]lockEntry, 0, len(lock.Packages))
	for _, pkg := range lock.Packages {
		entries = append(entries, lockEntry{
			name:    pkg.Name,
			version: pkg.Version,
			deps:    poetryDeps(pkg.Dependencies),
			groups:  poetryGroups(pkg),
		})
	}
	opts.Logger("poetry.lock: %d packages", len(entries))
	return buildBundle(entries, opts), nil
}

type poetryFile struct {
	Packages []poetryPackage `toml:"package"`
}

type poetryPackage struct {
	Name         string         `toml:"name"`
	Version      string         `toml:"version"`
	Category     string         `toml:"category"`
	Groups       []string       `toml:"groups"`
	Dependencies map[string]any `toml:"dependencies"`
}

// poetryDeps returns the dependency table keys in sorted order, since TOML
// tables carry no order of their own.
func poetryDeps(table map[string]any) []depRef {
	names := slices.Sorted(maps.Keys(table))
	out := make([]depRef, len(names))
	for i, n := range names {
		out[i] = depRef{name: n}
	}
	return out
}

// poetryGroups reads the opt-in groups of a package. Poetry 1.x records a
// single category, Poetry 2 a list of groups.
func poetryGroups(pkg poetryPackage) []string {
	var out []string
	for _, g := range append([]string{pkg.Category}, pkg.Groups...) {
		if !isDefaultGroup(g) {
			out = append(out, g)
		}
	}
	return out
}
