package lockfile

import (
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/lockgraph/pkg/bundle"
	lgerrors "github.com/matzehuels/lockgraph/pkg/errors"
)

// PDMLock parses pdm.lock files. Dependencies are PEP 508 requirement
// strings; only the distribution name is used.
type PDMLock struct{}

func (p *PDMLock) Type() string              { return "pdm.lock" }
func (p *PDMLock) IncludesTransitive() bool  { return true }
func (p *PDMLock) Supports(name string) bool { return name == "pdm.lock" }

func (p *PDMLock) Parse(path string, opts Options) (*bundle.Bundle, error) {
	opts = opts.WithDefaults()
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var lock pdmFile
	if err := toml.Unmarshal(data, &lock); err != nil {
		return nil, lgerrors.Wrap(lgerrors.ErrCodeInvalidFormat, err, "decode %s", path)
	}

	// PDM writes one extra entry per requested extra, e.g. requests[socks].
	// Those fold into the base entry so every package appears once.
	var entries []lockEntry
	seen := make(map[string]int)
	for _, pkg := range lock.Packages {
		key := normalize(pkg.Name) + "@" + pkg.Version
		i, ok := seen[key]
		if !ok {
			i = len(entries)
			seen[key] = i
			entries = append(entries, lockEntry{name: pkg.Name, version: pkg.Version})
		} else if len(pkg.Extras) > 0 {
			opts.Logger("pdm.lock: merging %s%v into %s", pkg.Name, pkg.Extras, key)
		}
		e := &entries[i]
		for _, req := range pkg.Dependencies {
			name := parseRequirementName(req)
			if name == "" {
				opts.Logger("pdm.lock: ignoring unparsable requirement %q of %s", req, pkg.Name)
				continue
			}
			// requests[socks] lists requests itself; that is the base entry.
			if normalize(name) == normalize(pkg.Name) {
				continue
			}
			if !slices.ContainsFunc(e.deps, func(d depRef) bool { return normalize(d.name) == normalize(name) }) {
				e.deps = append(e.deps, depRef{name: name})
			}
		}
		for _, g := range pkg.Groups {
			if !isDefaultGroup(g) && !slices.Contains(e.groups, g) {
				e.groups = append(e.groups, g)
			}
		}
	}
	opts.Logger("pdm.lock: %d packages", len(entries))
	return buildBundle(entries, opts), nil
}

type pdmFile struct {
	Packages []pdmPackage `toml:"package"`
}

type pdmPackage struct {
	Name         string   `toml:"name"`
	Version      string   `toml:"version"`
	Extras       []string `toml:"extras"`
	Groups       []string `toml:"groups"`
	Dependencies []string `toml:"dependencies"`
}
