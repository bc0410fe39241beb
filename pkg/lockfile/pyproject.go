package lockfile

import (
	"maps"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/lockgraph/pkg/bundle"
	lgerrors "github.com/matzehuels/lockgraph/pkg/errors"
)

const pyprojectFile = "pyproject.toml"

// Pyproject parses pyproject.toml manifests. It only sees declared
// dependencies, never the transitive closure.
//
// The resulting bundle carries the parent identity, direct dependency names,
// group membership, workspace member globs and the tool dialect flags. Each
// declared name also becomes a versionless component with no edges, and all
// of them are roots.
type Pyproject struct{}

func (p *Pyproject) Type() string              { return pyprojectFile }
func (p *Pyproject) IncludesTransitive() bool  { return false }
func (p *Pyproject) Supports(name string) bool { return name == pyprojectFile }

func (p *Pyproject) Parse(path string, opts Options) (*bundle.Bundle, error) {
	opts = opts.WithDefaults()
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var doc pyprojectDoc
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, lgerrors.Wrap(lgerrors.ErrCodeInvalidManifest, err, "decode %s", path)
	}

	b := &bundle.Bundle{
		Modes: bundle.ModeFlags{
			Poetry: md.IsDefined("tool", "poetry"),
			UV:     md.IsDefined("tool", "uv"),
			Hatch:  md.IsDefined("tool", "hatch"),
		},
		WorkspacePaths: doc.Tool.UV.Workspace.Members,
	}
	b.Parent = doc.parent()

	d := declarations{bundle: b, spelled: map[string]string{}}
	for _, req := range doc.Project.Dependencies {
		d.direct(parseRequirementName(req), req, opts)
	}
	for _, name := range slices.Sorted(maps.Keys(doc.Tool.Poetry.Dependencies)) {
		if name != "python" {
			d.direct(name, name, opts)
		}
	}

	for _, extra := range slices.Sorted(maps.Keys(doc.Project.OptionalDependencies)) {
		for _, req := range doc.Project.OptionalDependencies[extra] {
			d.group(parseRequirementName(req), req, extra, opts)
		}
	}
	for _, group := range slices.Sorted(maps.Keys(doc.DependencyGroups)) {
		for _, item := range doc.DependencyGroups[group] {
			req, ok := item.(string)
			if !ok {
				opts.Logger("%s: skipping include in dependency group %s", pyprojectFile, group)
				continue
			}
			d.group(parseRequirementName(req), req, group, opts)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(doc.Tool.Poetry.DevDependencies)) {
		d.group(name, name, "dev", opts)
	}
	for _, group := range slices.Sorted(maps.Keys(doc.Tool.Poetry.Group)) {
		deps := doc.Tool.Poetry.Group[group].Dependencies
		for _, name := range slices.Sorted(maps.Keys(deps)) {
			d.group(name, name, group, opts)
		}
	}
	for _, req := range doc.Tool.UV.DevDependencies {
		d.group(parseRequirementName(req), req, "dev", opts)
	}
	for _, env := range slices.Sorted(maps.Keys(doc.Tool.Hatch.Envs)) {
		e := doc.Tool.Hatch.Envs[env]
		for _, req := range append(slices.Clone(e.Dependencies), e.ExtraDependencies...) {
			d.group(parseRequirementName(req), req, env, opts)
		}
	}

	b.Roots = make([]string, len(b.Components))
	b.Dependencies = make([]bundle.EdgeSet, len(b.Components))
	for i, c := range b.Components {
		b.Roots[i] = c.ID
		b.Dependencies[i] = bundle.EdgeSet{Ref: c.ID, DependsOn: []string{}}
	}
	return b, nil
}

// declarations accumulates the names a manifest declares.
type declarations struct {
	bundle  *bundle.Bundle
	spelled map[string]string
}

func (d *declarations) direct(name, raw string, opts Options) {
	key, ok := d.add(name, raw, opts)
	if ok && !slices.Contains(d.bundle.DirectDeps, key) {
		d.bundle.DirectDeps = append(d.bundle.DirectDeps, key)
	}
}

func (d *declarations) group(name, raw, group string, opts Options) {
	if key, ok := d.add(name, raw, opts); ok {
		d.bundle.AddGroup(key, group)
	}
}

// add registers a component for name on first sight and returns its
// normalized key. Self references and unparsable names are skipped.
func (d *declarations) add(name, raw string, opts Options) (string, bool) {
	if err := lgerrors.ValidatePythonPackageName(name); err != nil {
		opts.Logger("%s: ignoring requirement %q: %v", pyprojectFile, raw, err)
		return "", false
	}
	key := normalize(name)
	if p := d.bundle.Parent; p != nil && normalize(p.Name) == key {
		return "", false
	}
	if _, ok := d.spelled[key]; !ok {
		d.spelled[key] = name
		id := purl(name, "")
		d.bundle.Components = append(d.bundle.Components, bundle.Component{
			Name: name, ID: id, PURL: id, Kind: bundle.KindDependency,
		})
	}
	return key, true
}

type pyprojectDoc struct {
	Project struct {
		Name                 string              `toml:"name"`
		Version              string              `toml:"version"`
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
	DependencyGroups map[string][]any `toml:"dependency-groups"`
	Tool             struct {
		Poetry struct {
			Name            string         `toml:"name"`
			Version         string         `toml:"version"`
			Dependencies    map[string]any `toml:"dependencies"`
			DevDependencies map[string]any `toml:"dev-dependencies"`
			Group           map[string]struct {
				Dependencies map[string]any `toml:"dependencies"`
			} `toml:"group"`
		} `toml:"poetry"`
		UV struct {
			DevDependencies []string `toml:"dev-dependencies"`
			Workspace       struct {
				Members []string `toml:"members"`
				Exclude []string `toml:"exclude"`
			} `toml:"workspace"`
		} `toml:"uv"`
		Hatch struct {
			Envs map[string]struct {
				Dependencies      []string `toml:"dependencies"`
				ExtraDependencies []string `toml:"extra-dependencies"`
			} `toml:"envs"`
		} `toml:"hatch"`
	} `toml:"tool"`
}

// parent returns the project identity, preferring [project] over
// [tool.poetry]. Returns nil when the manifest names no project.
func (doc *pyprojectDoc) parent() *bundle.ParentComponent {
	name, version := doc.Project.Name, doc.Project.Version
	if name == "" {
		name = doc.Tool.Poetry.Name
	}
	if version == "" {
		version = doc.Tool.Poetry.Version
	}
	if name == "" {
		return nil
	}
	id := purl(name, version)
	return &bundle.ParentComponent{
		Name:    name,
		Version: version,
		ID:      id,
		PURL:    id,
		Type:    "application",
	}
}
