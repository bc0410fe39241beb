package lockfile

import (
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"

	lgerrors "github.com/matzehuels/lockgraph/pkg/errors"
)

// Workspace is the [tool.uv.workspace] table of a manifest.
type Workspace struct {
	Dir     string   // directory holding the manifest
	Members []string // member globs, relative to Dir
	Exclude []string // exclusion globs, relative to Dir
}

// ReadWorkspace reads the workspace table of the pyproject.toml at path.
// A manifest without a workspace yields an empty Workspace.
func ReadWorkspace(path string) (Workspace, error) {
	data, err := readFile(path)
	if err != nil {
		return Workspace{}, err
	}
	var doc pyprojectDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return Workspace{}, lgerrors.Wrap(lgerrors.ErrCodeInvalidManifest, err, "decode %s", path)
	}
	return Workspace{
		Dir:     filepath.Dir(path),
		Members: doc.Tool.UV.Workspace.Members,
		Exclude: doc.Tool.UV.Workspace.Exclude,
	}, nil
}

// ExpandWorkspace resolves the member globs against the filesystem and
// returns the member manifests they match, sorted and without duplicates.
// A member directory counts only if it contains a pyproject.toml; excluded
// directories are dropped.
func ExpandWorkspace(ws Workspace) ([]string, error) {
	for _, pattern := range slices.Concat(ws.Members, ws.Exclude) {
		if err := lgerrors.ValidateWorkspacePattern(pattern); err != nil {
			return nil, err
		}
	}

	var out []string
	for _, pattern := range ws.Members {
		matches, err := doublestar.FilepathGlob(filepath.Join(ws.Dir, filepath.FromSlash(pattern), pyprojectFile))
		if err != nil {
			return nil, lgerrors.Wrap(lgerrors.ErrCodeInvalidManifest, err, "workspace pattern %q", pattern)
		}
		for _, m := range matches {
			if !excluded(ws, filepath.Dir(m)) {
				out = append(out, m)
			}
		}
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

func excluded(ws Workspace, dir string) bool {
	rel, err := filepath.Rel(ws.Dir, dir)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range ws.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
