package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/lockgraph/pkg/bundle"
	lgerrors "github.com/matzehuels/lockgraph/pkg/errors"
)

// ReadJSON decodes a bundle in the wire format written by [WriteJSON].
//
// Every key is optional. A null or missing parentComponent yields a bundle
// without parent. ReadJSON does not validate edges; pass the result to
// depgraph.New for that. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*bundle.Bundle, error) {
	var data bundleJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, lgerrors.Wrap(lgerrors.ErrCodeInvalidFormat, err, "decode bundle")
	}

	b := &bundle.Bundle{
		Roots:          data.RootList,
		DirectDeps:     data.DirectDepsKeys,
		WorkspacePaths: data.WorkspacePaths,
		Modes:          bundle.ModeFlags{Poetry: data.PoetryMode, UV: data.UVMode, Hatch: data.HatchMode},
	}
	if p := data.ParentComponent; p != nil {
		b.Parent = &bundle.ParentComponent{Name: p.Name, Version: p.Version, ID: p.ID, PURL: p.PURL, Type: p.Type}
	}
	for _, c := range data.PkgList {
		b.Components = append(b.Components, bundle.Component{
			Name: c.Name, Version: c.Version, ID: c.ID, PURL: c.PURL, Kind: bundle.Kind(c.Kind),
		})
	}
	for _, e := range data.DependenciesList {
		b.Dependencies = append(b.Dependencies, bundle.EdgeSet{Ref: e.Ref, DependsOn: e.DependsOn})
	}
	for name, groups := range data.GroupDepsKeys {
		for _, g := range groups {
			b.AddGroup(name, g)
		}
	}
	return b, nil
}

// ImportJSON reads a bundle from the JSON file at path.
//
// A missing file is reported as INPUT_NOT_FOUND; decoding failures as
// INVALID_FORMAT.
func ImportJSON(path string) (*bundle.Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, lgerrors.InputNotFound(path, err)
		}
		return nil, lgerrors.Wrap(lgerrors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
