package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/matzehuels/lockgraph/pkg/bundle"
)

type bundleJSON struct {
	ParentComponent  *parentJSON         `json:"parentComponent"`
	PkgList          []componentJSON     `json:"pkgList"`
	DependenciesList []edgeJSON          `json:"dependenciesList"`
	RootList         []string            `json:"rootList"`
	DirectDepsKeys   []string            `json:"directDepsKeys"`
	GroupDepsKeys    map[string][]string `json:"groupDepsKeys"`
	WorkspacePaths   []string            `json:"workspacePaths"`
	PoetryMode       bool                `json:"poetryMode"`
	UVMode           bool                `json:"uvMode"`
	HatchMode        bool                `json:"hatchMode"`
}

type parentJSON struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	ID      string `json:"id"`
	PURL    string `json:"purl,omitempty"`
	Type    string `json:"type,omitempty"`
}

type componentJSON struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	ID      string `json:"id"`
	PURL    string `json:"purl,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

type edgeJSON struct {
	Ref       string   `json:"ref"`
	DependsOn []string `json:"dependsOn"`
}

func toWire(b *bundle.Bundle) bundleJSON {
	if b == nil {
		b = &bundle.Bundle{}
	}
	out := bundleJSON{
		PkgList:          make([]componentJSON, len(b.Components)),
		DependenciesList: make([]edgeJSON, len(b.Dependencies)),
		RootList:         nonNil(b.Roots),
		DirectDepsKeys:   nonNil(b.DirectDeps),
		GroupDepsKeys:    make(map[string][]string, len(b.Groups)),
		WorkspacePaths:   nonNil(b.WorkspacePaths),
		PoetryMode:       b.Modes.Poetry,
		UVMode:           b.Modes.UV,
		HatchMode:        b.Modes.Hatch,
	}
	if p, ok := b.ParentComponent(); ok {
		out.ParentComponent = &parentJSON{Name: p.Name, Version: p.Version, ID: p.ID, PURL: p.PURL, Type: p.Type}
	}
	for i, c := range b.Components {
		out.PkgList[i] = componentJSON{Name: c.Name, Version: c.Version, ID: c.ID, PURL: c.PURL, Kind: string(c.Kind)}
	}
	for i, e := range b.Dependencies {
		out.DependenciesList[i] = edgeJSON{Ref: e.Ref, DependsOn: nonNil(e.DependsOn)}
	}
	for name, groups := range b.Groups {
		sorted := slices.Clone(groups)
		slices.Sort(sorted)
		out.GroupDepsKeys[name] = nonNil(slices.Compact(sorted))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}

// WriteJSON encodes v as canonical JSON and writes it to w.
//
// A *bundle.Bundle is written in the bundle wire format described in the
// package documentation; any other value is encoded as-is. Output is indented
// with two spaces and ends with a newline.
func WriteJSON(v any, w io.Writer) error {
	if b, ok := v.(*bundle.Bundle); ok {
		v = toWire(b)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes v as canonical JSON to a file at path.
// This is a convenience wrapper around [ExportFile] and [WriteJSON].
func ExportJSON(v any, path string) error {
	return ExportFile(path, func(w io.Writer) error { return WriteJSON(v, w) })
}

// ExportFile creates (or truncates) the file at path and passes it to write.
// The file is closed on every return path; a close failure is returned when
// write itself succeeded.
func ExportFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
