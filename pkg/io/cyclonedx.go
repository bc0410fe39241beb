package io

import (
	"bytes"
	"io"

	"github.com/google/uuid"

	"github.com/matzehuels/lockgraph/pkg/bundle"
	"github.com/matzehuels/lockgraph/pkg/depgraph"
)

const (
	cdxSpecVersion = "1.5"
	cdxGroupProp   = "lockgraph:group"
)

type cdxBOM struct {
	BOMFormat    string          `json:"bomFormat"`
	SpecVersion  string          `json:"specVersion"`
	SerialNumber string          `json:"serialNumber"`
	Version      int             `json:"version"`
	Metadata     *cdxMetadata    `json:"metadata,omitempty"`
	Components   []cdxComponent  `json:"components"`
	Dependencies []cdxDependency `json:"dependencies"`
}

type cdxMetadata struct {
	Component *cdxComponent `json:"component,omitempty"`
}

type cdxComponent struct {
	Type       string        `json:"type"`
	BOMRef     string        `json:"bom-ref"`
	Name       string        `json:"name"`
	Version    string        `json:"version,omitempty"`
	PURL       string        `json:"purl,omitempty"`
	Properties []cdxProperty `json:"properties,omitempty"`
}

type cdxProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type cdxDependency struct {
	Ref       string   `json:"ref"`
	DependsOn []string `json:"dependsOn"`
}

// SerialNumber returns the CycloneDX serial number for b: a name-based UUID
// derived from the canonical JSON of the bundle, so unchanged input always
// yields the same serial.
func SerialNumber(b *bundle.Bundle) (string, error) {
	var buf bytes.Buffer
	if err := WriteJSON(b, &buf); err != nil {
		return "", err
	}
	return "urn:uuid:" + uuid.NewSHA1(uuid.NameSpaceURL, buf.Bytes()).String(), nil
}

// WriteCycloneDX writes the indexed bundle as a CycloneDX JSON document.
//
// Components keep bundle order and their identifiers become bom-refs. Group
// membership is carried as "lockgraph:group" properties. When the bundle has
// a parent component it becomes metadata.component and depends on every root.
func WriteCycloneDX(idx *depgraph.Index, w io.Writer) error {
	b := idx.Bundle()
	serial, err := SerialNumber(b)
	if err != nil {
		return err
	}

	bom := cdxBOM{
		BOMFormat:    "CycloneDX",
		SpecVersion:  cdxSpecVersion,
		SerialNumber: serial,
		Version:      1,
		Components:   make([]cdxComponent, 0, idx.Len()),
		Dependencies: make([]cdxDependency, 0, idx.Len()+1),
	}

	if p, ok := b.ParentComponent(); ok {
		ptype := p.Type
		if ptype == "" {
			ptype = "application"
		}
		ref := p.ID
		if ref == "" {
			ref = p.PURL
		}
		bom.Metadata = &cdxMetadata{Component: &cdxComponent{
			Type: ptype, BOMRef: ref, Name: p.Name, Version: p.Version, PURL: p.PURL,
		}}
		if _, shared := idx.Component(ref); ref != "" && !shared {
			bom.Dependencies = append(bom.Dependencies, cdxDependency{Ref: ref, DependsOn: idx.Roots()})
		}
	}

	for _, c := range idx.Components() {
		cc := cdxComponent{
			Type:    "library",
			BOMRef:  c.ID,
			Name:    c.Name,
			Version: c.Version,
			PURL:    c.PURL,
		}
		if c.IsProject() {
			cc.Type = "application"
		}
		for _, g := range b.GroupsOf(c.Name) {
			cc.Properties = append(cc.Properties, cdxProperty{Name: cdxGroupProp, Value: g})
		}
		bom.Components = append(bom.Components, cc)

		deps, err := idx.LookupEdgeSet(c.ID)
		if err != nil {
			return err
		}
		bom.Dependencies = append(bom.Dependencies, cdxDependency{Ref: c.ID, DependsOn: deps})
	}

	return WriteJSON(bom, w)
}
