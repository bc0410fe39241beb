// Package summary computes aggregate counts over a dependency bundle for
// human-facing reports.
//
// [Build] is a pure function: it reads the bundle, never writes to it, and
// returns the same value for the same input. Parent identity fields are
// pointers so an absent manifest serializes as explicit JSON nulls.
package summary

import "github.com/matzehuels/lockgraph/pkg/bundle"

// Summary holds the aggregate view of one bundle.
type Summary struct {
	Components     int `json:"components"`
	Roots          int `json:"roots"`
	Dependencies   int `json:"dependencies"` // edge set entries
	Edges          int `json:"edges"`        // total direct edges across all edge sets
	DirectDeps     int `json:"directDeps"`
	Groups         int `json:"groups"` // group index entries
	WorkspacePaths int `json:"workspacePaths"`

	PoetryMode bool `json:"poetryMode"`
	UVMode     bool `json:"uvMode"`
	HatchMode  bool `json:"hatchMode"`

	ParentName    *string `json:"parentName"`
	ParentVersion *string `json:"parentVersion"`
	ParentID      *string `json:"parentId"`
	ParentPURL    *string `json:"parentPurl"`
	ParentType    *string `json:"parentType"`
}

// Build summarizes b. A nil bundle yields all-zero counts and null parent
// fields.
func Build(b *bundle.Bundle) Summary {
	if b == nil {
		return Summary{}
	}
	s := Summary{
		Components:     len(b.Components),
		Roots:          countDistinct(b.Roots),
		Dependencies:   len(b.Dependencies),
		Edges:          b.EdgeCount(),
		DirectDeps:     len(b.DirectDeps),
		Groups:         len(b.Groups),
		WorkspacePaths: len(b.WorkspacePaths),
		PoetryMode:     b.Modes.Poetry,
		UVMode:         b.Modes.UV,
		HatchMode:      b.Modes.Hatch,
	}
	if p, ok := b.ParentComponent(); ok {
		s.ParentName = strPtr(p.Name)
		s.ParentVersion = strPtr(p.Version)
		s.ParentID = strPtr(p.ID)
		s.ParentPURL = strPtr(p.PURL)
		s.ParentType = strPtr(p.Type)
	}
	return s
}

func strPtr(s string) *string { return &s }

// countDistinct counts ids once each, matching the root set the graph index
// builds from a list that may repeat entries.
func countDistinct(ids []string) int {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	return len(seen)
}
