// Package pkg provides the core libraries for lockgraph.
//
// # Overview
//
// Lockgraph turns Python lock files and manifests into one normalized
// dependency graph and answers questions about it. The pkg directory is
// organized by stage:
//
//  1. [lockfile] - Parsing (poetry.lock, pdm.lock, uv.lock, pyproject.toml)
//  2. [bundle] - The parsed data model
//  3. [depgraph] - Indexing and one-hop queries
//  4. [summary] - Aggregate counts
//  5. [io] - JSON, text, DOT/SVG and CycloneDX output
//
// # Architecture
//
// Data flows one way:
//
//	lock file + pyproject.toml
//	         ↓
//	    [lockfile] package (parse into a bundle)
//	         ↓
//	    [depgraph] package (validate and index)
//	         ↓
//	    [depgraph] queries / [summary] package
//	         ↓
//	    [io] package (JSON/text/DOT/SVG/CycloneDX)
//
// # Quick Start
//
//	b, err := lockfile.Load("poetry.lock", "pyproject.toml", lockfile.Options{})
//	if err != nil {
//	    return err
//	}
//	idx, err := depgraph.New(b)
//	if err != nil {
//	    return err // MALFORMED_GRAPH
//	}
//	id, err := idx.ResolveByName("requests")
//	if err != nil {
//	    return err // NOT_FOUND
//	}
//	sub, _ := idx.ExtractSubgraph(id)
//	return io.WriteJSON(sub, os.Stdout)
//
// [lockfile]: github.com/matzehuels/lockgraph/pkg/lockfile
// [bundle]: github.com/matzehuels/lockgraph/pkg/bundle
// [depgraph]: github.com/matzehuels/lockgraph/pkg/depgraph
// [summary]: github.com/matzehuels/lockgraph/pkg/summary
// [io]: github.com/matzehuels/lockgraph/pkg/io
package pkg
