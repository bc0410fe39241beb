// Package io serializes bundles, query results and summaries.
//
// # Overview
//
// Output has two independent axes:
//
//   - Shape: a full [bundle.Bundle], one [depgraph.Subgraph], or a
//     [summary.Summary]
//   - Sink: any io.Writer (usually stdout), or a named file via [ExportJSON]
//     and [ExportFile]
//
// Formats: canonical JSON, a line-oriented text report, Graphviz DOT (and SVG
// rendered from it), and CycloneDX JSON for SBOM consumers.
//
// # JSON Format
//
// A full bundle is written with these top-level keys:
//
//	{
//	  "parentComponent": {"name": "app", "version": "1.0.0", "id": "pkg:pypi/app@1.0.0", ...},
//	  "pkgList": [{"name": "Django", "version": "4.2", "id": "pkg:pypi/django@4.2", "purl": "..."}],
//	  "dependenciesList": [{"ref": "pkg:pypi/django@4.2", "dependsOn": []}],
//	  "rootList": ["pkg:pypi/django@4.2"],
//	  "directDepsKeys": ["django"],
//	  "groupDepsKeys": {"pytest": ["dev"]},
//	  "workspacePaths": [],
//	  "poetryMode": true,
//	  "uvMode": false,
//	  "hatchMode": false
//	}
//
// parentComponent is null when no manifest was supplied. Empty collections are
// written as [] or {} rather than null.
//
// # Canonical Output
//
// JSON is always indented with two spaces and terminated by a newline. Map
// keys are sorted by encoding/json and group lists are sorted, so writing the
// same value twice yields byte-identical output.
//
// # Import
//
// [ReadJSON] and [ImportJSON] read a bundle previously written by
// [WriteJSON]. They only decode; run the result through depgraph.New to
// validate edges.
//
// # Files
//
// [ExportFile] creates the file, runs the writer, and closes the handle on
// every path. A failed close is reported as an error.
//
// [bundle.Bundle]: github.com/matzehuels/lockgraph/pkg/bundle.Bundle
// [depgraph.Subgraph]: github.com/matzehuels/lockgraph/pkg/depgraph.Subgraph
// [summary.Summary]: github.com/matzehuels/lockgraph/pkg/summary.Summary
package io
