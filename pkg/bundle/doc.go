// Package bundle defines the normalized dependency bundle produced by the
// lock and manifest parsers and consumed by the graph core.
//
// # Overview
//
// A [Bundle] is the single value passed between pipeline stages:
//
//	lock/manifest text -> lockfile.Parser -> Bundle -> depgraph.Index -> query/summary -> io
//
// It holds:
//
//   - Components: one entry per package occurrence, keyed by a stable identifier
//   - Dependencies: one [EdgeSet] per identifier listing its direct dependencies
//   - Roots: identifiers of directly declared components
//   - Parent: the project's own identity (optional)
//   - Groups: dependency name to group membership (dev, test, extras...)
//   - WorkspacePaths: declarative member globs of a multi-package workspace
//   - Modes: which manifest dialects were detected
//
// # Optional Fields
//
// Every field may be empty. A nil slice or map reads as empty and a nil Parent
// means no manifest was supplied, which is a valid state. Use
// [Bundle.ParentComponent] and [Bundle.GroupsOf] instead of touching the
// fields directly when the absent case matters.
//
// # Immutability
//
// Bundles are produced once per run and treated as read-only afterwards. The
// graph core indexes them and never writes back.
package bundle
