// Package lockfile parses Python lock files and project manifests into a
// [bundle.Bundle].
//
// # Supported Files
//
//   - poetry.lock: full transitive closure, dependency tables keyed by name
//   - pdm.lock: full transitive closure, PEP 508 dependency strings
//   - uv.lock, uv-workspace.lock: full transitive closure with workspace
//     member packages (editable or virtual sources)
//   - pyproject.toml: project identity, direct and grouped dependencies,
//     workspace member globs and tool dialect flags
//   - *.json: a bundle previously exported by lockgraph
//
// # Identifiers
//
// Components are keyed by package URL: pkg:pypi/<name>@<version>, with the
// name normalized per PEP 503 (lowercase, runs of "-", "_" and "." collapsed
// to "-"). A second component that would get the same identifier receives a
// "#<n>" suffix. Components declared in a manifest without a lock have no
// version and are keyed pkg:pypi/<name>.
//
// # Roots
//
// Without a manifest, roots are the lock entries nothing depends on, in lock
// order. With a manifest (see [Load] and [Merge]), roots are the lock entries
// whose names the manifest declares directly or in a group; if none of them
// match, the no-incoming-edge rule applies.
//
// # Unresolvable Dependencies
//
// A lock entry may name a dependency that is not itself locked (platform
// markers exclude it). Such edges are skipped and reported through
// Options.Logger; every edge the parser does emit points at a component in
// the bundle.
//
// [bundle.Bundle]: github.com/matzehuels/lockgraph/pkg/bundle.Bundle
package lockfile
