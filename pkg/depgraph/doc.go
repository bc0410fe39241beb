// Package depgraph indexes a [bundle.Bundle] and answers queries over it.
//
// # Overview
//
// [New] validates the bundle and builds the lookup tables every query relies
// on:
//
//   - identifier -> component
//   - lower-cased name -> components, in bundle order
//   - identifier -> direct dependencies
//   - identifier -> direct dependents
//
// Indexing is linear in the number of components plus edges. A bundle whose
// edge sets or root list mention an identifier that is not in the component
// table is rejected with a MALFORMED_GRAPH error naming that identifier. Edges
// are never dropped to make a bundle fit.
//
// # Queries
//
//	idx, err := depgraph.New(b)
//	id, err := idx.ResolveByName("Django")
//	deps, err := idx.LookupEdgeSet(id)
//	sub, err := idx.ExtractSubgraph(id)
//
// Extraction is one hop: the returned [Subgraph] holds the node and its direct
// edges only. Callers that need more can compose repeated LookupEdgeSet calls.
//
// # Duplicate Names
//
// Two components may share a name (workspace members, multiple versions of
// the same package). [Index.ResolveByName] picks deterministically: the first
// match that is a root wins, otherwise the first match in bundle order.
//
// # Concurrency
//
// An Index is immutable after New returns and is safe for concurrent readers.
//
// [bundle.Bundle]: github.com/matzehuels/lockgraph/pkg/bundle.Bundle
package depgraph
