// Package pathz provides a generic, allocation-conscious A* search engine
// for walkable grids and graphs.
//
// The engine is built around three ideas:
//
//   - Capability constraints: a node type is searchable when it satisfies
//     both PathNode (costs, parent link, walkability, heuristic) and
//     VersionedNode (epoch markers). GridNode is the reference
//     implementation for rectangular grids; any type meeting the Node
//     constraint works.
//
//   - Epoch versioning: a Session mints a fresh epoch per search, and a
//     node's fields count as initialized only when its Version matches the
//     current epoch. Consecutive searches over the same nodes therefore
//     need no O(graph) reset.
//
//   - Lazy-deletion heap: the open set is a plain binary min-heap with no
//     decrease-key. Cost improvements push duplicates; stale entries are
//     recognized at pop time by the node's ClosedVersion and skipped.
//
// # Basic usage
//
//	session := pathz.New[*pathz.GridNode]()
//	result, err := session.FindPath(grid, start, goal)
//	if err != nil {
//	    // errors.Is(err, pathz.ErrNoPath) etc.
//	}
//	for _, node := range result.Path {
//	    ...
//	}
//
// # Thread safety
//
// IMPORTANT: a Session is not safe for concurrent use, and at most one
// search may be in flight per node population at a time. Use Parallel with
// disjoint grids for concurrent queries.
package pathz
