package pathz

// PathNode is the search-facing capability of a node: walkability, the
// mutable cost fields scoped to a single search, the parent back-link used
// for path reconstruction, and the two cost functions.
//
// DistanceTo is the heuristic estimate to another node. It must be
// admissible (never overestimate the true cost) for FindPath to return
// optimal paths. MovementCostTo is the actual cost of stepping onto an
// adjacent node and is the hook for terrain-weighted movement.
//
// The type parameter N is the node type itself (e.g. *GridNode), so parent
// links and cost functions are expressed against the concrete type rather
// than an erased interface.
type PathNode[N any] interface {
	IsWalkable() bool

	GCost() float64
	SetGCost(float64)
	HCost() float64
	SetHCost(float64)
	// FCost is always derived as GCost + HCost, never stored independently.
	FCost() float64

	Parent() N
	SetParent(N)

	DistanceTo(other N) float64
	MovementCostTo(neighbor N) float64
}

// VersionedNode carries the epoch markers that make lazy reset possible.
// A node's Version and ClosedVersion are meaningful only when they equal
// the epoch of the search currently touching the node; any other value
// means "uninitialized for this search", regardless of leftover data from
// a previous one. This replaces an O(graph) reset between searches with
// O(1) bookkeeping per touched node.
type VersionedNode interface {
	// Version is the last search epoch that initialized this node's
	// cost and parent fields.
	Version() uint64
	SetVersion(uint64)

	// ClosedVersion is the epoch in which this node was expanded.
	ClosedVersion() uint64
	SetClosedVersion(uint64)
}

// Node is the constraint a node type must satisfy to be searchable: both
// capability contracts plus comparability, so the engine can use reference
// identity for goal detection and "no parent" checks.
type Node[N any] interface {
	comparable
	PathNode[N]
	VersionedNode
}

// Graph enumerates the traversable neighbors of a node. It is consumed by
// the engine, never implemented by it; the caller owns node allocation,
// obstacle updates and the decision of when to re-path.
//
// Neighbor order only influences tie-breaking among equal-cost paths; no
// ordering guarantee is required.
type Graph[N any] interface {
	Neighbors(node N) []N
}
