package pathz

// GridNode is the reference PathNode implementation for simple rectangular
// grids: integer coordinates fixed at construction, a walkability flag, a
// terrain weight, and the mutable search-scoped fields.
//
// Nodes are owned by the grid and outlive individual searches; the engine
// only mutates the search-scoped fields and relies on the epoch markers to
// tell fresh data from leftovers of a previous search.
type GridNode struct {
	X, Y int

	walkable bool
	weight   float64

	g, h   float64
	parent *GridNode

	version       uint64
	closedVersion uint64
}

// NewGridNode creates a node at (x, y) with terrain weight 1.
func NewGridNode(x, y int, walkable bool) *GridNode {
	return &GridNode{X: x, Y: y, walkable: walkable, weight: 1}
}

func (n *GridNode) IsWalkable() bool { return n.walkable }
func (n *GridNode) SetWalkable(w bool) { n.walkable = w }
func (n *GridNode) Weight() float64 { return n.weight }
func (n *GridNode) SetWeight(w float64) { n.weight = w }

func (n *GridNode) GCost() float64 { return n.g }
func (n *GridNode) SetGCost(g float64) { n.g = g }
func (n *GridNode) HCost() float64 { return n.h }
func (n *GridNode) SetHCost(h float64) { n.h = h }

// FCost is computed from its inputs on every call; caching it separately
// would open a consistency hazard between the three fields.
func (n *GridNode) FCost() float64 { return n.g + n.h }

func (n *GridNode) Parent() *GridNode { return n.parent }
func (n *GridNode) SetParent(p *GridNode) { n.parent = p }

func (n *GridNode) Version() uint64 { return n.version }
func (n *GridNode) SetVersion(v uint64) { n.version = v }
func (n *GridNode) ClosedVersion() uint64 { return n.closedVersion }
func (n *GridNode) SetClosedVersion(v uint64) { n.closedVersion = v }

// DistanceTo returns the Manhattan distance to other. It is admissible for
// 4-connected movement; grids that allow diagonal steps should supply a
// node type with an octile or Euclidean heuristic instead.
func (n *GridNode) DistanceTo(other *GridNode) float64 {
	dx := n.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := n.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}

// MovementCostTo returns the cost of stepping onto neighbor: the grid
// distance scaled by the destination's terrain weight.
func (n *GridNode) MovementCostTo(neighbor *GridNode) float64 {
	return n.DistanceTo(neighbor) * neighbor.weight
}

// Reset eagerly clears the search-scoped fields. Callers using a Session do
// not need this (epoch versioning makes stale fields harmless); it exists
// for code that prefers explicit clearing over lazy reset.
func (n *GridNode) Reset() {
	n.g = 0
	n.h = 0
	n.parent = nil
	n.version = 0
	n.closedVersion = 0
}
