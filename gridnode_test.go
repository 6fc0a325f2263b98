package pathz

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestGridNodeFCost(t *testing.T) {
	n := NewGridNode(0, 0, true)
	n.SetGCost(3)
	n.SetHCost(4)
	assert.Equal(t, 7.0, n.FCost())

	// Derived, never cached: changing an input moves FCost immediately.
	n.SetGCost(5)
	assert.Equal(t, 9.0, n.FCost())
}

func TestGridNodeDistanceTo(t *testing.T) {
	a := NewGridNode(1, 2, true)
	b := NewGridNode(4, 6, true)
	assert.Equal(t, 7.0, a.DistanceTo(b))
	assert.Equal(t, 7.0, b.DistanceTo(a))
	assert.Equal(t, 0.0, a.DistanceTo(a))
}

func TestGridNodeMovementCost(t *testing.T) {
	a := NewGridNode(0, 0, true)
	swamp := NewGridNode(1, 0, true)
	swamp.SetWeight(3)
	assert.Equal(t, 3.0, a.MovementCostTo(swamp))
	// Cost depends on the destination's terrain, not the source's.
	assert.Equal(t, 1.0, swamp.MovementCostTo(a))
}

func TestGridNodeReset(t *testing.T) {
	n := NewGridNode(2, 3, true)
	n.SetGCost(10)
	n.SetHCost(5)
	n.SetParent(NewGridNode(1, 3, true))
	n.SetVersion(7)
	n.SetClosedVersion(7)

	n.Reset()

	assert.Equal(t, 0.0, n.GCost())
	assert.Equal(t, 0.0, n.HCost())
	assert.Zero(t, n.Parent())
	assert.Equal(t, uint64(0), n.Version())
	assert.Equal(t, uint64(0), n.ClosedVersion())
	// Identity and terrain survive a reset.
	assert.Equal(t, 2, n.X)
	assert.Equal(t, 3, n.Y)
	assert.True(t, n.IsWalkable())
}

func TestGridNodeWalkable(t *testing.T) {
	n := NewGridNode(0, 0, true)
	assert.True(t, n.IsWalkable())
	n.SetWalkable(false)
	assert.False(t, n.IsWalkable())
}
