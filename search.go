package pathz

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sync/atomic"

	"github.com/go-logr/logr"
)

var (
	// ErrInvalidInput is returned when the grid or an endpoint is missing.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnreachable is returned when an endpoint is not walkable.
	ErrUnreachable = errors.New("unreachable")
	// ErrNoPath is returned when the open set empties before the goal.
	ErrNoPath = errors.New("no path found")
	// ErrBudgetExceeded is returned when WithMaxExpansions is set and the
	// search expands more nodes than allowed.
	ErrBudgetExceeded = errors.New("expansion budget exceeded")
)

// Result is the outcome of a single search.
type Result[N Node[N]] struct {
	// Path is the node sequence from start to goal inclusive; nil when no
	// path was found.
	Path []N
	// TotalCost is the summed movement cost along Path.
	TotalCost float64
	// Expanded is the number of nodes taken off the open set and expanded.
	Expanded int
	// Found reports whether a path was found.
	Found bool
}

// epochCounter mints search epochs. It is shared by all Sessions so that
// every search ever run in the process gets a distinct epoch: two Sessions
// with private counters would mint colliding epochs against a shared node
// population, and the second search would misread the first one's marks.
var epochCounter atomic.Uint64

// Session is the search context for one population of nodes. Each search
// mints a fresh epoch, and a node whose Version differs from that epoch is
// simply uninitialized for the search, whatever its fields still hold; that
// is what lets consecutive searches over the same nodes skip any global
// reset.
//
// IMPORTANT: at most one search may be in flight per node population at a
// time. Two overlapping searches would race on every touched node's fields.
// Callers needing concurrency must give each search its own nodes (one grid
// per worker) or serialize calls; see Parallel.
type Session[N Node[N]] struct {
	maxExpansions int
	log           logr.Logger
}

// New creates a Session for one node population.
func New[N Node[N]](opts ...Option) *Session[N] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Session[N]{
		maxExpansions: cfg.maxExpansions,
		log:           cfg.log,
	}
}

// FindPath runs A* from start to goal over grid and returns the resulting
// path. It runs to completion on the calling goroutine, performs no I/O and
// has no cancellation points; callers needing bounded search time should
// set WithMaxExpansions.
//
// Failures come back as wrapped sentinel errors: ErrInvalidInput for a
// missing grid or endpoint, ErrUnreachable for an unwalkable endpoint, and
// ErrNoPath when the open set empties first. A failed search is never
// retried internally; re-pathing after a grid change is the caller's call.
func (s *Session[N]) FindPath(grid Graph[N], start, goal N) (Result[N], error) {
	var zero N
	if grid == nil || start == zero || goal == zero {
		s.log.V(1).Info("search rejected", "reason", "missing grid or endpoint")
		return Result[N]{}, fmt.Errorf("%w: grid, start and goal are required", ErrInvalidInput)
	}
	if !start.IsWalkable() || !goal.IsWalkable() {
		s.log.V(1).Info("search rejected", "reason", "endpoint not walkable")
		return Result[N]{}, fmt.Errorf("%w: endpoint is not walkable", ErrUnreachable)
	}
	if start == goal {
		return Result[N]{Path: []N{start}, Found: true}, nil
	}

	epoch := epochCounter.Add(1)

	if start.Version() != epoch {
		start.SetVersion(epoch)
		start.SetGCost(0)
		start.SetHCost(start.DistanceTo(goal))
		start.SetParent(zero)
	}

	open := NewHeap[N](64)
	open.Push(start)

	expanded := 0
	for open.Count() > 0 {
		current, ok := open.Pop()
		if !ok {
			// Unreachable while the loop guard holds; validated rather
			// than left as an assertion that vanishes in release builds.
			return Result[N]{Expanded: expanded}, fmt.Errorf("%w: open set corrupted", ErrNoPath)
		}

		// A node already closed this epoch is a stale duplicate left over
		// from the duplicate-push strategy.
		if current.ClosedVersion() == epoch {
			continue
		}

		if current == goal {
			path := reconstructPath(goal)
			return Result[N]{
				Path:      path,
				TotalCost: goal.GCost(),
				Expanded:  expanded,
				Found:     true,
			}, nil
		}

		current.SetClosedVersion(epoch)
		expanded++
		if s.maxExpansions > 0 && expanded > s.maxExpansions {
			s.log.V(1).Info("search aborted", "reason", "budget", "expanded", expanded)
			return Result[N]{Expanded: expanded}, fmt.Errorf("%w: expanded %d nodes", ErrBudgetExceeded, expanded)
		}

		for _, neighbor := range grid.Neighbors(current) {
			if neighbor == zero || !neighbor.IsWalkable() || neighbor.ClosedVersion() == epoch {
				continue
			}
			if neighbor.Version() != epoch {
				neighbor.SetVersion(epoch)
				neighbor.SetGCost(math.Inf(1))
				neighbor.SetHCost(neighbor.DistanceTo(goal))
				neighbor.SetParent(zero)
			}
			tentative := current.GCost() + current.MovementCostTo(neighbor)
			if tentative < neighbor.GCost() {
				neighbor.SetGCost(tentative)
				neighbor.SetParent(current)
				// No decrease-key: push a fresh copy and let the stale one
				// be skipped at pop time.
				open.Push(neighbor)
			}
		}
	}

	s.log.V(1).Info("search exhausted", "reason", "open set empty", "expanded", expanded)
	return Result[N]{Expanded: expanded}, fmt.Errorf("%w: open set exhausted after %d expansions", ErrNoPath, expanded)
}

// reconstructPath walks Parent links back from the goal and reverses the
// collected sequence into start-to-goal order. Every node on the chain was
// initialized in the current epoch, so the links are trustworthy.
func reconstructPath[N Node[N]](goal N) []N {
	var zero N
	path := make([]N, 0, 16)
	for n := goal; n != zero; n = n.Parent() {
		path = append(path, n)
	}
	slices.Reverse(path)
	return path
}
