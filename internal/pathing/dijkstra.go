package pathing

import "github.com/empireu/daleks-go/internal/model"

// dijkstraResult is the cached outcome of a single-source Dijkstra run:
// the cost/ancestor grid plus memoised traced paths to goals requested so
// far this frame.
type dijkstraResult struct {
	source   model.Vector2D
	cost     map[model.Vector2D]float64
	ancestor map[model.Vector2D]model.Vector2D
	paths    map[model.Vector2D]pathEntry
}

type pathEntry struct {
	path []model.Vector2D
	ok   bool
}

// dijkstraFrom returns the cached Dijkstra result for source, computing
// and caching it on first request this frame.
func (tm *TileMap) dijkstraFrom(source model.Vector2D) *dijkstraResult {
	if dr, ok := tm.dijkstra[source]; ok {
		return dr
	}
	dr := tm.runDijkstra(source)
	tm.dijkstra[source] = dr
	return dr
}

func (tm *TileMap) runDijkstra(source model.Vector2D) *dijkstraResult {
	dr := &dijkstraResult{
		source:   source,
		cost:     make(map[model.Vector2D]float64),
		ancestor: make(map[model.Vector2D]model.Vector2D),
		paths:    make(map[model.Vector2D]pathEntry),
	}

	if tm.Known(source).IsUnbreakable() {
		return dr
	}

	h := newPosHeap()
	h.push(source, 0)
	dr.cost[source] = 0
	finalized := make(map[model.Vector2D]bool)

	for h.Len() > 0 {
		pos, priority, _ := h.pop()
		if finalized[pos] {
			continue
		}
		if c, ok := dr.cost[pos]; ok && priority > c {
			continue // stale heap entry
		}
		finalized[pos] = true

		for _, next := range tm.known.Neighbours4(pos) {
			if tm.Known(next).IsUnbreakable() {
				continue
			}
			weight := tm.edgeWeight(pos, next, dr)
			candidate := dr.cost[pos] + weight
			if existing, ok := dr.cost[next]; !ok || candidate < existing {
				dr.cost[next] = candidate
				dr.ancestor[next] = pos
				h.push(next, candidate)
			}
		}
	}

	return dr
}

// edgeWeight computes the cost of moving from u to v, where u has already
// been finalized (its own ancestor, if any, is known).
func (tm *TileMap) edgeWeight(u, v model.Vector2D, dr *dijkstraResult) float64 {
	weight := 1 + tm.baseCost[tm.Known(v)] + tm.costOverride.Get(v)
	if tm.isLShape(u, v, dr) {
		weight += tm.diagonalPenalty
	}
	return weight
}

// isLShape reports whether routing grandparent -> u -> v makes an L-turn:
// both axis deltas between the grandparent and v are non-zero. Straight
// corridors (same-axis travel) have one delta at zero and pay no penalty.
func (tm *TileMap) isLShape(u, v model.Vector2D, dr *dijkstraResult) bool {
	grandparent, ok := dr.ancestor[u]
	if !ok {
		return false
	}
	dx := v.X - grandparent.X
	dy := v.Y - grandparent.Y
	return dx != 0 && dy != 0
}

// pathTo traces the path from the Dijkstra source to goal, memoising the
// result.
func (dr *dijkstraResult) pathTo(goal model.Vector2D) ([]model.Vector2D, bool) {
	if entry, ok := dr.paths[goal]; ok {
		return entry.path, entry.ok
	}

	path, ok := dr.trace(goal)
	dr.paths[goal] = pathEntry{path: path, ok: ok}
	return path, ok
}

func (dr *dijkstraResult) trace(goal model.Vector2D) ([]model.Vector2D, bool) {
	if _, reached := dr.cost[goal]; !reached {
		return nil, false
	}

	var reversed []model.Vector2D
	cur := goal
	for {
		reversed = append(reversed, cur)
		if cur == dr.source {
			break
		}
		parent, ok := dr.ancestor[cur]
		if !ok {
			return nil, false
		}
		cur = parent
	}

	path := make([]model.Vector2D, len(reversed))
	for i, p := range reversed {
		path[len(reversed)-1-i] = p
	}
	return path, true
}
