package pathing

import "github.com/empireu/daleks-go/internal/model"

// reachableBestFirst is a manhattan-guided best-first search independent
// of the Dijkstra cache: it only asks "can I get there at all", ignoring
// edge cost, and returns as soon as goal is popped.
func (tm *TileMap) reachableBestFirst(source, goal model.Vector2D) bool {
	if !tm.known.InBounds(source) || !tm.known.InBounds(goal) {
		return false
	}
	if tm.Known(source).IsUnbreakable() || tm.Known(goal).IsUnbreakable() {
		return false
	}
	if source == goal {
		return true
	}

	h := newPosHeap()
	h.push(source, float64(source.Manhattan(goal)))
	visited := map[model.Vector2D]bool{source: true}

	for h.Len() > 0 {
		pos, _, _ := h.pop()
		if pos == goal {
			return true
		}
		for _, next := range tm.known.Neighbours4(pos) {
			if visited[next] {
				continue
			}
			if tm.Known(next).IsUnbreakable() {
				continue
			}
			visited[next] = true
			h.push(next, float64(next.Manhattan(goal)))
		}
	}
	return false
}
