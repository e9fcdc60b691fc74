// Package pathing implements the persistent known-world map, its per-frame
// Dijkstra cache, and the reachability cache (C5).
package pathing

import "github.com/empireu/daleks-go/internal/model"

// TileMap is the bot's persistent model of the map: tiles it has seen so
// far, plus caches that only live for the current round.
type TileMap struct {
	known        *model.Grid[model.TileType]
	costOverride *model.Grid[float64]
	baseCost     map[model.TileType]float64
	diagonalPenalty float64

	dijkstra map[model.Vector2D]*dijkstraResult
	reach    map[pairKey]bool
}

// NewTileMap creates a width x height map, entirely Unknown, using the
// given (un-normalised) cost preferences and diagonal-turn penalty.
func NewTileMap(width, height int, costMap map[model.TileType]float64, diagonalPenalty float64) *TileMap {
	tm := &TileMap{
		known:           model.NewGridFilled[model.TileType](width, height, model.Unknown),
		costOverride:    model.NewGrid[float64](width, height),
		baseCost:        normalizeCosts(costMap),
		diagonalPenalty: diagonalPenalty,
	}
	tm.BeginFrame()
	return tm
}

// BeginFrame clears the per-frame cost override and discards the Dijkstra
// and reachability caches. Call once at the start of every round, before
// any pathfinding or ingestion.
func (tm *TileMap) BeginFrame() {
	tm.costOverride.Fill(0)
	tm.dijkstra = make(map[model.Vector2D]*dijkstraResult)
	tm.reach = make(map[pairKey]bool)
}

// Known returns the tile type recorded at p, or Unknown if out of bounds.
func (tm *TileMap) Known(p model.Vector2D) model.TileType {
	if !tm.known.InBounds(p) {
		return model.Unknown
	}
	return tm.known.Get(p)
}

// Width returns the map's width.
func (tm *TileMap) Width() int { return tm.known.Width() }

// Height returns the map's height.
func (tm *TileMap) Height() int { return tm.known.Height() }

// InBounds reports whether p lies within the map.
func (tm *TileMap) InBounds(p model.Vector2D) bool {
	return tm.known.InBounds(p)
}

// Neighbours4 returns the in-bounds 4-connected neighbours of p.
func (tm *TileMap) Neighbours4(p model.Vector2D) []model.Vector2D {
	return tm.known.Neighbours4(p)
}

// Observe records that p is now known to be of kind t.
func (tm *TileMap) Observe(p model.Vector2D, t model.TileType) {
	if !tm.known.InBounds(p) {
		return
	}
	tm.known.Set(p, t)
}

// AddCostOverride adds amount to the per-frame cost override at p. Used to
// repel paths from spotted enemies (§4.5 step 4).
func (tm *TileMap) AddCostOverride(p model.Vector2D, amount float64) {
	if !tm.costOverride.InBounds(p) {
		return
	}
	tm.costOverride.Set(p, tm.costOverride.Get(p)+amount)
}

// FindPath returns the 4-connected path from source to goal, inclusive of
// both endpoints, or (nil, false) if source/goal are out of bounds,
// unbreakable, or unreachable. It never panics or errors.
func (tm *TileMap) FindPath(source, goal model.Vector2D) ([]model.Vector2D, bool) {
	if !tm.known.InBounds(source) || !tm.known.InBounds(goal) {
		return nil, false
	}
	if tm.Known(source).IsUnbreakable() || tm.Known(goal).IsUnbreakable() {
		return nil, false
	}

	dr := tm.dijkstraFrom(source)
	return dr.pathTo(goal)
}

// CanAccess reports whether goal is reachable from source, answering from
// the symmetric reachability cache when possible and falling back to an
// independent manhattan-guided search otherwise.
func (tm *TileMap) CanAccess(source, goal model.Vector2D) bool {
	key := makePairKey(source, goal)
	if v, ok := tm.reach[key]; ok {
		return v
	}
	result := tm.reachableBestFirst(source, goal)
	tm.reach[key] = result
	return result
}

type pairKey struct {
	lo, hi model.Vector2D
}

func makePairKey(a, b model.Vector2D) pairKey {
	if less(a, b) {
		return pairKey{lo: a, hi: b}
	}
	return pairKey{lo: b, hi: a}
}

func less(a, b model.Vector2D) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
