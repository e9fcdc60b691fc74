package pathing_test

import (
	"testing"

	"github.com/empireu/daleks-go/internal/model"
	"github.com/empireu/daleks-go/internal/pathing"
)

func fill(tm *pathing.TileMap, rows []string) {
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			t, err := model.ParseTileType(row[x])
			if err != nil {
				panic(err)
			}
			tm.Observe(model.Vector2D{X: x, Y: y}, t)
		}
	}
}

func TestFindPath_BlockedByBedrock(t *testing.T) {
	tm := pathing.NewTileMap(5, 5, nil, 0)
	fill(tm, []string{
		"..B..",
		"..B..",
		"..B..",
		"..B..",
		"..B..",
	})

	if _, ok := tm.FindPath(model.Vector2D{X: 0, Y: 2}, model.Vector2D{X: 4, Y: 2}); ok {
		t.Fatal("expected no path through a solid bedrock column")
	}
}

func TestFindPath_StoneIsTraversable(t *testing.T) {
	tm := pathing.NewTileMap(5, 5, nil, 0)
	fill(tm, []string{
		".....",
		".....",
		"..X..",
		".....",
		".....",
	})

	path, ok := tm.FindPath(model.Vector2D{X: 0, Y: 2}, model.Vector2D{X: 4, Y: 2})
	if !ok {
		t.Fatal("expected a path through a breakable stone tile")
	}
	if len(path) != 5 {
		t.Fatalf("expected a path of length 5, got %d", len(path))
	}
	if path[0] != (model.Vector2D{X: 0, Y: 2}) || path[len(path)-1] != (model.Vector2D{X: 4, Y: 2}) {
		t.Fatalf("path must start at source and end at goal, got %v", path)
	}
	found := false
	for _, p := range path {
		if p == (model.Vector2D{X: 2, Y: 2}) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected path to step through (2,2), got %v", path)
	}
	for i := 1; i < len(path); i++ {
		if path[i-1].Manhattan(path[i]) != 1 {
			t.Errorf("path step %d->%d is not 4-adjacent: %v -> %v", i-1, i, path[i-1], path[i])
		}
	}
}

func TestCanAccess_Symmetric(t *testing.T) {
	tm := pathing.NewTileMap(6, 6, nil, 0)
	fill(tm, []string{
		"......",
		"......",
		"..BB..",
		"......",
		"......",
		"......",
	})

	a := model.Vector2D{X: 0, Y: 0}
	b := model.Vector2D{X: 5, Y: 5}
	if tm.CanAccess(a, b) != tm.CanAccess(b, a) {
		t.Fatalf("CanAccess must be symmetric: (a,b)=%v (b,a)=%v", tm.CanAccess(a, b), tm.CanAccess(b, a))
	}
}

func TestBeginFrame_ClearsCaches(t *testing.T) {
	tm := pathing.NewTileMap(4, 4, nil, 0)
	fill(tm, []string{"....", "....", "....", "...."})

	src := model.Vector2D{X: 0, Y: 0}
	goal := model.Vector2D{X: 3, Y: 3}
	if _, ok := tm.FindPath(src, goal); !ok {
		t.Fatal("expected a path on an open grid")
	}

	tm.AddCostOverride(goal, 100)
	tm.BeginFrame()
	// After BeginFrame the override is cleared, so the cache rebuild below
	// must not see the stale 100-cost override from before.
	if _, ok := tm.FindPath(src, goal); !ok {
		t.Fatal("expected a path after BeginFrame clears the override")
	}
}

func TestCostNormalization_NonNegative(t *testing.T) {
	tm := pathing.NewTileMap(3, 3, map[model.TileType]float64{
		model.Dirt:  -5,
		model.Stone: 2,
	}, 0)
	fill(tm, []string{"...", "...", "..."})

	path, ok := tm.FindPath(model.Vector2D{X: 0, Y: 0}, model.Vector2D{X: 2, Y: 2})
	if !ok {
		t.Fatal("expected a path")
	}
	if len(path) == 0 {
		t.Fatal("expected a non-empty path")
	}
}
