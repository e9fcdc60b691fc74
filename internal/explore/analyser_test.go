package explore_test

import (
	"testing"

	"github.com/empireu/daleks-go/internal/explore"
	"github.com/empireu/daleks-go/internal/model"
	"github.com/empireu/daleks-go/internal/pathing"
)

func TestFrontiers_DirtAdjacentToUnknownOnly(t *testing.T) {
	tm := pathing.NewTileMap(5, 3, nil, 0)
	rows := []string{
		"?....",
		".....",
		".....",
	}
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			tt, _ := model.ParseTileType(row[x])
			tm.Observe(model.Vector2D{X: x, Y: y}, tt)
		}
	}

	a := explore.NewAnalyser(tm, nil, 1.0)
	frontiers := a.Frontiers(model.Vector2D{X: 2, Y: 1})

	found := map[model.Vector2D]bool{}
	for _, f := range frontiers {
		found[f] = true
	}
	if !found[(model.Vector2D{X: 1, Y: 0})] {
		t.Errorf("expected (1,0) to be a frontier (adjacent to unknown (0,0))")
	}
	if found[(model.Vector2D{X: 3, Y: 2})] {
		t.Errorf("(3,2) has no unknown neighbour and must not be a frontier")
	}
}

func TestSelectTarget_PicksMinimalScore(t *testing.T) {
	tm := pathing.NewTileMap(9, 1, nil, 0)
	row := "?........"
	for x := 0; x < len(row); x++ {
		tt, _ := model.ParseTileType(row[x])
		tm.Observe(model.Vector2D{X: x, Y: 0}, tt)
	}

	a := explore.NewAnalyser(tm, map[explore.Mode]explore.Multipliers{
		explore.Closest: {KPlayer: 1, KBase: 0},
	}, 0)

	player := model.Vector2D{X: 8, Y: 0}
	base := model.Vector2D{X: 8, Y: 0}

	target, ok := a.SelectTarget(player, base, explore.Closest, 1, 1)
	if !ok {
		t.Fatal("expected a frontier target")
	}
	// Only (1,0) borders the single Unknown tile at (0,0); it must win.
	if target != (model.Vector2D{X: 1, Y: 0}) {
		t.Errorf("expected target (1,0), got %v", target)
	}
}
