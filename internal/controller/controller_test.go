package controller_test

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/empireu/daleks-go/internal/config"
	"github.com/empireu/daleks-go/internal/controller"
	"github.com/empireu/daleks-go/internal/diagnostics"
	"github.com/empireu/daleks-go/internal/explore"
	"github.com/empireu/daleks-go/internal/model"
)

// buildSnapshot assembles the wire text for one round from a grid of wire
// characters, the player's position, and its stats/inventory, mirroring the
// command package's own test helper.
func buildSnapshot(t *testing.T, round int, grid []string, pos model.Vector2D, stats [7]int, inv [3]int) *model.Snapshot {
	t.Helper()
	width := len(grid[0])
	height := len(grid)

	lines := make([]string, 0, height+3)
	lines = append(lines, itoa(width)+" "+itoa(height))
	lines = append(lines, grid...)
	lines = append(lines, itoa(pos.X)+" "+itoa(pos.Y))
	lines = append(lines, joinInts(stats[:]))
	lines = append(lines, joinInts(inv[:]))

	snap, err := model.ParseSnapshot(round, strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}
	return snap
}

func itoa(n int) string { return strconv.Itoa(n) }

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = itoa(v)
	}
	return strings.Join(parts, " ")
}

func testConfig() *config.Resolved {
	return &config.Resolved{
		ExploreMultipliers: map[explore.Mode]explore.Multipliers{
			explore.Closest:     {KPlayer: 1, KBase: 0},
			explore.ClosestBase: {KPlayer: 1, KBase: 2.5},
		},
		UtilityMultiplier: 0,
		CostMap: map[model.TileType]float64{
			model.Dirt:   1,
			model.Stone:  3,
			model.Cobble: 2,
			model.Iron:   0.5,
			model.Osmium: 0.5,
			model.Base:   0,
			model.Acid:   5,
		},
		DiagonalPenalty:      0,
		UpgradeList:          nil,
		PlayerOverrideCost:   10,
		ReserveOsmium:        2,
		RoundsMargin:         5,
		AcidRounds:           500,
		SpottedPlayerHorizon: 5,
	}
}

// stats/inv shorthand: hp, drill, attack, move, sight, antenna, battery.
func playerStats(hp, drill, attack, move, sight, antenna, battery int) [7]int {
	return [7]int{hp, drill, attack, move, sight, antenna, battery}
}

func TestController_EntersRetreatWhenAcidDeadlineClose(t *testing.T) {
	grid := []string{
		".....",
		".....",
		"..E..",
		".....",
		".....",
	}
	cfg := testConfig()
	cfg.AcidRounds = 10
	cfg.RoundsMargin = 5

	c := controller.New(cfg, diagnostics.NopSink{})
	snap := buildSnapshot(t, 6, grid, model.Vector2D{X: 2, Y: 2}, playerStats(10, 1, 1, 1, 1, 0, 1), [3]int{0, 0, 0})

	_, frame := c.Update(context.Background(), snap)
	if frame == nil {
		t.Fatal("expected a log frame")
	}
	if c.Mode() != controller.ModeRetreating {
		t.Errorf("expected retreat mode with 4 rounds left and a margin of 5, got %v", c.Mode())
	}
}

func TestController_EntersBuyingBatteryWhenAffordable(t *testing.T) {
	grid := []string{
		".....",
		".....",
		"..E..",
		".....",
		".....",
	}
	cfg := testConfig()

	c := controller.New(cfg, diagnostics.NopSink{})
	snap := buildSnapshot(t, 0, grid, model.Vector2D{X: 2, Y: 2}, playerStats(10, 1, 1, 1, 1, 0, 0), [3]int{0, 1, 1})

	_, _ = c.Update(context.Background(), snap)
	if c.Mode() != controller.ModeBuyingBattery {
		t.Errorf("expected buying-battery mode when iron/osmium are both available and no battery is owned, got %v", c.Mode())
	}
}

func TestController_MinesWhenBatteryOwnedAndSafe(t *testing.T) {
	grid := []string{
		".....",
		".....",
		"..E..",
		".....",
		".....",
	}
	cfg := testConfig()

	c := controller.New(cfg, diagnostics.NopSink{})
	snap := buildSnapshot(t, 0, grid, model.Vector2D{X: 2, Y: 2}, playerStats(10, 1, 1, 1, 1, 0, 1), [3]int{0, 0, 0})

	_, _ = c.Update(context.Background(), snap)
	if c.Mode() != controller.ModeMining {
		t.Errorf("expected mining mode once a battery is owned and acid is far off, got %v", c.Mode())
	}
}

// TestController_StepsTowardFrontier exercises the full pipeline (ingest,
// mode decision, mining execution, serialisation) for one round and
// checks the returned command actually moves the player.
func TestController_StepsTowardFrontier(t *testing.T) {
	grid := []string{
		".......",
		".......",
		".......",
		"...E...",
		".......",
		".......",
		"......?",
	}
	cfg := testConfig()

	c := controller.New(cfg, diagnostics.NopSink{})
	snap := buildSnapshot(t, 0, grid, model.Vector2D{X: 3, Y: 3}, playerStats(10, 1, 1, 1, 1, 0, 1), [3]int{0, 0, 0})

	cmd, frame := c.Update(context.Background(), snap)
	if cmd == "" {
		t.Fatal("expected a non-empty serialised command")
	}
	switch first := strings.Fields(cmd)[0]; first {
	case "U", "D", "L", "R":
	default:
		t.Errorf("expected the command to start with a move, got %q", cmd)
	}
	if frame.Round != 0 {
		t.Errorf("expected the log frame to carry round 0, got %d", frame.Round)
	}
}

func TestController_RetreatPicksEnemyBoxCorner(t *testing.T) {
	// An enemy (robot "0") at the map's centre (5,5), walled in by cobble
	// on all four 4-neighbours. Of the four diagonal corners, (4,6) is the
	// closest to the player at (3,6) (squared distance 1), so retreat
	// targets it; it is cobble right beside the player, so the round's
	// command is a single Mine to the right.
	grid := []string{
		"...........",
		"...........",
		"...........",
		"...........",
		"....AAA....",
		"....A0A....",
		"....AAA....",
		"...........",
		"...........",
		"...........",
		"...........",
	}
	cfg := testConfig()
	cfg.AcidRounds = 5
	cfg.RoundsMargin = 5

	c := controller.New(cfg, diagnostics.NopSink{})
	snap := buildSnapshot(t, 0, grid, model.Vector2D{X: 3, Y: 6}, playerStats(10, 1, 1, 1, 3, 0, 1), [3]int{0, 0, 0})

	cmd, frame := c.Update(context.Background(), snap)
	if c.Mode() != controller.ModeRetreating {
		t.Fatalf("expected retreat mode with the acid deadline immediate, got %v", c.Mode())
	}
	if frame == nil {
		t.Fatal("expected a log frame")
	}
	if cmd != "M R " {
		t.Errorf("expected to mine toward the corner (4,6), got %q", cmd)
	}
}
