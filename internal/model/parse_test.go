package model

import (
	"strings"
	"testing"
)

func TestParseSnapshot_VisionExcludesUnknown(t *testing.T) {
	input := strings.Join([]string{
		"3 3",
		". . ?",
		". E .",
		"X X X",
		"1 1",
		"10 1 1 1 1 0 0",
		"0 0 0",
	}, "\n")

	snap, err := ParseSnapshot(0, strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}

	want := []Vector2D{
		{X: 0, Y: 0}, {X: 1, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
	}
	if len(snap.Visible) != len(want) {
		t.Fatalf("expected %d visible tiles, got %d", len(want), len(snap.Visible))
	}
	for _, p := range want {
		if !snap.IsVisible(p) {
			t.Errorf("expected %v to be visible", p)
		}
	}
	if snap.IsVisible(Vector2D{X: 2, Y: 0}) {
		t.Errorf("(2,0) is Unknown and must not be visible")
	}
}

func TestParseSnapshot_PlayerStats(t *testing.T) {
	input := strings.Join([]string{
		"2 2",
		". .",
		". .",
		"0 0",
		"12 2 3 2 2 1 1",
		"4 5 6",
	}, "\n")

	snap, err := ParseSnapshot(3, strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}

	p := snap.Player
	if p.HP != 12 || p.DrillLevel != 2 || p.AttackLevel != 3 || p.MoveLevel != 2 || p.SightLevel != 2 {
		t.Errorf("unexpected player stats: %+v", p)
	}
	if !p.HasAntenna || !p.HasBattery {
		t.Errorf("expected antenna and battery, got %+v", p)
	}
	if p.Inventory != (Inventory{Cobble: 4, Iron: 5, Osmium: 6}) {
		t.Errorf("unexpected inventory: %+v", p.Inventory)
	}
	if snap.Round != 3 {
		t.Errorf("expected round 3, got %d", snap.Round)
	}
}

func TestParseSnapshot_UnknownTileChar(t *testing.T) {
	input := strings.Join([]string{
		"1 1",
		"Z",
		"0 0",
		"1 1 1 1 1 0 0",
		"0 0 0",
	}, "\n")

	if _, err := ParseSnapshot(0, strings.NewReader(input)); err == nil {
		t.Fatal("expected a parse error for an unknown tile character")
	}
}
