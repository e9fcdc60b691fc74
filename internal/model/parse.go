package model

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseSnapshot decodes one round's observation text into a Snapshot.
//
// Wire format (one line per entry below):
//
//	W H
//	<H grid rows, W tile characters each, optionally space-separated>
//	X Y                                      (player position)
//	hp drill attack movement sight antenna battery
//	cobble iron osmium
func ParseSnapshot(round int, r io.Reader) (*Snapshot, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := func() (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return scanner.Text(), nil
	}

	header, err := line()
	if err != nil {
		return nil, fmt.Errorf("model: reading grid size: %w", err)
	}
	width, height, err := parseTwoInts(header)
	if err != nil {
		return nil, fmt.Errorf("model: parsing grid size %q: %w", header, err)
	}

	grid := NewGrid[TileType](width, height)
	for y := 0; y < height; y++ {
		row, err := line()
		if err != nil {
			return nil, fmt.Errorf("model: reading grid row %d: %w", y, err)
		}
		chars := strings.ReplaceAll(row, " ", "")
		if len(chars) != width {
			return nil, fmt.Errorf("model: grid row %d has %d tiles, want %d", y, len(chars), width)
		}
		for x := 0; x < width; x++ {
			t, err := ParseTileType(chars[x])
			if err != nil {
				return nil, fmt.Errorf("model: grid row %d col %d: %w", y, x, err)
			}
			grid.Set(Vector2D{X: x, Y: y}, t)
		}
	}

	posLine, err := line()
	if err != nil {
		return nil, fmt.Errorf("model: reading player position: %w", err)
	}
	px, py, err := parseTwoInts(posLine)
	if err != nil {
		return nil, fmt.Errorf("model: parsing player position %q: %w", posLine, err)
	}

	statsLine, err := line()
	if err != nil {
		return nil, fmt.Errorf("model: reading player stats: %w", err)
	}
	stats, err := parseInts(statsLine, 7)
	if err != nil {
		return nil, fmt.Errorf("model: parsing player stats %q: %w", statsLine, err)
	}

	invLine, err := line()
	if err != nil {
		return nil, fmt.Errorf("model: reading inventory: %w", err)
	}
	inv, err := parseInts(invLine, 3)
	if err != nil {
		return nil, fmt.Errorf("model: parsing inventory %q: %w", invLine, err)
	}

	player := Player{
		Position:    Vector2D{X: px, Y: py},
		HP:          stats[0],
		DrillLevel:  stats[1],
		AttackLevel: stats[2],
		MoveLevel:   stats[3],
		SightLevel:  stats[4],
		HasAntenna:  stats[5] != 0,
		HasBattery:  stats[6] != 0,
		Inventory: Inventory{
			Cobble: inv[0],
			Iron:   inv[1],
			Osmium: inv[2],
		},
	}

	snap := &Snapshot{
		Round:  round,
		Grid:   grid,
		Player: player,
	}
	fillVision(snap)
	return snap, nil
}

func parseTwoInts(s string) (int, int, error) {
	vals, err := parseInts(s, 2)
	if err != nil {
		return 0, 0, err
	}
	return vals[0], vals[1], nil
}

func parseInts(s string, n int) ([]int, error) {
	fields := strings.Fields(s)
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d integers, got %d", n, len(fields))
	}
	out := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("field %d (%q): %w", i, f, err)
		}
		out[i] = v
	}
	return out, nil
}
