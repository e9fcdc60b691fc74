// Package controller implements the bot update loop (C7): the mode
// machine (mining / buy-battery / retreat), ore memory, upgrade queue,
// and the attack/heal/scan decisions that compose the pathfinder (C5)
// and exploration analyser (C6) each round.
package controller

import (
	"github.com/empireu/daleks-go/internal/config"
	"github.com/empireu/daleks-go/internal/explore"
	"github.com/empireu/daleks-go/internal/model"
)

// Mode is one of the three states the bot update loop can be in.
type Mode int

const (
	ModeBuyingBattery Mode = iota
	ModeMining
	ModeRetreating
)

func (m Mode) String() string {
	switch m {
	case ModeBuyingBattery:
		return "buying-battery"
	case ModeMining:
		return "mining"
	case ModeRetreating:
		return "retreating"
	default:
		return "unknown"
	}
}

// spottedPlayer is one entry in the stale-eviction spotted-players map.
type spottedPlayer struct {
	Round int
	Kind  model.TileType
}

// damageEvent is one entry in the incoming-damage log.
type damageEvent struct {
	Delta int
	Round int
}

// attackEvent is one entry in the attacks-attempted log.
type attackEvent struct {
	Dir   model.Direction
	Round int
}

// upgradeQueue is a FIFO of configured upgrade kinds. Entries are
// dequeued by Dequeue; Peek never mutates the queue.
type upgradeQueue struct {
	items []config.UpgradeKind
}

func newUpgradeQueue(items []config.UpgradeKind) *upgradeQueue {
	return &upgradeQueue{items: append([]config.UpgradeKind(nil), items...)}
}

func (q *upgradeQueue) Empty() bool { return len(q.items) == 0 }

func (q *upgradeQueue) Peek() config.UpgradeKind { return q.items[0] }

func (q *upgradeQueue) Dequeue() {
	if len(q.items) > 0 {
		q.items = q.items[1:]
	}
}

// initialMiningCandidates returns every position in the interior
// bounding box — the grid minus its one-tile bedrock frame — as the
// starting set of undiscovered mining candidates (§3).
func initialMiningCandidates(width, height int) map[model.Vector2D]struct{} {
	out := make(map[model.Vector2D]struct{})
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			out[model.Vector2D{X: x, Y: y}] = struct{}{}
		}
	}
	return out
}

// explorationModeFromBattery picks the starting exploration mode: before
// a battery is owned the bot biases toward the base (ClosestBase); once
// it owns one, BuyingBattery mode is never re-entered and exploration
// switches to Closest.
func explorationModeFromBattery(hasBattery bool) explore.Mode {
	if hasBattery {
		return explore.Closest
	}
	return explore.ClosestBase
}
