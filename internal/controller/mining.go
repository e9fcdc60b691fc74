package controller

import (
	"github.com/empireu/daleks-go/internal/command"
	"github.com/empireu/daleks-go/internal/diagnostics"
	"github.com/empireu/daleks-go/internal/model"
)

// runMining is the §4.5 Mining mode: it chases the nearest pending ore,
// or an exploration target when no ore is known, mining through
// obstacles as it goes and attacking or scanning when the action slot is
// otherwise free.
func (c *Controller) runMining(buf *command.Buffer, frame *diagnostics.LogFrame) {
	player := buf.Head().Player
	target, ok := c.miningTarget(player)
	if !ok {
		c.enterRetreat(frame)
		c.runRetreat(buf, frame)
		return
	}
	frame.Info("mining: target %v", target)

	path := c.pathOrNil(player.Position, target)
	if path == nil {
		// Try the other target source before giving up on the round.
		if alt, ok := c.explorationTarget(player); ok {
			if p := c.pathOrNil(player.Position, alt); p != nil {
				path, target = p, alt
			}
		}
	}

	_, canAttack := c.attackDirection(player.Position, player.Attack())
	mineFast := !canAttack

	if path != nil {
		c.stepToward(buf, path, true, mineFast)
	}

	if buf.ActionKind() != command.ActionNone {
		return
	}

	atkDir2, canAttack2 := c.attackDirection(buf.Tail().Position, player.Attack())
	switch {
	case canAttack2:
		if buf.Attack(atkDir2) {
			c.recordAttack(atkDir2, buf.Head().Round)
		}
	case buf.Head().Player.HasAntenna && target != buf.Tail().Position:
		buf.Scan(buf.Tail().Position.DirectionTo(target))
	default:
		c.greedyMine(buf)
	}
}

// miningTarget picks the nearest pending ore by squared distance, or
// falls back to the exploration analyser's frontier pick (§4.5 Mining
// mode target selection).
func (c *Controller) miningTarget(player model.Player) (model.Vector2D, bool) {
	if target, ok := c.nearestPendingOre(player.Position); ok {
		return target, true
	}
	return c.explorationTarget(player)
}

func (c *Controller) nearestPendingOre(player model.Vector2D) (model.Vector2D, bool) {
	best := model.Vector2D{}
	bestDist := -1
	for pos := range c.pendingOres {
		d := player.SquaredEuclidean(pos)
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = pos
		}
	}
	return best, bestDist != -1
}

func (c *Controller) explorationTarget(player model.Player) (model.Vector2D, bool) {
	return c.analyser.SelectTarget(player.Position, c.basePosition, c.explorationMode, player.Movement(), player.Sight())
}

// greedyMine queues Mine sub-actions toward adjacent non-walkable,
// non-unbreakable cells not already being mined, up to the drill budget
// (§4.5 Mining mode Execution, final fallback).
func (c *Controller) greedyMine(buf *command.Buffer) {
	pos := buf.Tail().Position
	for _, d := range model.Directions() {
		n := pos.Add(d.Step())
		t := c.tm.Known(n)
		if t.IsWalkable() || t.IsUnbreakable() {
			continue
		}
		if buf.IsMining(d) {
			continue
		}
		if !buf.Mine(d) {
			break
		}
	}
}
