package controller

import (
	"github.com/empireu/daleks-go/internal/diagnostics"
	"github.com/empireu/daleks-go/internal/explore"
	"github.com/empireu/daleks-go/internal/model"
)

// ingestVision copies every currently-visible tile into the persistent
// tile map, retires it from the undiscovered-mining-candidate set, and
// tracks iron/osmium sightings in pendingOres (§4.5 step 2).
func (c *Controller) ingestVision(snap *model.Snapshot, frame *diagnostics.LogFrame) {
	player := snap.Player.Position
	observed := 0

	for pos := range snap.Visible {
		c.discoveredTiles[pos] = struct{}{}

		if pos == player {
			delete(c.pendingOres, pos)
			continue
		}

		t := snap.Grid.Get(pos)
		c.tm.Observe(pos, t)
		delete(c.undiscoveredMiningCandidates, pos)
		observed++

		if t == model.Iron || t == model.Osmium {
			c.pendingOres[pos] = t
		} else {
			delete(c.pendingOres, pos)
		}
	}
	delete(c.pendingOres, player)

	frame.Info("ingested %d visible tiles, %d pending ores tracked", observed, len(c.pendingOres))
}

// updateSpottedPlayers records every robot tile seen this round and
// evicts sightings older than the configured horizon (§3, §9).
func (c *Controller) updateSpottedPlayers(snap *model.Snapshot, frame *diagnostics.LogFrame) {
	for pos := range snap.Visible {
		t := snap.Grid.Get(pos)
		if !t.IsRobot() {
			continue
		}
		c.spottedPlayers[pos] = spottedPlayer{Round: snap.Round, Kind: t}
	}

	horizon := c.cfg.SpottedPlayerHorizon
	for pos, sp := range c.spottedPlayers {
		if snap.Round-sp.Round >= horizon {
			delete(c.spottedPlayers, pos)
		}
	}

	if len(c.spottedPlayers) > 0 {
		frame.Warning("%d spotted enemy position(s) still tracked", len(c.spottedPlayers))
	}
}

// applyEnemyOverrides adds a per-frame cost penalty around every spotted
// enemy's sight-3 footprint, repelling paths from them (§4.5 step 4).
func (c *Controller) applyEnemyOverrides(frame *diagnostics.LogFrame) {
	if len(c.spottedPlayers) == 0 {
		return
	}
	offsets := explore.SightOffsets(3)
	for pos := range c.spottedPlayers {
		for _, o := range offsets {
			c.tm.AddCostOverride(pos.Add(o), c.cfg.PlayerOverrideCost)
		}
	}
}

// updateDamageLog appends a damage-taken entry whenever hp has dropped
// since the last round (§4.5 step 5).
func (c *Controller) updateDamageLog(snap *model.Snapshot, frame *diagnostics.LogFrame) {
	if !c.haveLastHP {
		c.lastHP = snap.Player.HP
		c.haveLastHP = true
		return
	}
	if snap.Player.HP < c.lastHP {
		delta := c.lastHP - snap.Player.HP
		c.damageLog = append(c.damageLog, damageEvent{Delta: delta, Round: snap.Round})
		frame.Peril("took %d damage this round (hp %d -> %d)", delta, c.lastHP, snap.Player.HP)
	}
	c.lastHP = snap.Player.HP
}
