package controller

import (
	"github.com/empireu/daleks-go/internal/diagnostics"
	"github.com/empireu/daleks-go/internal/model"
)

const (
	batteryIronCost, batteryOsmiumCost = 1, 1
)

// decideMode runs the §4.5 step 6 decision cascade: retreat takes
// priority over buying a battery, which takes priority over mining.
func (c *Controller) decideMode(snap *model.Snapshot, frame *diagnostics.LogFrame) {
	if c.cfg.AcidRounds-snap.Round <= c.cfg.RoundsMargin {
		if c.mode != ModeRetreating {
			frame.Peril("acid deadline in %d rounds <= margin %d: entering retreat", c.cfg.AcidRounds-snap.Round, c.cfg.RoundsMargin)
		}
		c.mode = ModeRetreating
		return
	}

	p := snap.Player
	if !p.HasBattery && p.Inventory.Iron >= batteryIronCost && p.Inventory.Osmium >= batteryOsmiumCost {
		c.mode = ModeBuyingBattery
		return
	}

	c.mode = ModeMining
}

// enterRetreat switches to retreat for the remainder of this round's
// decision, used by mining mode's exhaustion fallback (§4.5 Mining mode).
func (c *Controller) enterRetreat(frame *diagnostics.LogFrame) {
	frame.Warning("exploration exhausted: falling back to retreat")
	c.mode = ModeRetreating
}
