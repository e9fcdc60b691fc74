package controller

import (
	"github.com/empireu/daleks-go/internal/command"
	"github.com/empireu/daleks-go/internal/config"
	"github.com/empireu/daleks-go/internal/diagnostics"
	"github.com/empireu/daleks-go/internal/model"
)

const healThreshold = 10

// antennaOsmiumReserveCost mirrors command.BuyAntenna's osmium price, so
// the reserve gate below can be checked before spending the purchase
// attempt itself.
const antennaOsmiumReserveCost = 1

// runPurchases is §4.5 step 7: heals and upgrades are only considered
// once the head player actually owns a battery — buy-battery mode's own
// battery purchase happens separately, before this ever runs.
func (c *Controller) runPurchases(snap *model.Snapshot, buf *command.Buffer, frame *diagnostics.LogFrame) {
	if !snap.Player.HasBattery {
		return
	}

	for buf.CanBuy() && buf.Tail().HP < healThreshold && buf.Tail().Inventory.Osmium >= 1 {
		if !buf.Heal() {
			break
		}
		frame.Info("healed to %d hp", buf.Tail().HP)
	}

	c.processUpgradeQueue(buf, frame)
}

// processUpgradeQueue implements §4.5 step 7's upgrade-queue loop:
// Antenna is dequeued unconditionally once owned or while retreating,
// bought otherwise when affordable; ability upgrades stay at the head
// until they reach level 3, with the 2->3 transition additionally gated
// by the osmium reserve. The first refusal — an unaffordable or
// reserve-gated attempt — stops the loop for the round.
func (c *Controller) processUpgradeQueue(buf *command.Buffer, frame *diagnostics.LogFrame) {
	for !c.upgrades.Empty() {
		kind := c.upgrades.Peek()

		if kind == config.UpgradeAntenna {
			if buf.Tail().HasAntenna || c.mode == ModeRetreating {
				c.upgrades.Dequeue()
				continue
			}
			if c.mode != ModeRetreating && buf.Tail().Inventory.Osmium-antennaOsmiumReserveCost < c.cfg.ReserveOsmium {
				return
			}
			if !buf.BuyAntenna() {
				return
			}
			frame.Info("bought antenna")
			c.upgrades.Dequeue()
			continue
		}

		ability := toAbilityKind(kind)
		level := abilityLevelOf(buf.Tail(), ability)
		if level >= 3 {
			c.upgrades.Dequeue()
			continue
		}
		if level == 2 && !c.canSpendOsmium(buf, ability) {
			return
		}
		if !buf.UpgradeAbility(ability) {
			return
		}
		frame.Info("upgraded %v to level %d", kind, level+1)
	}
}

// canSpendOsmium applies the §3 invariant (h) osmium-reserve gate to the
// optional (level-2->3) ability transitions; retreating waives it, since
// a bot fleeing for its life has no use for a reserve it may never spend.
func (c *Controller) canSpendOsmium(buf *command.Buffer, ability command.AbilityKind) bool {
	if c.mode == ModeRetreating {
		return true
	}
	return !buf.WouldExceedOsmiumReserve(ability, c.cfg.ReserveOsmium)
}

func toAbilityKind(k config.UpgradeKind) command.AbilityKind {
	switch k {
	case config.UpgradeMove:
		return command.AbilityMove
	case config.UpgradeDrill:
		return command.AbilityDrill
	case config.UpgradeAttack:
		return command.AbilityAttack
	case config.UpgradeSight:
		return command.AbilitySight
	default:
		panic("controller: upgrade kind has no ability mapping")
	}
}

func abilityLevelOf(p model.Player, kind command.AbilityKind) int {
	switch kind {
	case command.AbilityMove:
		return p.MoveLevel
	case command.AbilityDrill:
		return p.DrillLevel
	case command.AbilityAttack:
		return p.AttackLevel
	case command.AbilitySight:
		return p.SightLevel
	default:
		panic("controller: invalid ability kind")
	}
}
