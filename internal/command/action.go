// Package command implements the per-round command buffer (C4): the
// accumulation of moves, one optional action, and purchases against a
// speculative "tail" snapshot, plus serialisation to the wire format the
// match server expects.
package command

import "github.com/empireu/daleks-go/internal/model"

// ActionKind identifies which of the four optional actions, if any,
// occupies the buffer's single action slot.
type ActionKind int

const (
	// ActionNone means no action has been accepted yet this round.
	ActionNone ActionKind = iota
	ActionMine
	ActionPlace
	ActionAttack
	ActionScan
)

// AbilityKind is one of the four upgradeable combat/exploration abilities.
type AbilityKind int

const (
	AbilityMove AbilityKind = iota
	AbilityDrill
	AbilityAttack
	AbilitySight
)

// PurchaseKind is one of the seven purchase/heal operations a round may
// contain, in the order the spec lists them.
type PurchaseKind int

const (
	PurchaseAttack PurchaseKind = iota
	PurchaseDrill
	PurchaseMovement
	PurchaseSight
	PurchaseAntenna
	PurchaseBattery
	PurchaseHeal
)

// abilityCost is the (iron, osmium) price to upgrade an ability from the
// given current level to the next one.
func abilityCost(level int) (iron, osmium int) {
	switch level {
	case 1:
		return 3, 0
	case 2:
		return 6, 1
	default:
		return 0, 0
	}
}

const maxAbilityLevel = 3

const (
	batteryIronCost, batteryOsmiumCost = 1, 1
	antennaIronCost, antennaOsmiumCost = 2, 1
	healOsmiumCost                     = 1
	healAmount                         = 5
	maxHP                              = 15
)

func abilityLevel(p *model.Player, kind AbilityKind) int {
	switch kind {
	case AbilityMove:
		return p.MoveLevel
	case AbilityDrill:
		return p.DrillLevel
	case AbilityAttack:
		return p.AttackLevel
	case AbilitySight:
		return p.SightLevel
	default:
		panic("command: invalid ability kind")
	}
}

func setAbilityLevel(p *model.Player, kind AbilityKind, level int) {
	switch kind {
	case AbilityMove:
		p.MoveLevel = level
	case AbilityDrill:
		p.DrillLevel = level
	case AbilityAttack:
		p.AttackLevel = level
	case AbilitySight:
		p.SightLevel = level
	default:
		panic("command: invalid ability kind")
	}
}
