package command

import "strings"

func (k ActionKind) token() string {
	switch k {
	case ActionMine:
		return "M"
	case ActionPlace:
		return "P"
	case ActionAttack:
		return "A"
	case ActionScan:
		return "S"
	default:
		panic("command: no wire token for ActionNone")
	}
}

// purchaseToken maps each purchase kind to its wire letter. Sight and
// Movement take their natural initials; Antenna, Drill, Battery, and Heal
// follow the same rule. Attack would also want "A", but Antenna already
// claims it, so Attack is serialised as "R" — the one leftover letter once
// every other kind has taken its initial.
func (k PurchaseKind) token() string {
	switch k {
	case PurchaseSight:
		return "S"
	case PurchaseAntenna:
		return "A"
	case PurchaseDrill:
		return "D"
	case PurchaseMovement:
		return "M"
	case PurchaseAttack:
		return "R"
	case PurchaseBattery:
		return "B"
	case PurchaseHeal:
		return "H"
	default:
		panic("command: invalid purchase kind")
	}
}

// Serialize renders the buffer as the space-separated wire string the
// match server expects: moves, then the action (if any), then purchases.
// Every accepted (moves, action, purchases) triple maps to a distinct
// string, since moves/action/purchase tokens occupy disjoint, positionally
// ordered regions of the output.
func (b *Buffer) Serialize() string {
	var sb strings.Builder

	for _, d := range b.moves {
		sb.WriteString(d.Token())
		sb.WriteByte(' ')
	}

	switch b.actionKind {
	case ActionMine:
		for _, d := range b.mineDirs {
			sb.WriteString(b.actionKind.token())
			sb.WriteByte(' ')
			sb.WriteString(d.Token())
			sb.WriteByte(' ')
		}
	case ActionPlace, ActionAttack, ActionScan:
		sb.WriteString(b.actionKind.token())
		sb.WriteByte(' ')
		sb.WriteString(b.actionDir.Token())
		sb.WriteByte(' ')
	}

	for _, p := range b.purchases {
		sb.WriteString("B")
		sb.WriteByte(' ')
		sb.WriteString(p.token())
		sb.WriteByte(' ')
	}

	return sb.String()
}
