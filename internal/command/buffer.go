package command

import "github.com/empireu/daleks-go/internal/model"

// Buffer accumulates one round's moves, optional action, and purchases
// against an immutable head snapshot. Every accepted operation derives a
// new "tail" player record from the previous one; gating for purchases
// reads the head (canBuy) and the tail (inventory) as the spec requires.
type Buffer struct {
	head *model.Snapshot

	moves []model.Direction

	actionKind ActionKind
	mineDirs   []model.Direction // distinct directions mined this round
	actionDir  model.Direction   // valid when actionKind is Place/Attack/Scan

	purchases []PurchaseKind

	// tails is the append-only list of derived tail players; tails[0] is a
	// copy of head.Player and tails[len(tails)-1] is the current tail.
	tails []model.Player
}

// NewBuffer starts a fresh command buffer against head.
func NewBuffer(head *model.Snapshot) *Buffer {
	return &Buffer{
		head:  head,
		tails: []model.Player{head.Player},
	}
}

// Head returns the buffer's origin snapshot.
func (b *Buffer) Head() *model.Snapshot { return b.head }

// Tail returns the current speculative player state.
func (b *Buffer) Tail() model.Player {
	return b.tails[len(b.tails)-1]
}

// Moves returns the accepted moves, in order.
func (b *Buffer) Moves() []model.Direction {
	return append([]model.Direction(nil), b.moves...)
}

// ActionKind returns the kind of action occupying the buffer's action
// slot, or ActionNone if none has been accepted.
func (b *Buffer) ActionKind() ActionKind { return b.actionKind }

// MineDirections returns the distinct directions mined this round.
func (b *Buffer) MineDirections() []model.Direction {
	return append([]model.Direction(nil), b.mineDirs...)
}

// IsMining reports whether dir has already been queued for mining this
// round.
func (b *Buffer) IsMining(dir model.Direction) bool {
	for _, d := range b.mineDirs {
		if d == dir {
			return true
		}
	}
	return false
}

func (b *Buffer) pushTail(p model.Player) {
	b.tails = append(b.tails, p)
}

// CanBuy reports whether purchases/heals are currently allowed: the head
// player either owns a battery or stands on the base tile.
func (b *Buffer) CanBuy() bool {
	p := b.head.Player
	if p.HasBattery {
		return true
	}
	return b.head.Grid.InBounds(p.Position) && b.head.Grid.Get(p.Position) == model.Base
}

// Move appends a move in dir if the head's movement budget allows it.
// It does not check that the destination tile is walkable.
func (b *Buffer) Move(dir model.Direction) bool {
	if len(b.moves) >= b.head.Player.Movement() {
		return false
	}
	b.moves = append(b.moves, dir)
	tail := b.Tail()
	tail.Position = tail.Position.Add(dir.Step())
	b.pushTail(tail)
	return true
}

// Mine queues a Mine sub-action in dir. It fails if a non-Mine action is
// already present, if dir has already been queued, or if the drill budget
// is exhausted.
func (b *Buffer) Mine(dir model.Direction) bool {
	if b.actionKind != ActionNone && b.actionKind != ActionMine {
		return false
	}
	if b.IsMining(dir) {
		return false
	}
	if len(b.mineDirs) >= b.head.Player.Drill() {
		return false
	}
	b.actionKind = ActionMine
	b.mineDirs = append(b.mineDirs, dir)
	return true
}

// Place spends one cobble to place a block in dir. It fails if any action
// is already present or if the tail has no cobble.
func (b *Buffer) Place(dir model.Direction) bool {
	if b.actionKind != ActionNone {
		return false
	}
	tail := b.Tail()
	if tail.Inventory.Cobble < 1 {
		return false
	}
	tail.Inventory.Cobble--
	b.actionKind = ActionPlace
	b.actionDir = dir
	b.pushTail(tail)
	return true
}

// Attack queues an attack in dir. It fails if any action is already
// present. It does not mutate the tail.
func (b *Buffer) Attack(dir model.Direction) bool {
	if b.actionKind != ActionNone {
		return false
	}
	b.actionKind = ActionAttack
	b.actionDir = dir
	b.pushTail(b.Tail())
	return true
}

// Scan queues a scan in dir. It fails if any action is already present or
// if the head player lacks an antenna.
func (b *Buffer) Scan(dir model.Direction) bool {
	if b.actionKind != ActionNone {
		return false
	}
	if !b.head.Player.HasAntenna {
		return false
	}
	b.actionKind = ActionScan
	b.actionDir = dir
	b.pushTail(b.Tail())
	return true
}

// BuyBattery purchases a battery (1 iron, 1 osmium) if canBuy and the
// tail can afford it.
func (b *Buffer) BuyBattery() bool {
	if !b.CanBuy() {
		return false
	}
	tail := b.Tail()
	if tail.Inventory.Iron < batteryIronCost || tail.Inventory.Osmium < batteryOsmiumCost {
		return false
	}
	tail.Inventory.Iron -= batteryIronCost
	tail.Inventory.Osmium -= batteryOsmiumCost
	tail.HasBattery = true
	b.purchases = append(b.purchases, PurchaseBattery)
	b.pushTail(tail)
	return true
}

// BuyAntenna purchases an antenna (2 iron, 1 osmium) if canBuy and the
// tail can afford it.
func (b *Buffer) BuyAntenna() bool {
	if !b.CanBuy() {
		return false
	}
	tail := b.Tail()
	if tail.Inventory.Iron < antennaIronCost || tail.Inventory.Osmium < antennaOsmiumCost {
		return false
	}
	tail.Inventory.Iron -= antennaIronCost
	tail.Inventory.Osmium -= antennaOsmiumCost
	tail.HasAntenna = true
	b.purchases = append(b.purchases, PurchaseAntenna)
	b.pushTail(tail)
	return true
}

// UpgradeAbility raises kind by one level (to at most 3) if canBuy and
// the tail can afford the level-dependent cost. Reserve-osmium gating for
// the 2->3 transition is the controller's responsibility (it decides
// whether to call this at all); UpgradeAbility only enforces affordability
// and the level-3 ceiling.
func (b *Buffer) UpgradeAbility(kind AbilityKind) bool {
	if !b.CanBuy() {
		return false
	}
	tail := b.Tail()
	level := abilityLevel(&tail, kind)
	if level >= maxAbilityLevel {
		return false
	}
	iron, osmium := abilityCost(level)
	if tail.Inventory.Iron < iron || tail.Inventory.Osmium < osmium {
		return false
	}
	tail.Inventory.Iron -= iron
	tail.Inventory.Osmium -= osmium
	setAbilityLevel(&tail, kind, level+1)

	var purchase PurchaseKind
	switch kind {
	case AbilityMove:
		purchase = PurchaseMovement
	case AbilityDrill:
		purchase = PurchaseDrill
	case AbilityAttack:
		purchase = PurchaseAttack
	case AbilitySight:
		purchase = PurchaseSight
	}
	b.purchases = append(b.purchases, purchase)
	b.pushTail(tail)
	return true
}

// Heal spends 1 osmium to restore 5 HP (capped at 15), if canBuy, the
// tail has osmium to spend, and the tail's HP is below 15.
func (b *Buffer) Heal() bool {
	if !b.CanBuy() {
		return false
	}
	tail := b.Tail()
	if tail.HP >= maxHP {
		return false
	}
	if tail.Inventory.Osmium < healOsmiumCost {
		return false
	}
	tail.Inventory.Osmium -= healOsmiumCost
	tail.HP += healAmount
	if tail.HP > maxHP {
		tail.HP = maxHP
	}
	b.purchases = append(b.purchases, PurchaseHeal)
	b.pushTail(tail)
	return true
}

// WouldExceedOsmiumReserve reports whether upgrading kind from its current
// tail level to the next one would leave tail osmium below reserve. It
// performs no mutation; it exists so the controller can gate the 2->3
// ("optional") ability transitions per the osmium-reserve invariant
// without duplicating the cost table here.
func (b *Buffer) WouldExceedOsmiumReserve(kind AbilityKind, reserve int) bool {
	tail := b.Tail()
	level := abilityLevel(&tail, kind)
	_, osmium := abilityCost(level)
	return tail.Inventory.Osmium-osmium < reserve
}
