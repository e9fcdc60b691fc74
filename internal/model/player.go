package model

// Inventory holds the three ore currencies a player carries.
type Inventory struct {
	Cobble int
	Iron   int
	Osmium int
}

// Player is the robot's own state as reported in a snapshot.
type Player struct {
	Position Position

	HP int

	// Ability levels, each in {1, 2, 3}.
	MoveLevel  int
	DrillLevel int
	AttackLevel int
	SightLevel int

	HasAntenna bool
	HasBattery bool

	Inventory Inventory
}

// Position is an alias of Vector2D used where the field name "position"
// reads better than a bare vector.
type Position = Vector2D

// Movement is the number of moves the player may make this round. The
// spec calls this "player.movement"; it is carried by the move ability
// level directly (1:1 in the absence of further upgrades), matching the
// wire field order.
func (p Player) Movement() int {
	return p.MoveLevel
}

// Drill is the number of Mine sub-actions the player may issue this round.
func (p Player) Drill() int {
	return p.DrillLevel
}

// Attack is the player's attack range, in tiles.
func (p Player) Attack() int {
	return p.AttackLevel
}

// Sight is the player's sight level, in {1, 2, 3}.
func (p Player) Sight() int {
	return p.SightLevel
}
