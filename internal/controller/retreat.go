package controller

import (
	"github.com/empireu/daleks-go/internal/command"
	"github.com/empireu/daleks-go/internal/diagnostics"
	"github.com/empireu/daleks-go/internal/model"
)

// cornerOffsets lists the four diagonal corners around an enemy box in
// the fixed order the anti-box tactic breaks ties by (§4.5 Retreat mode,
// §8 scenario 6: "choice is deterministic by canAccess order then
// distance").
var cornerOffsets = []model.Vector2D{
	{X: -1, Y: 1},
	{X: 1, Y: 1},
	{X: -1, Y: -1},
	{X: 1, Y: -1},
}

// runRetreat is the §4.5 Retreat mode: head for the map centre (or a
// fallback point if the centre itself is unreachable or boxed-in enemy
// territory), preferring an attack when safe to and prioritising the
// step itself when acid is about to submerge the player.
func (c *Controller) runRetreat(buf *command.Buffer, frame *diagnostics.LogFrame) {
	player := buf.Head().Player
	target := c.retreatTarget(player.Position)
	acidCritical := c.isAcidCritical(player.Position)
	frame.Info("retreat: target %v, acid-critical=%v", target, acidCritical)

	atkDir, canAttack := c.attackDirection(player.Position, player.Attack())

	switch {
	case canAttack && !acidCritical:
		if buf.Attack(atkDir) {
			c.recordAttack(atkDir, buf.Head().Round)
		}
		if path := c.pathOrNil(player.Position, target); path != nil {
			c.stepToward(buf, path, false, false)
		}

	case canAttack && acidCritical:
		if path := c.pathOrNil(player.Position, target); path != nil {
			c.stepToward(buf, path, true, true)
		}

	default:
		stepped := false
		if path := c.pathOrNil(player.Position, target); path != nil {
			res := c.stepToward(buf, path, true, true)
			stepped = res.Moved || res.Mined
		}
		if !stepped {
			atkDir2, canAttack2 := c.attackDirection(buf.Tail().Position, player.Attack())
			if canAttack2 {
				if buf.Attack(atkDir2) {
					c.recordAttack(atkDir2, buf.Head().Round)
				}
			} else if buf.Tail().Position != target {
				dir := buf.Tail().Position.DirectionTo(target)
				buf.Move(dir)
				buf.Mine(dir)
			}
		}
	}

	c.maybeFormSelfBox(buf, target, player)
}

// maybeFormSelfBox applies the "on reaching the target" priority: attack
// if still possible, otherwise wall yourself in with a cobble placement.
func (c *Controller) maybeFormSelfBox(buf *command.Buffer, target model.Vector2D, player model.Player) {
	if buf.Tail().Position != target || buf.ActionKind() != command.ActionNone {
		return
	}

	if dir, ok := c.attackDirection(buf.Tail().Position, player.Attack()); ok {
		if buf.Attack(dir) {
			c.recordAttack(dir, buf.Head().Round)
		}
		return
	}

	for _, d := range model.Directions() {
		n := buf.Tail().Position.Add(d.Step())
		if c.tm.InBounds(n) && c.tm.Known(n).IsWalkable() {
			if buf.Place(d) {
				return
			}
		}
	}
}

// retreatTarget is the map centre, adjusted by the §4.5 cascade: routed
// around an unbreakable centre, or redirected to an enemy-box corner
// when the centre is occupied by a robot walled in on all four sides.
func (c *Controller) retreatTarget(player model.Vector2D) model.Vector2D {
	centre := model.Vector2D{X: c.gridSize.X / 2, Y: c.gridSize.Y / 2}

	if c.tm.Known(centre).IsUnbreakable() {
		return c.nearestOpenFrom(centre)
	}

	if c.tm.Known(centre).IsRobot() && c.isEnemyBox(centre) {
		if corner, ok := c.pickCorner(centre, player); ok {
			return corner
		}
	}

	return centre
}

// isEnemyBox reports whether all four 4-neighbours of centre are
// non-walkable, i.e. an enemy has walled themselves in.
func (c *Controller) isEnemyBox(centre model.Vector2D) bool {
	for _, d := range model.Directions() {
		if c.tm.Known(centre.Add(d.Step())).IsWalkable() {
			return false
		}
	}
	return true
}

// pickCorner returns the reachable, non-unbreakable diagonal corner of
// centre closest to player, breaking ties by cornerOffsets order.
func (c *Controller) pickCorner(centre, player model.Vector2D) (model.Vector2D, bool) {
	best := model.Vector2D{}
	bestDist := -1
	found := false

	for _, o := range cornerOffsets {
		corner := centre.Add(o)
		if !c.tm.InBounds(corner) {
			continue
		}
		if c.tm.Known(corner).IsUnbreakable() {
			continue
		}
		if !c.tm.CanAccess(player, corner) {
			continue
		}
		d := player.SquaredEuclidean(corner)
		if !found || d < bestDist {
			bestDist = d
			best = corner
			found = true
		}
	}
	return best, found
}

// nearestOpenFrom does a breadth-first sweep out from start across every
// grid neighbour (ignoring walkability while expanding) and returns the
// nearest walkable tile, however far it is. Only when no tile in the grid
// is walkable does it return the nearest breakable tile instead, and start
// itself when every tile is unbreakable.
func (c *Controller) nearestOpenFrom(start model.Vector2D) model.Vector2D {
	visited := map[model.Vector2D]bool{start: true}
	queue := []model.Vector2D{start}

	var firstBreakable model.Vector2D
	haveBreakable := false

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		t := c.tm.Known(p)
		if !t.IsUnbreakable() {
			if t.IsWalkable() {
				return p
			}
			if !haveBreakable {
				firstBreakable = p
				haveBreakable = true
			}
		}

		for _, n := range c.tm.Neighbours4(p) {
			if visited[n] {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	if haveBreakable {
		return firstBreakable
	}
	return start
}

// isAcidCritical reports whether any 4-neighbour of pos is acid — the
// retreat routine treats this as urgent enough to drop the attack
// priority in favour of the step (§4.5 Retreat mode).
func (c *Controller) isAcidCritical(pos model.Vector2D) bool {
	for _, n := range c.tm.Neighbours4(pos) {
		if c.tm.Known(n) == model.Acid {
			return true
		}
	}
	return false
}
