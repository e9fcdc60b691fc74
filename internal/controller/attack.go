package controller

import "github.com/empireu/daleks-go/internal/model"

// attackDirection simulates the ray-cast the server would perform for an
// attack from pos: it walks each cardinal direction through Dirt tiles
// up to attackRange steps, looking for a robot. Any non-Dirt, non-robot
// tile blocks the ray before it can reach a robot (§4.5 Mining mode
// Execution).
func (c *Controller) attackDirection(pos model.Vector2D, attackRange int) (model.Direction, bool) {
	for _, d := range model.Directions() {
		cur := pos
		for step := 0; step < attackRange; step++ {
			cur = cur.Add(d.Step())
			if !c.tm.InBounds(cur) {
				break
			}
			t := c.tm.Known(cur)
			if t.IsRobot() {
				return d, true
			}
			if t != model.Dirt {
				break
			}
		}
	}
	return model.DirUp, false
}

// recordAttack appends an attack attempt to both the cumulative and
// this-round attack logs.
func (c *Controller) recordAttack(dir model.Direction, round int) {
	ev := attackEvent{Dir: dir, Round: round}
	c.attacksLog = append(c.attacksLog, ev)
	c.attacksThisTurn = append(c.attacksThisTurn, ev)
}
