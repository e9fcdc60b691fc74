package controller

import (
	"github.com/empireu/daleks-go/internal/command"
	"github.com/empireu/daleks-go/internal/model"
)

// stepResult reports what stepToward actually accomplished, so callers
// can decide whether to fall through to an attack or a direct
// move-and-mine fallback.
type stepResult struct {
	Moved bool
	Mined bool
}

// stepToward walks at most the player's movement budget along path
// (which includes the current position as path[0]), applying the §4.5
// "Step-toward-target" policy:
//
//   - If the next cell is non-walkable: on the very first step, queue a
//     Mine in that direction when obstacleMining is enabled; either way,
//     the walk stops here.
//   - Otherwise: move into the cell; if the cell after that is
//     non-walkable and mineFast is enabled, also queue a Mine from the
//     new cell toward that non-walkable cell.
func (c *Controller) stepToward(buf *command.Buffer, path []model.Vector2D, obstacleMining, mineFast bool) stepResult {
	var result stepResult
	if len(path) < 2 {
		return result
	}

	for i := 1; i < len(path); i++ {
		cur := buf.Tail().Position
		next := path[i]
		dir := cur.DirectionTo(next)

		if !c.tm.Known(next).IsWalkable() {
			if i == 1 && obstacleMining {
				if buf.Mine(dir) {
					result.Mined = true
				}
			}
			break
		}

		if !buf.Move(dir) {
			break
		}
		result.Moved = true

		if i+1 < len(path) {
			after := path[i+1]
			if !c.tm.Known(after).IsWalkable() && mineFast {
				afterDir := next.DirectionTo(after)
				if buf.Mine(afterDir) {
					result.Mined = true
				}
			}
		}
	}

	return result
}

// pathOrNil finds a path from from to to, returning nil when unreachable
// instead of the pathing package's (nil, false) pair, for terser call
// sites.
func (c *Controller) pathOrNil(from, to model.Vector2D) []model.Vector2D {
	path, ok := c.tm.FindPath(from, to)
	if !ok {
		return nil
	}
	return path
}
