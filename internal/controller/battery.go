package controller

import (
	"github.com/empireu/daleks-go/internal/command"
	"github.com/empireu/daleks-go/internal/diagnostics"
	"github.com/empireu/daleks-go/internal/explore"
)

// runBuyBattery is the §4.5 Buy-battery mode: walk to base and, on
// arrival, spend the battery purchase and switch exploration to Closest
// (the base term in the cost formula is no longer needed once a battery
// run is no longer looming).
func (c *Controller) runBuyBattery(buf *command.Buffer, frame *diagnostics.LogFrame) {
	player := buf.Head().Player
	frame.Info("buying battery: heading to base %v", c.basePosition)

	if path := c.pathOrNil(player.Position, c.basePosition); path != nil {
		c.stepToward(buf, path, true, true)
	}

	if buf.Tail().Position == c.basePosition {
		if buf.BuyBattery() {
			c.explorationMode = explore.Closest
			frame.Info("battery purchased; switching exploration mode to closest")
		}
	}
}
