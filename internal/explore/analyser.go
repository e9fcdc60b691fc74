package explore

import (
	"github.com/empireu/daleks-go/internal/model"
	"github.com/empireu/daleks-go/internal/pathing"
)

// Mode selects which cost formula SelectTarget scores frontiers with.
type Mode int

const (
	// ClosestBase is used before the bot has a battery: it biases targets
	// toward the base, since a battery run back will be needed soon.
	ClosestBase Mode = iota
	// Closest is used after the bot has a battery: it drops the base term
	// entirely and scores purely on distance from the player.
	Closest
)

// Multipliers is the (k_player, k_base) pair from §6's
// exploreCostMultipliers configuration.
type Multipliers struct {
	KPlayer float64
	KBase   float64
}

// DefaultMultipliers is the documented fallback used when a mode's entry
// is absent from configuration (§9 open question: the source has shown
// both (1.0, 2.5) and (1.0, 1.0) across revisions; (1.0, 2.5) is the
// fallback this implementation documents and uses).
var DefaultMultipliers = Multipliers{KPlayer: 1.0, KBase: 2.5}

// Analyser extracts frontier tiles from a TileMap and scores them for
// exploration target selection.
type Analyser struct {
	tm                *pathing.TileMap
	multipliers       map[Mode]Multipliers
	utilityMultiplier float64
}

// NewAnalyser creates an Analyser bound to tm. multipliers may omit either
// mode; DefaultMultipliers is substituted for missing entries.
func NewAnalyser(tm *pathing.TileMap, multipliers map[Mode]Multipliers, utilityMultiplier float64) *Analyser {
	resolved := map[Mode]Multipliers{
		Closest:     DefaultMultipliers,
		ClosestBase: DefaultMultipliers,
	}
	for mode, m := range multipliers {
		resolved[mode] = m
	}
	return &Analyser{tm: tm, multipliers: resolved, utilityMultiplier: utilityMultiplier}
}

// Frontiers returns every Dirt tile adjacent to at least one Unknown tile
// and reachable from player, per the §3 frontier-edge definition.
func (a *Analyser) Frontiers(player model.Vector2D) []model.Vector2D {
	var frontiers []model.Vector2D
	for y := 0; y < a.tm.Height(); y++ {
		for x := 0; x < a.tm.Width(); x++ {
			p := model.Vector2D{X: x, Y: y}
			if a.tm.Known(p) != model.Dirt {
				continue
			}
			if !a.hasUnknownNeighbour(p) {
				continue
			}
			if !a.tm.CanAccess(player, p) {
				continue
			}
			frontiers = append(frontiers, p)
		}
	}
	return frontiers
}

func (a *Analyser) hasUnknownNeighbour(p model.Vector2D) bool {
	for _, n := range a.tm.Neighbours4(p) {
		if a.tm.Known(n) == model.Unknown {
			return true
		}
	}
	return false
}

// SelectTarget returns the frontier minimising cost(f) - utility(f), or
// (zero, false) if there are no reachable frontiers.
func (a *Analyser) SelectTarget(player, base model.Vector2D, mode Mode, moveSpeed, sightLevel int) (model.Vector2D, bool) {
	frontiers := a.Frontiers(player)
	if len(frontiers) == 0 {
		return model.Vector2D{}, false
	}

	speed := float64(moveSpeed)
	if speed <= 0 {
		speed = 1
	}
	mult := a.multipliers[mode]
	offsets := SightOffsets(sightLevel)

	bestScore := 0.0
	best := frontiers[0]
	haveBest := false

	for _, f := range frontiers {
		cost := mult.KPlayer * player.Euclidean(f) / speed
		if mode == ClosestBase {
			cost += mult.KBase * base.Euclidean(f) / speed
		}
		utility := a.utilityMultiplier * float64(a.unknownVisibleFrom(f, offsets))
		score := cost - utility

		if !haveBest || score < bestScore {
			bestScore = score
			best = f
			haveBest = true
		}
	}
	return best, true
}

func (a *Analyser) unknownVisibleFrom(center model.Vector2D, offsets []model.Vector2D) int {
	count := 0
	for _, o := range offsets {
		p := center.Add(o)
		if !a.tm.InBounds(p) {
			continue
		}
		if a.tm.Known(p) == model.Unknown {
			count++
		}
	}
	return count
}
