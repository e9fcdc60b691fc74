package pathing

import "github.com/empireu/daleks-go/internal/model"

// costedKinds is every tile kind the cost table assigns a preference to.
// Kinds not present in a user-supplied table default to 0 before
// normalisation.
var costedKinds = []model.TileType{
	model.Dirt, model.Stone, model.Cobble, model.Bedrock,
	model.Iron, model.Osmium, model.Base, model.Acid, model.Unknown,
	model.Robot0, model.Robot1, model.Robot2, model.Robot3, model.Robot4,
}

// normalizeCosts fills in defaults for unset kinds and, if the resulting
// table has any negative entry, shifts every entry by the minimum so all
// edge weights stay non-negative. Negative user costs are therefore a
// preference (cheaper than neutral), never a literal negative edge.
func normalizeCosts(raw map[model.TileType]float64) map[model.TileType]float64 {
	out := make(map[model.TileType]float64, len(costedKinds))
	min := 0.0
	for _, k := range costedKinds {
		v := raw[k]
		out[k] = v
		if v < min {
			min = v
		}
	}
	if min < 0 {
		for k, v := range out {
			out[k] = v - min
		}
	}
	return out
}
