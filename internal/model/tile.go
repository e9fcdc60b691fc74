package model

import "fmt"

// TileType is the closed set of tile kinds the map parser recognises.
type TileType int

const (
	Unknown TileType = iota
	Dirt
	Stone
	Cobble
	Bedrock
	Iron
	Osmium
	Base
	Acid
	Robot0
	Robot1
	Robot2
	Robot3
	Robot4
)

var tileWireChars = map[byte]TileType{
	'.': Dirt,
	'X': Stone,
	'A': Cobble,
	'B': Bedrock,
	'C': Iron,
	'D': Osmium,
	'E': Base,
	'F': Acid,
	'?': Unknown,
	'0': Robot0,
	'1': Robot1,
	'2': Robot2,
	'3': Robot3,
	'4': Robot4,
}

var tileToWireChar = func() map[TileType]byte {
	m := make(map[TileType]byte, len(tileWireChars))
	for c, t := range tileWireChars {
		m[t] = c
	}
	return m
}()

// ParseTileType decodes a single wire character into a TileType.
func ParseTileType(c byte) (TileType, error) {
	t, ok := tileWireChars[c]
	if !ok {
		return Unknown, fmt.Errorf("model: unknown tile character %q", c)
	}
	return t, nil
}

// WireChar returns the wire character this tile type is encoded as.
func (t TileType) WireChar() byte {
	c, ok := tileToWireChar[t]
	if !ok {
		panic(fmt.Sprintf("model: tile type %d has no wire encoding", t))
	}
	return c
}

// IsUnbreakable reports whether the tile can never be mined through.
func (t TileType) IsUnbreakable() bool {
	return t == Bedrock
}

// IsWalkable reports whether a robot may occupy this tile without mining
// it first.
func (t TileType) IsWalkable() bool {
	switch t {
	case Dirt, Base, Acid, Unknown:
		return true
	default:
		return false
	}
}

// IsRobot reports whether this tile type represents an enemy robot.
func (t TileType) IsRobot() bool {
	switch t {
	case Robot0, Robot1, Robot2, Robot3, Robot4:
		return true
	default:
		return false
	}
}

func (t TileType) String() string {
	return string(t.WireChar())
}
