package controller

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/empireu/daleks-go/internal/command"
	"github.com/empireu/daleks-go/internal/config"
	"github.com/empireu/daleks-go/internal/diagnostics"
	"github.com/empireu/daleks-go/internal/explore"
	"github.com/empireu/daleks-go/internal/model"
	"github.com/empireu/daleks-go/internal/pathing"
)

// Controller runs the per-round bot update loop (C7). It owns the
// persistent tile map (C5) and the exploration analyser (C6), which reads
// the tile map but never mutates it; every mutation to the shared map
// funnels through Controller methods, so no cyclic ownership is required.
type Controller struct {
	cfg  *config.Resolved
	sink diagnostics.Sink

	matchID uuid.UUID

	tm       *pathing.TileMap
	analyser *explore.Analyser

	initialized  bool
	basePosition model.Vector2D
	gridSize     model.Vector2D

	mode            Mode
	explorationMode explore.Mode

	discoveredTiles              map[model.Vector2D]struct{}
	undiscoveredMiningCandidates map[model.Vector2D]struct{}
	pendingOres                  map[model.Vector2D]model.TileType

	upgrades *upgradeQueue

	spottedPlayers map[model.Vector2D]spottedPlayer

	lastHP          int
	haveLastHP      bool
	damageLog       []damageEvent
	attacksLog      []attackEvent
	attacksThisTurn []attackEvent
}

// New creates a Controller against the given resolved configuration. sink
// may be diagnostics.NopSink{} to discard log frames.
func New(cfg *config.Resolved, sink diagnostics.Sink) *Controller {
	if sink == nil {
		sink = diagnostics.NopSink{}
	}
	return &Controller{
		cfg:            cfg,
		sink:           sink,
		matchID:        uuid.New(),
		mode:           ModeMining,
		pendingOres:    make(map[model.Vector2D]model.TileType),
		spottedPlayers: make(map[model.Vector2D]spottedPlayer),
		discoveredTiles: make(map[model.Vector2D]struct{}),
		upgrades:        newUpgradeQueue(cfg.UpgradeList),
	}
}

// Mode reports the bot's current tactical mode, for tests and host UIs.
func (c *Controller) Mode() Mode { return c.mode }

func (c *Controller) init(snap *model.Snapshot) {
	if c.initialized {
		return
	}
	c.basePosition = snap.Player.Position
	c.gridSize = model.Vector2D{X: snap.Grid.Width(), Y: snap.Grid.Height()}
	c.tm = pathing.NewTileMap(c.gridSize.X, c.gridSize.Y, c.cfg.CostMap, c.cfg.DiagonalPenalty)
	c.analyser = explore.NewAnalyser(c.tm, c.cfg.ExploreMultipliers, c.cfg.UtilityMultiplier)
	c.undiscoveredMiningCandidates = initialMiningCandidates(c.gridSize.X, c.gridSize.Y)
	c.explorationMode = explorationModeFromBattery(snap.Player.HasBattery)
	c.lastHP = snap.Player.HP
	c.haveLastHP = true
	c.initialized = true
}

// Update runs one round of the bot loop against snap and returns the
// serialised command string for the round, plus the round's diagnostic
// log frame.
func (c *Controller) Update(ctx context.Context, snap *model.Snapshot) (string, *diagnostics.LogFrame) {
	c.init(snap)

	frame := diagnostics.NewLogFrame(snap.Round)
	frame.Info("round %d: player at %v, hp=%d", snap.Round, snap.Player.Position, snap.Player.HP)

	c.tm.BeginFrame()
	c.attacksThisTurn = nil

	c.ingestVision(snap, frame)
	c.updateSpottedPlayers(snap, frame)
	c.applyEnemyOverrides(frame)
	c.updateDamageLog(snap, frame)

	c.decideMode(snap, frame)

	buf := command.NewBuffer(snap)

	frame.Push()
	switch c.mode {
	case ModeBuyingBattery:
		c.runBuyBattery(buf, frame)
	case ModeRetreating:
		c.runRetreat(buf, frame)
	default:
		c.runMining(buf, frame)
	}
	frame.Pop()

	c.runPurchases(snap, buf, frame)

	if c.sink != nil {
		if err := c.sink.Record(ctx, c.matchID, frame); err != nil {
			log.Printf("diagnostics: recording round %d: %v", snap.Round, err)
		}
	}

	return buf.Serialize(), frame
}
