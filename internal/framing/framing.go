// Package framing implements the match framing abstraction (C8): the
// collaborator contract that yields one Snapshot per round and accepts a
// serialised command string back, plus the basePosition/gridSize capture
// the spec assigns to it. Network transport is explicitly out of scope
// (§1 Non-goals); the two implementations here are in-process adapters
// over an io.Reader/io.Writer pair, sufficient to drive the core
// end-to-end without opening a socket.
package framing

import (
	"context"

	"github.com/google/uuid"

	"github.com/empireu/daleks-go/internal/model"
)

// Framing is the abstract source of snapshots and sink of commands a
// match drives the decision core through.
type Framing interface {
	// Read blocks until the next round's snapshot is available.
	Read(ctx context.Context) (*model.Snapshot, error)

	// Submit commits the serialised command string for the round just
	// read and advances to the next round.
	Submit(ctx context.Context, command string) error

	// MatchID is a random identifier generated when the Framing is
	// created. The controller keys its diagnostics records by its own,
	// separately generated match ID, not by this one.
	MatchID() uuid.UUID

	// BasePosition returns the first snapshot's player position, and
	// whether it has been captured yet (false before the first Read).
	BasePosition() (model.Vector2D, bool)

	// GridSize returns the first snapshot's grid dimensions, and whether
	// it has been captured yet.
	GridSize() (model.Vector2D, bool)
}

// base holds the capture state shared by every Framing implementation.
type base struct {
	matchID  uuid.UUID
	basePos  model.Vector2D
	gridSize model.Vector2D
	captured bool
}

func newBase() base {
	return base{matchID: uuid.New()}
}

func (b *base) capture(snap *model.Snapshot) {
	if b.captured {
		return
	}
	b.basePos = snap.Player.Position
	b.gridSize = model.Vector2D{X: snap.Grid.Width(), Y: snap.Grid.Height()}
	b.captured = true
}

func (b *base) MatchID() uuid.UUID { return b.matchID }

func (b *base) BasePosition() (model.Vector2D, bool) { return b.basePos, b.captured }

func (b *base) GridSize() (model.Vector2D, bool) { return b.gridSize, b.captured }
