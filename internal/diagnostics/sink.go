package diagnostics

import (
	"context"

	"github.com/google/uuid"
)

// Sink persists a round's LogFrame for offline review. It must never be
// consulted by the decision core; a Sink failure is logged through the
// process logger and otherwise ignored.
type Sink interface {
	Record(ctx context.Context, matchID uuid.UUID, frame *LogFrame) error
}

// NopSink discards every frame. It is the default when no persistence
// sink is configured.
type NopSink struct{}

func (NopSink) Record(ctx context.Context, matchID uuid.UUID, frame *LogFrame) error {
	return nil
}
