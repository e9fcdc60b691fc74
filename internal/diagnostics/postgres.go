package diagnostics

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSink appends each round's LogFrame to a single table, one row
// per round per match. It persists diagnostics only — never configuration
// or match/game state, which remain out of scope (§1 Non-goals).
type PostgresSink struct {
	pool *pgxpool.Pool
}

// NewPostgresSink opens a connection pool and ensures the log table
// exists. An empty connString disables the sink: callers get a nil
// *PostgresSink and should fall back to NopSink.
func NewPostgresSink(ctx context.Context, connString string) (*PostgresSink, error) {
	if connString == "" {
		return nil, nil
	}

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	s := &PostgresSink{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Println("diagnostics: connected to PostgreSQL log sink")
	return s, nil
}

func (s *PostgresSink) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS bot_log_frames (
			match_id   uuid        NOT NULL,
			round      integer     NOT NULL,
			entries    jsonb       NOT NULL,
			recorded_at timestamptz NOT NULL DEFAULT now(),
			PRIMARY KEY (match_id, round)
		)
	`)
	return err
}

// Record inserts the round's entries as a single jsonb row.
func (s *PostgresSink) Record(ctx context.Context, matchID uuid.UUID, frame *LogFrame) error {
	payload, err := json.Marshal(frame.Entries)
	if err != nil {
		return fmt.Errorf("diagnostics: marshaling log frame: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO bot_log_frames (match_id, round, entries) VALUES ($1, $2, $3)
		 ON CONFLICT (match_id, round) DO UPDATE SET entries = EXCLUDED.entries`,
		matchID, frame.Round, payload,
	)
	return err
}

// Close releases the underlying connection pool.
func (s *PostgresSink) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}
