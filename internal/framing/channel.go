package framing

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/empireu/daleks-go/internal/model"
)

// ChannelFraming is the asynchronous Framing §5 describes: a reader
// goroutine may parse the next snapshot while the caller is still
// building and submitting the previous round's command, bounded by a
// one-slot (capacity-1) channel in each direction so the reader can
// never get more than one round ahead. Cancellation is cooperative via
// the errgroup's derived context, matching "the framing collaborator may
// be cancelled between rounds" (§5) — a cancellation in flight during a
// blocked channel send/receive unblocks immediately rather than waiting
// for the next round boundary.
type ChannelFraming struct {
	base

	inner *ReaderFraming

	snapshots chan readResult
	commands  chan string

	group *errgroup.Group
}

type readResult struct {
	snap *model.Snapshot
	err  error
}

// NewChannelFraming starts the reader and writer goroutines over in/out
// and returns once they are running. Call Close to stop them.
func NewChannelFraming(ctx context.Context, in io.Reader, out io.Writer) *ChannelFraming {
	group, gctx := errgroup.WithContext(ctx)
	cf := &ChannelFraming{
		base:      newBase(),
		inner:     NewReaderFraming(in, out),
		snapshots: make(chan readResult, 1),
		commands:  make(chan string, 1),
		group:     group,
	}

	group.Go(func() error { return cf.readLoop(gctx) })
	group.Go(func() error { return cf.writeLoop(gctx) })

	return cf
}

func (cf *ChannelFraming) readLoop(ctx context.Context) error {
	for {
		snap, err := cf.inner.Read(ctx)
		select {
		case cf.snapshots <- readResult{snap: snap, err: err}:
			if err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (cf *ChannelFraming) writeLoop(ctx context.Context) error {
	for {
		select {
		case cmd := <-cf.commands:
			if err := cf.inner.Submit(ctx, cmd); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Read blocks until the reader goroutine has a snapshot ready, or ctx is
// cancelled.
func (cf *ChannelFraming) Read(ctx context.Context) (*model.Snapshot, error) {
	select {
	case r := <-cf.snapshots:
		if r.err != nil {
			return nil, r.err
		}
		cf.capture(r.snap)
		return r.snap, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Submit hands command to the writer goroutine. It blocks only if the
// previous round's command has not yet drained from the one-slot queue.
func (cf *ChannelFraming) Submit(ctx context.Context, command string) error {
	select {
	case cf.commands <- command:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close waits for the reader/writer goroutines to stop; it does not cancel
// them itself. They stop once the ctx passed to NewChannelFraming is
// cancelled or either loop fails. Close returns the first error either
// goroutine encountered, or nil if that error is context.Canceled.
func (cf *ChannelFraming) Close() error {
	err := cf.group.Wait()
	if err == context.Canceled {
		return nil
	}
	return err
}
