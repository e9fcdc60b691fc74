package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/empireu/daleks-go/internal/config"
	"github.com/empireu/daleks-go/internal/controller"
	"github.com/empireu/daleks-go/internal/diagnostics"
	"github.com/empireu/daleks-go/internal/framing"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	async := flag.Bool("async", false, "use the one-round-ahead channel framing instead of synchronous reads")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Failed to load config from %s, using defaults: %v", *configPath, err)
		cfg = config.Default()
	}

	resolved, err := cfg.Resolve()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down bot...")
		cancel()
	}()

	var sink diagnostics.Sink = diagnostics.NopSink{}
	if pg, err := diagnostics.NewPostgresSink(ctx, resolved.PostgresURL); err != nil {
		log.Printf("Warning: failed to connect diagnostics sink: %v", err)
	} else if pg != nil {
		defer pg.Close()
		sink = pg
	}

	var f framing.Framing
	var closer interface{ Close() error }
	if *async {
		cf := framing.NewChannelFraming(ctx, os.Stdin, os.Stdout)
		f = cf
		closer = cf
	} else {
		f = framing.NewReaderFraming(os.Stdin, os.Stdout)
	}

	c := controller.New(resolved, sink)

	if err := run(ctx, f, c); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
		log.Fatalf("Bot loop exited with error: %v", err)
	}

	if closer != nil {
		if err := closer.Close(); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Warning: framing close: %v", err)
		}
	}

	log.Println("Bot exited")
}

// run drives the match round by round: read a snapshot, ask the
// controller for this round's command, submit it, repeat until the
// framing source is exhausted or ctx is cancelled.
func run(ctx context.Context, f framing.Framing, c *controller.Controller) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		snap, err := f.Read(ctx)
		if err != nil {
			return err
		}

		cmd, frame := c.Update(ctx, snap)
		log.Printf("round %d: mode=%v entries=%d", snap.Round, c.Mode(), len(frame.Entries))

		if err := f.Submit(ctx, cmd); err != nil {
			return fmt.Errorf("submitting round %d command: %w", snap.Round, err)
		}
	}
}
