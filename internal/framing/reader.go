package framing

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/empireu/daleks-go/internal/model"
)

// ReaderFraming is the minimal synchronous Framing: it reads observation
// text from an io.Reader and writes command strings to an io.Writer, one
// round at a time, with no concurrency. It is the adapter used by
// cmd/bot for file-replay and stdin/stdout driving, and by tests.
type ReaderFraming struct {
	base
	br    *bufio.Reader
	w     io.Writer
	round int
}

// NewReaderFraming creates a ReaderFraming over in/out.
func NewReaderFraming(in io.Reader, out io.Writer) *ReaderFraming {
	return &ReaderFraming{
		base: newBase(),
		br:   bufio.NewReader(in),
		w:    out,
	}
}

// Read pulls exactly one round's worth of lines from the underlying
// reader — the header, its grid rows, and the three trailer lines — and
// hands the composed text to model.ParseSnapshot. Reading a fixed,
// self-delimited slice up front (rather than letting ParseSnapshot's own
// bufio.Scanner read directly off the shared stream) avoids losing
// read-ahead bytes across rounds, since a new Scanner is constructed on
// every call.
func (f *ReaderFraming) Read(ctx context.Context) (*model.Snapshot, error) {
	header, err := f.br.ReadString('\n')
	if err != nil && header == "" {
		return nil, err
	}
	width, _, err := parseHeaderDims(header)
	if err != nil {
		return nil, fmt.Errorf("framing: reading round %d header: %w", f.round, err)
	}
	_ = width

	var sb strings.Builder
	sb.WriteString(header)
	if !strings.HasSuffix(header, "\n") {
		sb.WriteByte('\n')
	}

	_, height, err := parseHeaderDims(header)
	if err != nil {
		return nil, err
	}
	for i := 0; i < height; i++ {
		row, err := f.br.ReadString('\n')
		if err != nil && row == "" {
			return nil, fmt.Errorf("framing: reading round %d grid row %d: %w", f.round, i, err)
		}
		sb.WriteString(row)
		if !strings.HasSuffix(row, "\n") {
			sb.WriteByte('\n')
		}
	}
	for _, name := range []string{"player position", "player stats", "inventory"} {
		line, err := f.br.ReadString('\n')
		if err != nil && line == "" {
			return nil, fmt.Errorf("framing: reading round %d %s: %w", f.round, name, err)
		}
		sb.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			sb.WriteByte('\n')
		}
	}

	snap, err := model.ParseSnapshot(f.round, strings.NewReader(sb.String()))
	if err != nil {
		return nil, err
	}
	f.capture(snap)
	return snap, nil
}

// Submit writes command as a line and advances the round counter.
func (f *ReaderFraming) Submit(ctx context.Context, command string) error {
	if _, err := fmt.Fprintln(f.w, command); err != nil {
		return err
	}
	f.round++
	return nil
}

func parseHeaderDims(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected 2 integers, got %d", len(fields))
	}
	w, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	h, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}
