package framing_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/empireu/daleks-go/internal/framing"
	"github.com/empireu/daleks-go/internal/model"
)

func TestReaderFraming_ReadCapturesBaseAndGridSize(t *testing.T) {
	round0 := strings.Join([]string{
		"3 2",
		". . .",
		". E .",
		"1 1",
		"10 1 1 1 1 0 0",
		"0 0 0",
		"",
	}, "\n")

	var out bytes.Buffer
	f := framing.NewReaderFraming(strings.NewReader(round0), &out)

	snap, err := f.Read(context.Background())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if snap.Player.Position != (model.Vector2D{X: 1, Y: 1}) {
		t.Fatalf("unexpected player position: %v", snap.Player.Position)
	}

	base, ok := f.BasePosition()
	if !ok || base != (model.Vector2D{X: 1, Y: 1}) {
		t.Fatalf("expected base position (1,1), got %v (captured=%v)", base, ok)
	}
	grid, ok := f.GridSize()
	if !ok || grid != (model.Vector2D{X: 3, Y: 2}) {
		t.Fatalf("expected grid size (3,2), got %v (captured=%v)", grid, ok)
	}
}

func TestReaderFraming_SubmitAdvancesRound(t *testing.T) {
	round := strings.Join([]string{
		"1 1",
		".",
		"0 0",
		"1 1 1 1 1 0 0",
		"0 0 0",
		"",
	}, "\n")

	var out bytes.Buffer
	f := framing.NewReaderFraming(strings.NewReader(round+round), &out)

	if _, err := f.Read(context.Background()); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if err := f.Submit(context.Background(), "U L "); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got := out.String(); got != "U L \n" {
		t.Errorf("Submit wrote %q, want %q", got, "U L \n")
	}

	snap, err := f.Read(context.Background())
	if err != nil {
		t.Fatalf("second Read: %v", err)
	}
	if snap.Round != 1 {
		t.Errorf("expected the snapshot after Submit to carry round 1, got %d", snap.Round)
	}
}
