package config_test

import (
	"testing"

	"github.com/empireu/daleks-go/internal/config"
)

func TestResolve_DefaultIsValid(t *testing.T) {
	if _, err := config.Default().Resolve(); err != nil {
		t.Fatalf("Default() must resolve cleanly, got %v", err)
	}
}

func TestResolve_RejectsExplicitBattery(t *testing.T) {
	cfg := config.Default()
	cfg.UpgradeList = []string{"drill", "battery"}
	if _, err := cfg.Resolve(); err == nil {
		t.Fatal("expected an error for an explicit battery upgrade entry")
	}
}

func TestResolve_RejectsDuplicateAntenna(t *testing.T) {
	cfg := config.Default()
	cfg.UpgradeList = []string{"antenna", "drill", "antenna"}
	if _, err := cfg.Resolve(); err == nil {
		t.Fatal("expected an error for a duplicate antenna entry")
	}
}

func TestResolve_RejectsNegativeDiagonalPenalty(t *testing.T) {
	cfg := config.Default()
	cfg.DiagonalPenalty = -1
	if _, err := cfg.Resolve(); err == nil {
		t.Fatal("expected an error for a negative diagonal penalty")
	}
}

func TestResolve_RejectsUnknownTileKind(t *testing.T) {
	cfg := config.Default()
	cfg.CostMap["magma"] = 1.0
	if _, err := cfg.Resolve(); err == nil {
		t.Fatal("expected an error for an unknown cost_map tile kind")
	}
}

func TestResolve_SpottedPlayerHorizonDefaultsWhenUnset(t *testing.T) {
	cfg := config.Default()
	cfg.SpottedPlayerHorizon = 0
	resolved, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.SpottedPlayerHorizon != 5 {
		t.Errorf("expected default horizon of 5, got %d", resolved.SpottedPlayerHorizon)
	}
}
