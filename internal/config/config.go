// Package config loads and validates the bot's §6 configuration: cost
// preferences, exploration multipliers, the upgrade queue, and the
// retreat/reserve thresholds.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/empireu/daleks-go/internal/explore"
	"github.com/empireu/daleks-go/internal/model"
)

// UpgradeKind is one entry in the configured upgrade queue. Battery is
// included only so Resolve can reject it by name (§7: "explicit Battery"
// is a construction-time configuration error) — it never appears in a
// Resolved upgrade list.
type UpgradeKind int

const (
	UpgradeMove UpgradeKind = iota
	UpgradeDrill
	UpgradeAttack
	UpgradeSight
	UpgradeAntenna
	upgradeBattery
)

var upgradeNames = map[string]UpgradeKind{
	"movement": UpgradeMove,
	"drill":    UpgradeDrill,
	"attack":   UpgradeAttack,
	"sight":    UpgradeSight,
	"antenna":  UpgradeAntenna,
	"battery":  upgradeBattery,
}

// MultiplierConfig is the YAML-facing (k_player, k_base) pair for one
// exploration mode.
type MultiplierConfig struct {
	KPlayer float64 `yaml:"k_player"`
	KBase   float64 `yaml:"k_base"`
}

// ExploreConfig is the YAML-facing exploreCostMultipliers block.
type ExploreConfig struct {
	Closest     *MultiplierConfig `yaml:"closest"`
	ClosestBase *MultiplierConfig `yaml:"closest_base"`
}

// BalanceConfig centralizes the reserve and retreat thresholds for easy
// tuning.
type BalanceConfig struct {
	ReserveOsmium int `yaml:"reserve_osmium"`
	RoundsMargin  int `yaml:"rounds_margin"`
	AcidRounds    int `yaml:"acid_rounds"`
}

// Config is the YAML-facing configuration document (§6).
type Config struct {
	Explore              ExploreConfig      `yaml:"explore"`
	UtilityMultiplier    float64            `yaml:"utility_multiplier"`
	CostMap              map[string]float64 `yaml:"cost_map"`
	DiagonalPenalty      float64            `yaml:"diagonal_penalty"`
	UpgradeList          []string           `yaml:"upgrade_list"`
	PlayerOverrideCost   float64            `yaml:"player_override_cost"`
	Balance              BalanceConfig      `yaml:"balance"`
	SpottedPlayerHorizon int                `yaml:"spotted_player_horizon"`
	Database             DatabaseConfig     `yaml:"database"`
}

// DatabaseConfig is the optional diagnostics sink connection string. An
// empty PostgresURL disables the Postgres sink; per-round log frames are
// still built and returned by the controller.
type DatabaseConfig struct {
	PostgresURL string `yaml:"postgres_url"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a reasonable configuration for local testing and as a
// base to override fields on.
func Default() *Config {
	return &Config{
		Explore: ExploreConfig{
			Closest:     &MultiplierConfig{KPlayer: 1.0, KBase: 0.0},
			ClosestBase: &MultiplierConfig{KPlayer: 1.0, KBase: 2.5},
		},
		UtilityMultiplier: 1.0,
		CostMap: map[string]float64{
			"dirt":   1.0,
			"stone":  3.0,
			"cobble": 2.0,
			"iron":   0.5,
			"osmium": 0.5,
			"base":   0.0,
			"acid":   5.0,
		},
		DiagonalPenalty:    0.5,
		UpgradeList:        []string{"drill", "sight", "movement", "attack"},
		PlayerOverrideCost: 10.0,
		Balance: BalanceConfig{
			ReserveOsmium: 2,
			RoundsMargin:  5,
			AcidRounds:    500,
		},
		SpottedPlayerHorizon: 5,
		Database: DatabaseConfig{
			PostgresURL: "",
		},
	}
}

// Resolved is the typed, validated configuration the rest of the bot
// consumes.
type Resolved struct {
	ExploreMultipliers   map[explore.Mode]explore.Multipliers
	UtilityMultiplier    float64
	CostMap              map[model.TileType]float64
	DiagonalPenalty      float64
	UpgradeList          []UpgradeKind
	PlayerOverrideCost   float64
	ReserveOsmium        int
	RoundsMargin         int
	AcidRounds           int
	SpottedPlayerHorizon int
	PostgresURL          string
}

var tileNames = map[string]model.TileType{
	"dirt":    model.Dirt,
	"stone":   model.Stone,
	"cobble":  model.Cobble,
	"bedrock": model.Bedrock,
	"iron":    model.Iron,
	"osmium":  model.Osmium,
	"base":    model.Base,
	"acid":    model.Acid,
	"unknown": model.Unknown,
}

// Resolve validates c and converts it into a Resolved configuration. It
// fails at construction, never at round-time, for the configuration
// errors §7 names: a duplicate Antenna entry, an explicit Battery entry,
// or a negative diagonal penalty.
func (c *Config) Resolve() (*Resolved, error) {
	if c.DiagonalPenalty < 0 {
		return nil, fmt.Errorf("config: diagonal_penalty must be >= 0, got %v", c.DiagonalPenalty)
	}
	if c.PlayerOverrideCost < 0 {
		return nil, fmt.Errorf("config: player_override_cost must be >= 0, got %v", c.PlayerOverrideCost)
	}
	if c.Balance.ReserveOsmium < 0 {
		return nil, fmt.Errorf("config: balance.reserve_osmium must be >= 0, got %v", c.Balance.ReserveOsmium)
	}
	if c.Balance.RoundsMargin < 0 {
		return nil, fmt.Errorf("config: balance.rounds_margin must be >= 0, got %v", c.Balance.RoundsMargin)
	}

	costMap := make(map[model.TileType]float64, len(c.CostMap))
	for name, v := range c.CostMap {
		t, ok := tileNames[name]
		if !ok {
			return nil, fmt.Errorf("config: cost_map: unknown tile kind %q", name)
		}
		costMap[t] = v
	}

	upgradeList := make([]UpgradeKind, 0, len(c.UpgradeList))
	sawAntenna := false
	for _, name := range c.UpgradeList {
		kind, ok := upgradeNames[name]
		if !ok {
			return nil, fmt.Errorf("config: upgrade_list: unknown upgrade kind %q", name)
		}
		if kind == upgradeBattery {
			return nil, fmt.Errorf("config: upgrade_list: %q is not allowed; battery is bought by buy-battery mode, not queued as an upgrade", name)
		}
		if kind == UpgradeAntenna {
			if sawAntenna {
				return nil, fmt.Errorf("config: upgrade_list: antenna may appear at most once")
			}
			sawAntenna = true
		}
		upgradeList = append(upgradeList, kind)
	}

	multipliers := map[explore.Mode]explore.Multipliers{}
	if c.Explore.Closest != nil {
		multipliers[explore.Closest] = explore.Multipliers{KPlayer: c.Explore.Closest.KPlayer, KBase: c.Explore.Closest.KBase}
	}
	if c.Explore.ClosestBase != nil {
		multipliers[explore.ClosestBase] = explore.Multipliers{KPlayer: c.Explore.ClosestBase.KPlayer, KBase: c.Explore.ClosestBase.KBase}
	}

	horizon := c.SpottedPlayerHorizon
	if horizon <= 0 {
		horizon = 5
	}

	return &Resolved{
		ExploreMultipliers:   multipliers,
		UtilityMultiplier:    c.UtilityMultiplier,
		CostMap:              costMap,
		DiagonalPenalty:      c.DiagonalPenalty,
		UpgradeList:          upgradeList,
		PlayerOverrideCost:   c.PlayerOverrideCost,
		ReserveOsmium:        c.Balance.ReserveOsmium,
		RoundsMargin:         c.Balance.RoundsMargin,
		AcidRounds:           c.Balance.AcidRounds,
		SpottedPlayerHorizon: horizon,
		PostgresURL:          c.Database.PostgresURL,
	}, nil
}
