// Package config provides YAML-based configuration for the pet game:
// pet tuning, the shop catalog and the step source.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/furnace-pets/internal/pet"
	"github.com/vovakirdan/furnace-pets/internal/shop"
)

// Config is the full game configuration.
type Config struct {
	Pet       PetConfig       `yaml:"pet"`
	Shop      ShopConfig      `yaml:"shop"`
	Pedometer PedometerConfig `yaml:"pedometer"`
}

// PetConfig tunes leveling, mood dwell windows and appearance bounds.
type PetConfig struct {
	Name           string        `yaml:"name"`
	LevelThreshold int           `yaml:"level_threshold"` // converted steps per level
	Leveling       string        `yaml:"leveling"`        // "single" or "per_boundary"
	HappyDwell     time.Duration `yaml:"happy_dwell"`
	PlayfulDwell   time.Duration `yaml:"playful_dwell"`
	SadBelow       int           `yaml:"sad_below"`      // weekly total under this looks sad
	CheerfulAbove  int           `yaml:"cheerful_above"` // weekly total over this looks cheerful
}

// ShopConfig lists the catalog in display order.
type ShopConfig struct {
	Items []shop.Item `yaml:"items"`
}

// PedometerMode selects the step source.
type PedometerMode string

const (
	PedometerManual    PedometerMode = "manual"
	PedometerSimulated PedometerMode = "simulated"
)

// PedometerConfig configures the step source.
type PedometerConfig struct {
	Mode         PedometerMode `yaml:"mode"`
	Schedule     string        `yaml:"schedule"`      // cron schedule of simulated ticks
	MaxIncrement int           `yaml:"max_increment"` // simulated steps per tick are in [0, max_increment)
	MinStart     int           `yaml:"min_start"`
	MaxStart     int           `yaml:"max_start"`
	ManualStep   int           `yaml:"manual_step"` // +/- step of the manual override
}

// LevelingMode returns the parsed leveling mode.
func (p PetConfig) LevelingMode() pet.LevelingMode {
	mode, err := pet.ParseLevelingMode(p.Leveling)
	if err != nil {
		return pet.LevelingSingle
	}
	return mode
}

// Catalog builds the shop catalog from the configured items.
func (c Config) Catalog() (*shop.Catalog, error) {
	return shop.NewCatalog(c.Shop.Items)
}

// Validate checks the configuration for values the engine cannot use.
func (c Config) Validate() error {
	var errs []error

	if c.Pet.LevelThreshold <= 0 {
		errs = append(errs, fmt.Errorf("pet.level_threshold must be positive, got %d", c.Pet.LevelThreshold))
	}
	if _, err := pet.ParseLevelingMode(c.Pet.Leveling); err != nil {
		errs = append(errs, err)
	}
	if c.Pet.HappyDwell <= 0 || c.Pet.PlayfulDwell <= 0 {
		errs = append(errs, errors.New("pet dwell windows must be positive"))
	}
	if c.Pet.SadBelow > c.Pet.CheerfulAbove {
		errs = append(errs, fmt.Errorf("pet.sad_below (%d) exceeds pet.cheerful_above (%d)", c.Pet.SadBelow, c.Pet.CheerfulAbove))
	}
	if _, err := c.Catalog(); err != nil {
		errs = append(errs, err)
	}

	switch c.Pedometer.Mode {
	case PedometerManual, PedometerSimulated:
	default:
		errs = append(errs, fmt.Errorf("unknown pedometer.mode %q", c.Pedometer.Mode))
	}
	if c.Pedometer.Mode == PedometerSimulated {
		if c.Pedometer.Schedule == "" {
			errs = append(errs, errors.New("pedometer.schedule is required in simulated mode"))
		}
		if c.Pedometer.MinStart < 0 || c.Pedometer.MaxStart < c.Pedometer.MinStart {
			errs = append(errs, fmt.Errorf("invalid pedometer start range [%d, %d]", c.Pedometer.MinStart, c.Pedometer.MaxStart))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
