package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/furnace-pets/internal/shop"
)

//go:embed defaults/furnace.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Pet: PetConfig{
			Name:           "Furnace",
			LevelThreshold: 50000,
			Leveling:       "single",
			HappyDwell:     2 * time.Second,
			PlayfulDwell:   1500 * time.Millisecond,
			SadBelow:       45000,
			CheerfulAbove:  75000,
		},
		Shop: ShopConfig{
			Items: []shop.Item{
				{ID: "hoodie", Name: "Hoodie", Price: 50},
				{ID: "hat", Name: "Hat", Price: 30},
				{ID: "bone", Name: "Bone", Price: 10},
				{ID: "doghouse", Name: "Doghouse", Price: 200},
				{ID: "toy1", Name: "Squeaky Toy", Price: 25},
				{ID: "collar", Name: "Collar", Price: 15},
			},
		},
		Pedometer: PedometerConfig{
			Mode:         PedometerManual,
			Schedule:     "@every 3s",
			MaxIncrement: 5,
			MinStart:     3000,
			MaxStart:     18000,
			ManualStep:   500,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
