package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// ErrInvalid signals a configuration value outside of its domain.
var ErrInvalid = errors.New("invalid config")

var (
	models = map[string]bool{"knn": true, "forest": true, "majority": true}
	// golearn only keeps stdout clean on its optimised euclidean linear search
	distances  = map[string]bool{"euclidean": true}
	algorithms = map[string]bool{"linear": true}
)

// Config defines a classification run.
type Config struct {
	// Model is the classifier to train, one of knn, forest or majority.
	Model string `json:"model"`
	// Neighbours is the number of neighbours voting in the knn model.
	Neighbours int    `json:"neighbours"`
	Distance   string `json:"distance"`
	Algorithm  string `json:"algorithm"`
	// Trees is the size of the random forest.
	Trees int `json:"trees"`
	// TestSize is the fraction of sessions held out for evaluation.
	TestSize float64 `json:"test_size"`
	// Seed makes the split reproducible, zero picks a seed from the clock.
	Seed uint64 `json:"seed"`
	// Stratify keeps the purchase ratio equal in the train and test sets.
	Stratify bool `json:"stratify"`
}

// Default returns the default run config.
func Default() Config {
	return Config{
		Model:      "knn",
		Neighbours: 5,
		Distance:   "euclidean",
		Algorithm:  "linear",
		Trees:      100,
		TestSize:   0.4,
	}
}

// Load loads the config from the json file at the given path.
// Fields missing from the file keep their default value.
// An empty path returns the default config.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not load config '%s': %w", path, err)
	}

	err = json.Unmarshal(b, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("could not unmarshal the config '%s': %w", path, err)
	}

	log.Info().Str("file", path).Msg("loaded config")

	return cfg, cfg.Validate()
}

// Validate checks every field for a usable value.
func (c Config) Validate() error {
	if !models[c.Model] {
		return fmt.Errorf("unknown model '%s': %w", c.Model, ErrInvalid)
	}
	if c.Model == "knn" {
		if c.Neighbours < 1 {
			return fmt.Errorf("neighbours must be positive but was %d: %w", c.Neighbours, ErrInvalid)
		}
		if !distances[c.Distance] {
			return fmt.Errorf("unknown distance '%s': %w", c.Distance, ErrInvalid)
		}
		if !algorithms[c.Algorithm] {
			return fmt.Errorf("unknown algorithm '%s': %w", c.Algorithm, ErrInvalid)
		}
	}
	if c.Model == "forest" && c.Trees < 1 {
		return fmt.Errorf("trees must be positive but was %d: %w", c.Trees, ErrInvalid)
	}
	if c.TestSize <= 0 || c.TestSize >= 1 {
		return fmt.Errorf("test size must be in (0,1) but was %v: %w", c.TestSize, ErrInvalid)
	}
	return nil
}
