package main

import (
	"crypto/sha256"
	"fmt"
	"os"
	"time"

	"github.com/dshills/gridpuzzle/pkg/difficulty"
	"gopkg.in/yaml.v3"
)

// BatchConfig describes a multi-puzzle generation job: a YAML-tagged
// struct with its own Validate and Hash methods, the latter feeding
// per-job RNG derivation.
type BatchConfig struct {
	// Seed is the master seed for the whole batch. 0 auto-generates one
	// from the current time, recorded back onto the config so a
	// reported seed can be pinned into a future run.
	Seed uint64 `yaml:"seed"`
	Jobs []Job  `yaml:"jobs"`
}

// Job describes one repeated generation task within a batch.
type Job struct {
	Variant    string `yaml:"variant"` // walls, alcazar, or stellar
	Count      int    `yaml:"count"`
	Width      int    `yaml:"width,omitempty"`
	Height     int    `yaml:"height,omitempty"`
	Size       int    `yaml:"size,omitempty"`
	Difficulty string `yaml:"difficulty"`
	OutputDir  string `yaml:"output_dir"`
}

// LoadBatchConfig reads and validates a YAML batch configuration file.
func LoadBatchConfig(path string) (*BatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch config: %w", err)
	}

	var cfg BatchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing batch config YAML: %w", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating batch config: %w", err)
	}
	return &cfg, nil
}

// Validate checks every job for internally consistent values.
func (c *BatchConfig) Validate() error {
	if len(c.Jobs) == 0 {
		return fmt.Errorf("batch config must specify at least one job")
	}
	for i, j := range c.Jobs {
		if err := j.Validate(); err != nil {
			return fmt.Errorf("job[%d]: %w", i, err)
		}
	}
	return nil
}

// Validate checks one job's fields for consistency with its variant.
func (j *Job) Validate() error {
	switch j.Variant {
	case "walls", "alcazar":
		if j.Width <= 0 || j.Height <= 0 {
			return fmt.Errorf("variant %q requires width and height > 0", j.Variant)
		}
	case "stellar":
		if j.Size <= 0 {
			return fmt.Errorf("variant %q requires size > 0", j.Variant)
		}
	default:
		return fmt.Errorf("unknown variant %q (must be walls, alcazar, or stellar)", j.Variant)
	}
	if j.Count <= 0 {
		return fmt.Errorf("count must be > 0, got %d", j.Count)
	}
	switch difficulty.Tier(j.Difficulty) {
	case difficulty.Easy, difficulty.Normal, difficulty.Tricky, difficulty.Hard:
	default:
		return fmt.Errorf("unknown difficulty %q", j.Difficulty)
	}
	if j.OutputDir == "" {
		return fmt.Errorf("output_dir must be set")
	}
	return nil
}

// Hash computes a deterministic hash of the batch config by marshaling it
// back to YAML and hashing that, used to derive per-job RNGs.
func (c *BatchConfig) Hash() []byte {
	data, err := yaml.Marshal(c)
	if err != nil {
		h := sha256.Sum256([]byte(fmt.Sprintf("%d", c.Seed)))
		return h[:]
	}
	h := sha256.Sum256(data)
	return h[:]
}
