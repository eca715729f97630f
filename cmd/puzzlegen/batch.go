package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/gridpuzzle/pkg/alcazar"
	"github.com/dshills/gridpuzzle/pkg/difficulty"
	"github.com/dshills/gridpuzzle/pkg/jsonexport"
	"github.com/dshills/gridpuzzle/pkg/rng"
	"github.com/dshills/gridpuzzle/pkg/stellar"
	"github.com/dshills/gridpuzzle/pkg/walls"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var batchConfigPath string

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run a multi-puzzle generation job from a YAML config",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadBatchConfig(batchConfigPath)
		if err != nil {
			return err
		}
		log.Info().Uint64("seed", cfg.Seed).Int("jobs", len(cfg.Jobs)).Msg("starting batch")

		configHash := cfg.Hash()
		table := difficulty.Default()
		if difFile != "" {
			loaded, err := difficulty.LoadFromFile(difFile)
			if err != nil {
				return err
			}
			table = loaded
		}

		for jobIdx, job := range cfg.Jobs {
			if err := os.MkdirAll(job.OutputDir, 0o755); err != nil {
				return fmt.Errorf("job[%d]: creating output dir: %w", jobIdx, err)
			}

			genErr := withSpinner(fmt.Sprintf("job %d/%d: %s x%d", jobIdx+1, len(cfg.Jobs), job.Variant, job.Count), func() error {
				for i := 0; i < job.Count; i++ {
					stage := fmt.Sprintf("%s_batch_%d_%d", job.Variant, jobIdx, i)
					r := rng.NewRNG(cfg.Seed, stage, configHash)

					artifact, err := generateOne(job, table, r)
					if err != nil {
						if errors.Is(err, walls.ErrGenerationExhausted) ||
							errors.Is(err, alcazar.ErrGenerationExhausted) ||
							errors.Is(err, stellar.ErrGenerationExhausted) {
							printWarning("job[%d] item %d: %v, skipping", jobIdx, i, err)
							log.Warn().Int("job", jobIdx).Int("item", i).Err(err).Msg("generation exhausted")
							continue
						}
						return err
					}

					path := filepath.Join(job.OutputDir, fmt.Sprintf("%s_%d_%d.json", job.Variant, jobIdx, i))
					if err := jsonexport.SaveToFile(artifact, path); err != nil {
						return fmt.Errorf("writing artifact: %w", err)
					}
					log.Debug().Str("path", path).Msg("wrote batch artifact")
				}
				return nil
			})
			if genErr != nil {
				return fmt.Errorf("job[%d]: %w", jobIdx, genErr)
			}
			printSuccess("job %d/%d (%s): generated %d puzzles in %s", jobIdx+1, len(cfg.Jobs), job.Variant, job.Count, job.OutputDir)
		}

		return nil
	},
}

// generateOne runs the generator for a single job's variant and packages
// the result as a jsonexport.Artifact.
func generateOne(job Job, table *difficulty.Table, r *rng.RNG) (*jsonexport.Artifact, error) {
	tier := difficulty.Tier(job.Difficulty)

	switch job.Variant {
	case "walls":
		_, desc, err := walls.Generate(job.Width, job.Height, tier, table, r)
		if err != nil {
			return nil, err
		}
		return &jsonexport.Artifact{
			Variant: "walls", Params: fmt.Sprintf("%dx%d", job.Width, job.Height),
			Difficulty: job.Difficulty, Seed: r.Seed(), Description: desc,
		}, nil
	case "alcazar":
		_, desc, err := alcazar.Generate(job.Width, job.Height, tier, table, r)
		if err != nil {
			return nil, err
		}
		return &jsonexport.Artifact{
			Variant: "alcazar", Params: fmt.Sprintf("%dx%d", job.Width, job.Height),
			Difficulty: job.Difficulty, Seed: r.Seed(), Description: desc,
		}, nil
	default: // stellar, validated elsewhere
		_, desc, err := stellar.Generate(job.Size, r)
		if err != nil {
			return nil, err
		}
		return &jsonexport.Artifact{
			Variant: "stellar", Params: fmt.Sprintf("%d", job.Size),
			Difficulty: job.Difficulty, Seed: r.Seed(), Description: desc,
		}, nil
	}
}

func init() {
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "path to a YAML batch configuration file")
	_ = batchCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(batchCmd)
}
