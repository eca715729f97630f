package main

import (
	"fmt"

	"github.com/dshills/gridpuzzle/pkg/alcazar"
	"github.com/dshills/gridpuzzle/pkg/jsonexport"
	"github.com/dshills/gridpuzzle/pkg/stellar"
	"github.com/dshills/gridpuzzle/pkg/walls"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new puzzle",
}

var (
	genWidth  int
	genHeight int
	genSize   int
	genParams string
)

var generateWallsCmd = &cobra.Command{
	Use:   "walls",
	Short: "Generate a Walls puzzle",
	RunE: func(cmd *cobra.Command, args []string) error {
		tier, table, err := resolveDifficulty()
		if err != nil {
			return err
		}
		if genParams != "" {
			p, err := walls.ParseParams(genParams)
			if err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				return err
			}
			genWidth, genHeight, tier = p.W, p.H, p.Difficulty
		}
		seed := resolveSeed()
		r := stageRNG(seed, "walls_generate", fmt.Sprintf("%dx%d:%s", genWidth, genHeight, tier))

		var board *walls.Board
		var desc string
		err = withSpinner(fmt.Sprintf("generating %dx%d walls puzzle", genWidth, genHeight), func() error {
			var genErr error
			board, desc, genErr = walls.Generate(genWidth, genHeight, tier, table, r)
			return genErr
		})
		if err != nil {
			printFailure("generation failed: %v", err)
			return err
		}

		fmt.Println(board.Render())
		printSuccess("description: %s", desc)
		log.Debug().Str("description", desc).Msg("walls generated")

		return maybeExportJSON(&jsonexport.Artifact{
			Variant:     "walls",
			Params:      fmt.Sprintf("%dx%d", genWidth, genHeight),
			Difficulty:  string(tier),
			Seed:        seed,
			Description: desc,
		})
	},
}

var generateAlcazarCmd = &cobra.Command{
	Use:   "alcazar",
	Short: "Generate an Alcazar puzzle",
	RunE: func(cmd *cobra.Command, args []string) error {
		tier, table, err := resolveDifficulty()
		if err != nil {
			return err
		}
		if genParams != "" {
			p, err := alcazar.ParseParams(genParams)
			if err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				return err
			}
			genWidth, genHeight, tier = p.W, p.H, p.Difficulty
		}
		seed := resolveSeed()
		r := stageRNG(seed, "alcazar_generate", fmt.Sprintf("%dx%d:%s", genWidth, genHeight, tier))

		var board *alcazar.Board
		var desc string
		err = withSpinner(fmt.Sprintf("generating %dx%d alcazar puzzle", genWidth, genHeight), func() error {
			var genErr error
			board, desc, genErr = alcazar.Generate(genWidth, genHeight, tier, table, r)
			return genErr
		})
		if err != nil {
			printFailure("generation failed: %v", err)
			return err
		}

		fmt.Println(board.Render())
		printSuccess("description: %s", desc)
		log.Debug().Str("description", desc).Msg("alcazar generated")

		return maybeExportJSON(&jsonexport.Artifact{
			Variant:     "alcazar",
			Params:      fmt.Sprintf("%dx%d", genWidth, genHeight),
			Difficulty:  string(tier),
			Seed:        seed,
			Description: desc,
		})
	},
}

var generateStellarCmd = &cobra.Command{
	Use:   "stellar",
	Short: "Generate a Stellar puzzle",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Stellar's generator never reads a difficulty tier (see
		// pkg/stellar/generator.go's doc comment) — --difficulty is
		// validated here purely so a typo surfaces as a CLI error
		// instead of silently being ignored, and recorded for the
		// later solve step, which does use it.
		tier, _, err := resolveDifficulty()
		if err != nil {
			return err
		}
		if genParams != "" {
			p, err := stellar.ParseParams(genParams)
			if err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				return err
			}
			genSize, tier = p.Size, p.Difficulty
		}
		seed := resolveSeed()
		r := stageRNG(seed, "stellar_generate", fmt.Sprintf("%d", genSize))

		var board *stellar.Board
		var desc string
		err = withSpinner(fmt.Sprintf("generating %dx%d stellar puzzle", genSize, genSize), func() error {
			var genErr error
			board, desc, genErr = stellar.Generate(genSize, r)
			return genErr
		})
		if err != nil {
			printFailure("generation failed: %v", err)
			return err
		}

		fmt.Println(board.Render())
		printSuccess("description: %s", desc)
		log.Debug().Str("description", desc).Msg("stellar generated")

		return maybeExportJSON(&jsonexport.Artifact{
			Variant:     "stellar",
			Params:      fmt.Sprintf("%d", genSize),
			Difficulty:  string(tier),
			Seed:        seed,
			Description: desc,
		})
	},
}

func init() {
	generateWallsCmd.Flags().IntVar(&genWidth, "width", 8, "grid width")
	generateWallsCmd.Flags().IntVar(&genHeight, "height", 8, "grid height")
	generateWallsCmd.Flags().StringVar(&genParams, "params", "", `parameter string like "4x4dn", overriding width/height/difficulty`)

	generateAlcazarCmd.Flags().IntVar(&genWidth, "width", 8, "grid width")
	generateAlcazarCmd.Flags().IntVar(&genHeight, "height", 8, "grid height")
	generateAlcazarCmd.Flags().StringVar(&genParams, "params", "", `parameter string like "4x4dn", overriding width/height/difficulty`)

	generateStellarCmd.Flags().IntVar(&genSize, "size", 6, "grid size (size x size)")
	generateStellarCmd.Flags().StringVar(&genParams, "params", "", `parameter string like "6dn", overriding size/difficulty`)

	generateCmd.AddCommand(generateWallsCmd)
	generateCmd.AddCommand(generateAlcazarCmd)
	generateCmd.AddCommand(generateStellarCmd)
}
