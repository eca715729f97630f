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

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a (possibly partially filled) puzzle board",
}

var (
	validateDesc  string
	validateMoves string
)

var validateWallsCmd = &cobra.Command{
	Use:   "walls",
	Short: "Validate a Walls board",
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := walls.FromDescription(genWidth, genHeight, validateDesc)
		if err != nil {
			return fmt.Errorf("decoding description: %w", err)
		}
		if validateMoves != "" {
			board, _, err = walls.ApplyMove(board, validateMoves)
			if err != nil {
				return fmt.Errorf("applying moves: %w", err)
			}
		}

		outcome, rep := walls.Validate(board)
		fmt.Println(board.Render())
		printReport(string(outcome), rep)
		log.Info().Str("outcome", string(outcome)).Int("errors", len(rep.ErrorCells)).Msg("walls validate finished")

		return maybeExportJSON(&jsonexport.Artifact{
			Variant:     "walls",
			Params:      fmt.Sprintf("%dx%d", genWidth, genHeight),
			Description: validateDesc,
			Outcome:     string(outcome),
		})
	},
}

var validateAlcazarCmd = &cobra.Command{
	Use:   "alcazar",
	Short: "Validate an Alcazar board",
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := alcazar.FromDescription(genWidth, genHeight, validateDesc)
		if err != nil {
			return fmt.Errorf("decoding description: %w", err)
		}
		if validateMoves != "" {
			board, _, err = alcazar.ApplyMove(board, validateMoves)
			if err != nil {
				return fmt.Errorf("applying moves: %w", err)
			}
		}

		outcome, rep := alcazar.Validate(board)
		fmt.Println(board.Render())
		printReport(string(outcome), rep)
		log.Info().Str("outcome", string(outcome)).Int("errors", len(rep.ErrorCells)).Msg("alcazar validate finished")

		return maybeExportJSON(&jsonexport.Artifact{
			Variant:     "alcazar",
			Params:      fmt.Sprintf("%dx%d", genWidth, genHeight),
			Description: validateDesc,
			Outcome:     string(outcome),
		})
	},
}

var validateStellarCmd = &cobra.Command{
	Use:   "stellar",
	Short: "Validate a Stellar board",
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := stellar.FromDescription(genSize, validateDesc)
		if err != nil {
			return fmt.Errorf("decoding description: %w", err)
		}
		if validateMoves != "" {
			board, _, err = stellar.ApplyMove(board, validateMoves)
			if err != nil {
				return fmt.Errorf("applying moves: %w", err)
			}
		}

		outcome, rep := stellar.Validate(board)
		fmt.Println(board.Render())
		printReport(string(outcome), rep)
		log.Info().Str("outcome", string(outcome)).Int("errors", len(rep.ErrorCells)).Msg("stellar validate finished")

		return maybeExportJSON(&jsonexport.Artifact{
			Variant:     "stellar",
			Params:      fmt.Sprintf("%d", genSize),
			Description: validateDesc,
			Outcome:     string(outcome),
		})
	},
}

func init() {
	validateWallsCmd.Flags().IntVar(&genWidth, "width", 8, "grid width")
	validateWallsCmd.Flags().IntVar(&genHeight, "height", 8, "grid height")
	validateWallsCmd.Flags().StringVar(&validateDesc, "desc", "", "puzzle description")
	validateWallsCmd.Flags().StringVar(&validateMoves, "moves", "", "semicolon-separated moves to apply before validating")
	_ = validateWallsCmd.MarkFlagRequired("desc")

	validateAlcazarCmd.Flags().IntVar(&genWidth, "width", 8, "grid width")
	validateAlcazarCmd.Flags().IntVar(&genHeight, "height", 8, "grid height")
	validateAlcazarCmd.Flags().StringVar(&validateDesc, "desc", "", "puzzle description")
	validateAlcazarCmd.Flags().StringVar(&validateMoves, "moves", "", "semicolon-separated moves to apply before validating")
	_ = validateAlcazarCmd.MarkFlagRequired("desc")

	validateStellarCmd.Flags().IntVar(&genSize, "size", 6, "grid size (size x size)")
	validateStellarCmd.Flags().StringVar(&validateDesc, "desc", "", "puzzle description")
	validateStellarCmd.Flags().StringVar(&validateMoves, "moves", "", "semicolon-separated moves to apply before validating")
	_ = validateStellarCmd.MarkFlagRequired("desc")

	validateCmd.AddCommand(validateWallsCmd)
	validateCmd.AddCommand(validateAlcazarCmd)
	validateCmd.AddCommand(validateStellarCmd)
}
