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

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a puzzle description",
}

var solveDesc string

var solveWallsCmd = &cobra.Command{
	Use:   "walls",
	Short: "Solve a Walls puzzle description",
	RunE: func(cmd *cobra.Command, args []string) error {
		tier, _, err := resolveDifficulty()
		if err != nil {
			return err
		}
		board, err := walls.FromDescription(genWidth, genHeight, solveDesc)
		if err != nil {
			return fmt.Errorf("decoding description: %w", err)
		}

		solution := walls.SolutionMoves(board)
		outcome := walls.Solve(board, tier)
		fmt.Println(board.Render())
		log.Info().Str("outcome", string(outcome)).Msg("walls solve finished")
		if outcome == walls.Solved {
			printSuccess("outcome: %s", outcome)
		} else {
			printWarning("outcome: %s", outcome)
		}
		fmt.Printf("solution moves: %s\n", solution)

		return maybeExportJSON(&jsonexport.Artifact{
			Variant:     "walls",
			Params:      fmt.Sprintf("%dx%d", genWidth, genHeight),
			Difficulty:  string(tier),
			Description: solveDesc,
			Solution:    solution,
			Outcome:     string(outcome),
		})
	},
}

var solveAlcazarCmd = &cobra.Command{
	Use:   "alcazar",
	Short: "Solve an Alcazar puzzle description",
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := alcazar.FromDescription(genWidth, genHeight, solveDesc)
		if err != nil {
			return fmt.Errorf("decoding description: %w", err)
		}

		solution := alcazar.SolutionMoves(board)
		outcome := alcazar.Solve(board)
		fmt.Println(board.Render())
		log.Info().Str("outcome", string(outcome)).Msg("alcazar solve finished")
		if outcome == alcazar.Solved {
			printSuccess("outcome: %s", outcome)
		} else {
			printWarning("outcome: %s", outcome)
		}
		fmt.Printf("solution moves: %s\n", solution)

		return maybeExportJSON(&jsonexport.Artifact{
			Variant:     "alcazar",
			Params:      fmt.Sprintf("%dx%d", genWidth, genHeight),
			Description: solveDesc,
			Solution:    solution,
			Outcome:     string(outcome),
		})
	},
}

var solveStellarCmd = &cobra.Command{
	Use:   "stellar",
	Short: "Solve a Stellar puzzle description",
	RunE: func(cmd *cobra.Command, args []string) error {
		tier, table, err := resolveDifficulty()
		if err != nil {
			return err
		}
		board, err := stellar.FromDescription(genSize, solveDesc)
		if err != nil {
			return fmt.Errorf("decoding description: %w", err)
		}

		allowRecursive := table.Stellar[tier].AllowRecursiveSearch
		solution := stellar.SolutionMoves(board)
		outcome := stellar.Solve(board, allowRecursive)
		fmt.Println(board.Render())
		log.Info().Str("outcome", fmt.Sprintf("%v", outcome)).Msg("stellar solve finished")

		var outcomeStr string
		switch outcome {
		case stellar.Unique:
			outcomeStr = "UNIQUE"
			printSuccess("outcome: %s", outcomeStr)
		case stellar.SolveAmbiguous:
			outcomeStr = "AMBIGUOUS"
			printWarning("outcome: %s", outcomeStr)
		case stellar.Impossible:
			outcomeStr = "IMPOSSIBLE"
			printFailure("outcome: %s", outcomeStr)
		default:
			outcomeStr = "UNDEFINED"
			printWarning("outcome: %s", outcomeStr)
		}

		fmt.Printf("solution moves: %s\n", solution)

		return maybeExportJSON(&jsonexport.Artifact{
			Variant:     "stellar",
			Params:      fmt.Sprintf("%d", genSize),
			Difficulty:  string(tier),
			Description: solveDesc,
			Solution:    solution,
			Outcome:     outcomeStr,
		})
	},
}

func init() {
	solveWallsCmd.Flags().IntVar(&genWidth, "width", 8, "grid width")
	solveWallsCmd.Flags().IntVar(&genHeight, "height", 8, "grid height")
	solveWallsCmd.Flags().StringVar(&solveDesc, "desc", "", "puzzle description")
	_ = solveWallsCmd.MarkFlagRequired("desc")

	solveAlcazarCmd.Flags().IntVar(&genWidth, "width", 8, "grid width")
	solveAlcazarCmd.Flags().IntVar(&genHeight, "height", 8, "grid height")
	solveAlcazarCmd.Flags().StringVar(&solveDesc, "desc", "", "puzzle description")
	_ = solveAlcazarCmd.MarkFlagRequired("desc")

	solveStellarCmd.Flags().IntVar(&genSize, "size", 6, "grid size (size x size)")
	solveStellarCmd.Flags().StringVar(&solveDesc, "desc", "", "puzzle description")
	_ = solveStellarCmd.MarkFlagRequired("desc")

	solveCmd.AddCommand(solveWallsCmd)
	solveCmd.AddCommand(solveAlcazarCmd)
	solveCmd.AddCommand(solveStellarCmd)
}
