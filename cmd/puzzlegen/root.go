package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	jsonOut  string
	seedFlag uint64
	difTier  string
	difFile  string
)

// rootCmd is the base command when puzzlegen is invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "puzzlegen",
	Short: "Generate, solve, and validate Walls/Alcazar/Stellar puzzles",
	Long: `puzzlegen is a command-line tool for the grid logic puzzle core.

It provides three verbs, each taking a variant subcommand (walls, alcazar,
stellar):
  - generate: produce a new puzzle description at a given difficulty
  - solve:    run the solver against a puzzle description
  - validate: check a (possibly partially filled) board against its rules`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&jsonOut, "json", "", "write a JSON artifact to this path (empty disables)")
	rootCmd.PersistentFlags().Uint64Var(&seedFlag, "seed", 0, "master seed (0 picks a random seed and logs it)")
	rootCmd.PersistentFlags().StringVar(&difTier, "difficulty", "normal", "difficulty tier: easy, normal, tricky, hard")
	rootCmd.PersistentFlags().StringVar(&difFile, "difficulty-file", "", "YAML file overriding the built-in difficulty presets")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(validateCmd)
}
