// Command puzzlegen generates, solves, and validates Walls, Alcazar, and
// Stellar grid logic puzzles.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
