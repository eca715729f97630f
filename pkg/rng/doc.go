// Package rng provides deterministic random number generation for a puzzle
// generation pipeline.
//
// # Overview
//
// The RNG type ensures reproducible puzzle generation by deriving
// stage-specific seeds from a master seed. This allows each pipeline stage
// (Hamiltonian path construction, clue erasure, planet placement) to have an
// independent random sequence while the overall generation stays
// deterministic: same seed, same parameters, same puzzle.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_stage = H(masterSeed, stageName, configHash)
//
// where:
//   - masterSeed: the puzzle's seed, as given by the CLI's --seed flag or a batch config
//   - stageName: pipeline stage identifier (e.g., "hamiltonian_path", "clue_erasure")
//   - configHash: hash of the puzzle parameters (width, height, difficulty)
//
// This ensures:
//  1. Same inputs always produce the same RNG sequence (determinism)
//  2. Different stages get independent random sequences (isolation)
//  3. Parameter changes result in different sequences (sensitivity)
//
// # Usage
//
//	configHash := sha256.Sum256([]byte(paramString))
//	pathRNG := rng.NewRNG(seed, "hamiltonian_path", configHash[:])
//	erasureRNG := rng.NewRNG(seed, "clue_erasure", configHash[:])
//
//	start := pathRNG.RandomUpto(w)
//	erasureRNG.ShuffleInts(wallIndices)
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Each goroutine should use its own RNG
// instance; generation itself is single-threaded.
package rng
