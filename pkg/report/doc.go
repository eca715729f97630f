// Package report provides the shared diagnostic-report scaffolding used by
// every variant validator: alongside the compact authoritative outcome
// enum (SOLVED/AMBIGUOUS/INVALID, or Stellar's UNIQUE/AMBIGUOUS/IMPOSSIBLE/
// UNDEFINED), a Report collects which constraint checks failed and which
// board positions were marked ERROR, for diagnostics and for the CLI's
// human-readable output.
package report
