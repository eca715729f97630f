// Package difficulty holds the per-variant, per-tier generation presets:
// Walls' border-wall reduction fractions, Alcazar's border-removal cap,
// and Stellar's recursive-search gate.
//
// The presets are YAML-loadable (LoadFromFile falls back to Default for
// any tier a file omits) so a batch run can override them from a config
// file instead of recompiling.
package difficulty
