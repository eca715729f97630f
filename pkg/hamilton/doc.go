// Package hamilton builds a Hamiltonian path over a w*h grid using the
// backbite algorithm (Clisby's method: http://clisby.net/projects/hamiltonian_path/),
// then forces both endpoints onto the grid border.
//
// Both the walls and alcazar generators consume it, so it lives here as
// one package rather than duplicated per variant. Randomness is drawn from
// pkg/rng.RNG, following the *rng.RNG-parameter convention used throughout
// the generation pipeline.
package hamilton
