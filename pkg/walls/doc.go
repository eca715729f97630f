// Package walls implements the Walls puzzle variant: a Hamiltonian path
// through a w*h grid, presented as a maze with exactly two border exits,
// described to the player as an incomplete wall layout.
//
// Hamiltonian path construction and the description codec live in
// pkg/hamilton and pkg/rle, shared with the alcazar variant; everything
// specific to the wall/line degree rules and exit-counting stays here.
package walls
