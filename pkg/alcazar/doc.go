// Package alcazar implements the path-through-walled-grid puzzle: a single
// Hamiltonian path from one border cell to another, carved out of a fully
// walled grid, with horizontal and vertical edges tracked as separate
// arrays.
//
// Validate is degree-only: it counts #WALL and #PATH per cell and never
// checks connectivity or exit count. A board with two disjoint loops
// instead of one Hamiltonian path passes as SOLVED under this rule; see
// DESIGN.md for why the check is left this loose.
package alcazar
