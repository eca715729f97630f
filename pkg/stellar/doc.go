// Package stellar implements the planet-illumination placement puzzle: each
// row and column holds exactly one STAR and one CLOUD, and zero or more
// PLANET cells whose illumination (LEFT/RIGHT for rows, TOP/BOTTOM for
// columns) must agree with where the STAR and CLOUD fall relative to it.
//
// The solver runs two deductive sweeps to a fixed point: a combinations
// pass that narrows each line's candidates to placements consistent with
// its planet, and a singles pass that commits lone candidates. A recursive
// search on top of that decides uniqueness for the hard tier.
package stellar
