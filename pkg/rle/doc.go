// Package rle implements the compact run-length encoding shared by the
// Walls and Alcazar puzzle description wire formats: a
// decimal digit run of length k denotes k consecutive "wall" positions, and
// a letter 'a'..'z' denotes 1..26 consecutive "open" positions followed by
// an implicit single wall position — except 'z', which denotes exactly 26
// open positions with no implicit trailing wall, so arbitrarily long open
// runs chain as repeated 'z's.
//
// Both variants use the identical alphabet, so the codec lives here once
// instead of being re-derived per package.
package rle
