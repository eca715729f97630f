// Package dsf implements a disjoint-set forest (union-find) over integer
// elements [0,n), used by the puzzle validators to test cell connectivity.
//
// Canonify performs full path compression; Merge unions by size with ties
// broken toward the lower-indexed root, so component representatives are
// stable across equivalent merge orders.
package dsf
