// Package loopfind classifies the edges of an abstract undirected graph as
// loop edges (lie on some cycle) or tree edges (bridges), using a Tarjan-style
// low-link DFS.
//
// Callers describe their graph through the Graph interface: Neighbors(v)
// returns a NeighborIter the caller owns and steps with Next, so any
// adjacency representation — here, the dual graph of a puzzle grid with
// walls removed — plugs in without materializing an edge list.
package loopfind
