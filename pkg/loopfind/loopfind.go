package loopfind

// NeighborIter yields the neighbors of one vertex, one call at a time.
// Next returns (neighbor, true) for each neighbor in turn, and (0, false)
// once exhausted.
type NeighborIter interface {
	Next() (int, bool)
}

// Graph is the neighbor oracle a caller supplies: Neighbors(v) must yield
// exactly the vertices adjacent to v, and the relation must be symmetric
// (u appears in Neighbors(v) iff v appears in Neighbors(u)). If the oracle
// reports an inconsistent (asymmetric) neighborhood, Find's result is
// unspecified but Find itself will not panic.
type Graph interface {
	Neighbors(v int) NeighborIter
}

// Result holds, for every undirected edge visited during Find, whether it is
// a loop edge (lies on a cycle) or a tree edge (a bridge).
type Result struct {
	loop map[edgeKey]bool
}

type edgeKey struct{ u, v int }

func normalize(u, v int) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{u, v}
}

// IsLoopEdge reports whether the edge (u,v) was classified as lying on a
// cycle. Edges never visited by Find (disconnected from the DFS start
// vertices) report false.
func (r *Result) IsLoopEdge(u, v int) bool {
	return r.loop[normalize(u, v)]
}

// Find runs a Tarjan low-link DFS over all n vertices of g and classifies
// every edge it discovers as a loop edge or a bridge (tree edge).
// Disconnected components are each rooted and visited independently so the
// whole graph is covered.
func Find(n int, g Graph) *Result {
	r := &Result{loop: make(map[edgeKey]bool)}

	disc := make([]int, n)
	low := make([]int, n)
	visited := make([]bool, n)
	timer := 0

	var dfs func(u, parent int)
	dfs = func(u, parent int) {
		visited[u] = true
		timer++
		disc[u] = timer
		low[u] = timer

		skippedParent := false
		it := g.Neighbors(u)
		for {
			v, ok := it.Next()
			if !ok {
				break
			}
			if v == parent && !skippedParent {
				// Skip exactly one copy of the parent edge: simple graphs
				// have no multi-edges, so any further occurrence of parent
				// is a genuine second path back (a cycle through a
				// triangle-like structure), not the edge we arrived on.
				skippedParent = true
				continue
			}
			if !visited[v] {
				dfs(v, u)
				if low[v] < low[u] {
					low[u] = low[v]
				}
				if low[v] > disc[u] {
					r.loop[normalize(u, v)] = false
				} else {
					r.loop[normalize(u, v)] = true
				}
			} else {
				if disc[v] < low[u] {
					low[u] = disc[v]
				}
				r.loop[normalize(u, v)] = true
			}
		}
	}

	for v := 0; v < n; v++ {
		if !visited[v] {
			dfs(v, -1)
		}
	}

	return r
}
