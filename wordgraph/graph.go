package wordgraph

// Has reports whether word (after normalization) is a node.
// Complexity: O(1)
func (g *Graph) Has(word string) bool {
	_, ok := g.words[Normalize(word)]

	return ok
}

// Neighbors returns the words one letter away from word, in
// lexicographic order, or nil when word is absent or isolated.
// The returned slice is a copy and safe to retain or modify.
// Complexity: O(deg)
func (g *Graph) Neighbors(word string) []string {
	nbrs := g.adj[Normalize(word)]
	if len(nbrs) == 0 {
		return nil
	}
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out
}

// Degree returns the number of one-letter neighbors of word,
// or 0 when word is absent.
// Complexity: O(1)
func (g *Graph) Degree(word string) int {
	return len(g.adj[Normalize(word)])
}

// Words returns every node in lexicographic order.
// The returned slice is a copy and safe to retain or modify.
// Complexity: O(V)
func (g *Graph) Words() []string {
	out := make([]string, len(g.sorted))
	copy(out, g.sorted)

	return out
}

// WordCount returns the number of nodes.
func (g *Graph) WordCount() int { return len(g.words) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// AverageDegree returns 2·E / V, or 0 for an empty graph.
func (g *Graph) AverageDegree() float64 {
	if len(g.words) == 0 {
		return 0
	}

	return float64(2*g.edges) / float64(len(g.words))
}

// Connected reports whether the graph is non-empty and forms a single
// connected component. Mixed-length dictionaries are never connected,
// since length partitions the node set.
func (g *Graph) Connected() bool { return g.comps == 1 }

// ComponentCount returns the number of connected components.
func (g *Graph) ComponentCount() int { return g.comps }

// SameComponent reports whether u and v are connected by some path.
// A word is always in the same component as itself; absent words are
// in no component at all.
// Complexity: O(1)
func (g *Graph) SameComponent(u, v string) bool {
	cu, ok := g.comp[Normalize(u)]
	if !ok {
		return false
	}
	cv, ok := g.comp[Normalize(v)]

	return ok && cu == cv
}

// Bounds returns the admitted word length range [min, max].
func (g *Graph) Bounds() (min, max int) { return g.minLen, g.maxLen }
