package wordgraph

import (
	"fmt"
	"sort"
)

// Add normalizes and admits each word into the builder.
// Duplicates are silently collapsed. The first malformed word aborts
// with ErrEmptyWord or ErrWordLength; callers that prefer to skip bad
// entries (e.g. dictionary loaders) should pre-filter with Check.
func (b *Builder) Add(words ...string) error {
	if b.opts.err != nil {
		return b.opts.err
	}
	for _, raw := range words {
		w := Normalize(raw)
		if err := b.check(w); err != nil {
			return err
		}
		b.words[w] = struct{}{}
	}

	return nil
}

// Check reports whether raw would be admitted under the builder's
// length policy, returning the same sentinel Add would.
func (b *Builder) Check(raw string) error {
	if b.opts.err != nil {
		return b.opts.err
	}

	return b.check(Normalize(raw))
}

// Len returns the number of distinct words admitted so far.
func (b *Builder) Len() int { return len(b.words) }

// check validates an already-normalized word against the length policy.
func (b *Builder) check(w string) error {
	if w == "" {
		return ErrEmptyWord
	}
	if len(w) < b.opts.minLen || len(w) > b.opts.maxLen {
		return fmt.Errorf("%w: %q has %d letters, want %d..%d",
			ErrWordLength, w, len(w), b.opts.minLen, b.opts.maxLen)
	}

	return nil
}

// Build freezes the admitted word set into an immutable Graph.
// The builder remains usable afterwards; subsequent Add calls do not
// affect previously built graphs.
//
// Edge derivation uses the wildcard-pattern index: two equal-length
// words are neighbors iff they share a pattern with exactly one
// position masked, so each bucket pair is a Hamming-distance-1 edge
// and no pair is seen twice (differing words share at most one
// pattern). Length implicitly partitions the buckets, so words of
// different lengths are never connected.
//
// Complexity: O(n·L) expected + sorting of adjacency lists.
func (b *Builder) Build() *Graph {
	if b.opts.err != nil {
		// Invalid options admit no words; an empty graph is the only
		// consistent result.
		return emptyGraph(b.opts)
	}

	g := emptyGraph(b.opts)
	g.sorted = make([]string, 0, len(b.words))
	for w := range b.words {
		g.words[w] = struct{}{}
		g.sorted = append(g.sorted, w)
	}
	sort.Strings(g.sorted)

	connectByPattern(g)
	labelComponents(g)

	return g
}

// emptyGraph allocates a Graph with no nodes under the given policy.
func emptyGraph(o buildOptions) *Graph {
	return &Graph{
		words:  make(map[string]struct{}),
		adj:    make(map[string][]string),
		comp:   make(map[string]int),
		minLen: o.minLen,
		maxLen: o.maxLen,
	}
}

// connectByPattern populates g.adj and g.edges from g.sorted.
func connectByPattern(g *Graph) {
	// Bucket words by each single-position-masked pattern.
	buckets := make(map[string][]string)
	pat := make([]byte, 0, g.maxLen)
	for _, w := range g.sorted {
		for i := 0; i < len(w); i++ {
			pat = append(pat[:0], w...)
			pat[i] = patternMask
			key := string(pat)
			buckets[key] = append(buckets[key], w)
		}
	}

	// Every unordered pair within a bucket differs in exactly the
	// masked position. Iterating g.sorted keeps bucket contents
	// lexicographic, so edge emission is deterministic.
	for _, members := range buckets {
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				u, v := members[i], members[j]
				g.adj[u] = append(g.adj[u], v)
				g.adj[v] = append(g.adj[v], u)
				g.edges++
			}
		}
	}

	// Neighbor lists collect from multiple buckets; sort each once.
	for w := range g.adj {
		sort.Strings(g.adj[w])
	}
}

// labelComponents assigns a component label to every node via BFS,
// sweeping roots in lexicographic order so labels are deterministic.
// Complexity: O(V + E).
func labelComponents(g *Graph) {
	next := 0
	queue := make([]string, 0, len(g.sorted))
	for _, root := range g.sorted {
		if _, seen := g.comp[root]; seen {
			continue
		}
		g.comp[root] = next
		queue = append(queue[:0], root)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range g.adj[u] {
				if _, seen := g.comp[v]; !seen {
					g.comp[v] = next
					queue = append(queue, v)
				}
			}
		}
		next++
	}
	g.comps = next
}
