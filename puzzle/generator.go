// SPDX-License-Identifier: MIT

package puzzle

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lexichain/lexichain/pathfind"
	"github.com/lexichain/lexichain/wordgraph"
)

// Generator samples puzzle pairs from an immutable word graph.
// A Generator is safe for sequential reuse; the embedded random source
// is not synchronized, so share one per goroutine.
type Generator struct {
	graph       *wordgraph.Graph
	rng         *rand.Rand
	maxAttempts int
}

// NewGenerator binds a generator to g. Options may inject a seeded
// random source and override the attempt budget.
func NewGenerator(g *wordgraph.Graph, opts ...Option) (*Generator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := genOptions{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Generator{graph: g, rng: o.rng, maxAttempts: o.maxAttempts}, nil
}

// Pair draws start/target words from pool until their shortest-path
// distance falls within [minDist, maxDist], or the attempt budget runs
// out (ErrNoPair). Pool words absent from the graph are ignored; a
// pool with fewer than two graph words yields ErrEmptyPool.
//
// Termination is bounded: each attempt costs at most one BFS, pairs in
// different components are rejected in O(1), and the attempt count is
// capped regardless of pool shape.
func (gen *Generator) Pair(pool []string, minDist, maxDist int) (Pair, error) {
	if minDist < 1 || maxDist < minDist {
		return Pair{}, ErrBadWindow
	}

	candidates := gen.admit(pool)
	if len(candidates) < 2 {
		return Pair{}, ErrEmptyPool
	}

	for attempt := 0; attempt < gen.maxAttempts; attempt++ {
		start := candidates[gen.rng.Intn(len(candidates))]
		target := candidates[gen.rng.Intn(len(candidates))]
		if start == target {
			continue
		}
		if !gen.graph.SameComponent(start, target) {
			continue
		}
		d, err := pathfind.Distance(gen.graph, start, target)
		if err != nil {
			continue
		}
		if d >= minDist && d <= maxDist {
			return Pair{
				ID:       uuid.NewString(),
				Start:    start,
				Target:   target,
				Distance: d,
			}, nil
		}
	}

	return Pair{}, ErrNoPair
}

// admit normalizes pool, drops words absent from the graph, collapses
// duplicates, and sorts, so draws under a seeded source are
// reproducible regardless of pool ordering.
func (gen *Generator) admit(pool []string) []string {
	seen := make(map[string]struct{}, len(pool))
	out := make([]string, 0, len(pool))
	for _, raw := range pool {
		w := wordgraph.Normalize(raw)
		if _, dup := seen[w]; dup || !gen.graph.Has(w) {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}
