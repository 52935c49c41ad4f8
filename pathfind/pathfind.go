package pathfind

import (
	"github.com/lexichain/lexichain/wordgraph"
)

// queueItem pairs a word with its BFS depth.
type queueItem struct {
	word  string
	depth int
}

// walker encapsulates mutable BFS state for a single query.
type walker struct {
	graph  *wordgraph.Graph
	opts   searchOptions
	target string
	queue  []queueItem
	parent map[string]string // discovered word → predecessor ("" for root)
}

// ShortestPath returns the optimal sequence of words from `from` to
// `to`, both inclusive, using breadth-first search.
// Returns ErrGraphNil for a nil graph, ErrWordNotFound when either
// endpoint is absent, ErrOptionViolation for bad options, and
// ErrNoPath when the endpoints are disconnected, filtered apart, or
// farther than MaxDepth.
//
// The tie-break among equally short paths is deterministic: the
// lexicographically smallest neighbor is expanded first.
func ShortestPath(g *wordgraph.Graph, from, to string, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := searchOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	src, dst := wordgraph.Normalize(from), wordgraph.Normalize(to)
	if !g.Has(src) || !g.Has(dst) {
		return nil, ErrWordNotFound
	}
	if o.filter != nil && (!o.filter(src) || !o.filter(dst)) {
		return nil, ErrNoPath
	}
	if src == dst {
		return []string{src}, nil
	}
	// Different length classes never connect; skip the sweep.
	if len(src) != len(dst) || !g.SameComponent(src, dst) {
		return nil, ErrNoPath
	}

	w := &walker{
		graph:  g,
		opts:   o,
		target: dst,
		queue:  make([]queueItem, 0, g.Degree(src)+1),
		parent: make(map[string]string),
	}
	w.parent[src] = ""
	w.queue = append(w.queue, queueItem{word: src, depth: 0})
	if !w.loop() {
		return nil, ErrNoPath
	}

	return w.pathTo(dst), nil
}

// loop processes the queue until the target is discovered or the
// frontier is exhausted. Reports whether the target was reached.
func (w *walker) loop() bool {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		nextDepth := item.depth + 1
		if w.opts.maxDepth > 0 && nextDepth > w.opts.maxDepth {
			continue
		}
		for _, nbr := range w.graph.Neighbors(item.word) {
			if _, seen := w.parent[nbr]; seen {
				continue
			}
			if w.opts.filter != nil && !w.opts.filter(nbr) {
				continue
			}
			w.parent[nbr] = item.word
			if nbr == w.target {
				return true
			}
			w.queue = append(w.queue, queueItem{word: nbr, depth: nextDepth})
		}
	}

	return false
}

// pathTo reconstructs the root → dest path from parent links.
func (w *walker) pathTo(dest string) []string {
	path := []string{}
	for cur := dest; cur != ""; cur = w.parent[cur] {
		path = append(path, cur)
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Distance returns the number of moves on the shortest path between
// two words: 0 when they are equal, or NoPath alongside ErrNoPath when
// no route exists. Other errors mirror ShortestPath.
func Distance(g *wordgraph.Graph, from, to string, opts ...Option) (int, error) {
	path, err := ShortestPath(g, from, to, opts...)
	if err != nil {
		return NoPath, err
	}

	return len(path) - 1, nil
}

// Hint returns the next word to play along an optimal route from
// current to target: the second element of the shortest path.
// Returns ErrNoHint when current already equals target, and otherwise
// mirrors ShortestPath's errors.
func Hint(g *wordgraph.Graph, current, target string, opts ...Option) (string, error) {
	path, err := ShortestPath(g, current, target, opts...)
	if err != nil {
		return "", err
	}
	if len(path) < 2 {
		return "", ErrNoHint
	}

	return path[1], nil
}
