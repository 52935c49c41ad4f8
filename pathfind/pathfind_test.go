package pathfind_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/lexichain/lexichain/pathfind"
	"github.com/lexichain/lexichain/wordgraph"
)

// chainGraph builds the canonical CAT..COW dictionary plus an isolated
// word and a disjoint length class.
func chainGraph(t *testing.T) *wordgraph.Graph {
	t.Helper()
	b := wordgraph.NewBuilder()
	err := b.Add("CAT", "BAT", "HAT", "COT", "COW", "ZOO", "CAKE", "LAKE")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	return b.Build()
}

// TestShortestPath_Errors verifies invalid inputs and options are rejected.
func TestShortestPath_Errors(t *testing.T) {
	g := chainGraph(t)

	if _, err := pathfind.ShortestPath(nil, "CAT", "COW"); !errors.Is(err, pathfind.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := pathfind.ShortestPath(g, "CAT", "DOG"); !errors.Is(err, pathfind.ErrWordNotFound) {
		t.Errorf("absent target: want ErrWordNotFound, got %v", err)
	}
	if _, err := pathfind.ShortestPath(g, "DOG", "CAT"); !errors.Is(err, pathfind.ErrWordNotFound) {
		t.Errorf("absent source: want ErrWordNotFound, got %v", err)
	}
	if _, err := pathfind.ShortestPath(g, "CAT", "COW", pathfind.WithMaxDepth(-1)); !errors.Is(err, pathfind.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestShortestPath_Canonical pins the textbook ladder CAT → COT → COW,
// relying on the documented lexicographic tie-break.
func TestShortestPath_Canonical(t *testing.T) {
	g := chainGraph(t)

	path, err := pathfind.ShortestPath(g, "CAT", "COW")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"CAT", "COT", "COW"}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}

	// inputs normalize
	path, err = pathfind.ShortestPath(g, "cat", "cow")
	if err != nil || len(path) != 3 {
		t.Errorf("normalized query: path %v, err %v", path, err)
	}
}

// TestShortestPath_NoRoute covers disconnection in all its shapes.
func TestShortestPath_NoRoute(t *testing.T) {
	g := chainGraph(t)

	// isolated word, same length class
	if _, err := pathfind.ShortestPath(g, "CAT", "ZOO"); !errors.Is(err, pathfind.ErrNoPath) {
		t.Errorf("isolated: want ErrNoPath, got %v", err)
	}
	// different length classes never connect
	if _, err := pathfind.ShortestPath(g, "CAT", "CAKE"); !errors.Is(err, pathfind.ErrNoPath) {
		t.Errorf("cross-length: want ErrNoPath, got %v", err)
	}
}

// TestShortestPath_SameWord yields the single-element path.
func TestShortestPath_SameWord(t *testing.T) {
	g := chainGraph(t)
	path, err := pathfind.ShortestPath(g, "CAT", "cat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"CAT"}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestShortestPath_MaxDepth bounds the search radius.
func TestShortestPath_MaxDepth(t *testing.T) {
	g := chainGraph(t)

	if _, err := pathfind.ShortestPath(g, "CAT", "COW", pathfind.WithMaxDepth(1)); !errors.Is(err, pathfind.ErrNoPath) {
		t.Errorf("radius 1: want ErrNoPath, got %v", err)
	}
	path, err := pathfind.ShortestPath(g, "CAT", "COW", pathfind.WithMaxDepth(2))
	if err != nil {
		t.Fatalf("radius 2: unexpected error %v", err)
	}
	if len(path) != 3 {
		t.Errorf("radius 2: path %v; want 3 words", path)
	}
}

// TestShortestPath_Filtered restricts traversal to a vocabulary subset.
func TestShortestPath_Filtered(t *testing.T) {
	g := chainGraph(t)
	inCategory := map[string]bool{"CAT": true, "COT": true, "COW": true}
	filter := func(w string) bool { return inCategory[w] }

	path, err := pathfind.ShortestPath(g, "CAT", "COW", pathfind.WithFilter(filter))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"CAT", "COT", "COW"}; !reflect.DeepEqual(path, want) {
		t.Errorf("filtered path = %v; want %v", path, want)
	}

	// endpoint outside the vocabulary
	if _, err = pathfind.ShortestPath(g, "CAT", "BAT", pathfind.WithFilter(filter)); !errors.Is(err, pathfind.ErrNoPath) {
		t.Errorf("filtered endpoint: want ErrNoPath, got %v", err)
	}
	// route word outside the vocabulary
	delete(inCategory, "COT")
	if _, err = pathfind.ShortestPath(g, "CAT", "COW", pathfind.WithFilter(filter)); !errors.Is(err, pathfind.ErrNoPath) {
		t.Errorf("severed route: want ErrNoPath, got %v", err)
	}
}

// TestDistance covers the move-count derivation and its sentinels.
func TestDistance(t *testing.T) {
	g := chainGraph(t)

	if d, err := pathfind.Distance(g, "CAT", "COW"); err != nil || d != 2 {
		t.Errorf("Distance(CAT, COW) = %d, %v; want 2, nil", d, err)
	}
	if d, err := pathfind.Distance(g, "CAT", "CAT"); err != nil || d != 0 {
		t.Errorf("Distance(CAT, CAT) = %d, %v; want 0, nil", d, err)
	}
	if d, err := pathfind.Distance(g, "CAT", "ZOO"); !errors.Is(err, pathfind.ErrNoPath) || d != pathfind.NoPath {
		t.Errorf("Distance(CAT, ZOO) = %d, %v; want NoPath sentinel", d, err)
	}
}

// TestDistance_MatchesPathLength is the §-free spelling of the
// "len(path) − 1 == distance" property over all reachable pairs.
func TestDistance_MatchesPathLength(t *testing.T) {
	g := chainGraph(t)
	words := g.Words()
	for _, a := range words {
		for _, b := range words {
			path, err := pathfind.ShortestPath(g, a, b)
			if err != nil {
				continue
			}
			d, derr := pathfind.Distance(g, a, b)
			if derr != nil {
				t.Errorf("Distance(%s, %s) errored where a path exists: %v", a, b, derr)
				continue
			}
			if d != len(path)-1 {
				t.Errorf("Distance(%s, %s) = %d; path %v has %d moves", a, b, d, path, len(path)-1)
			}
		}
	}
}

// TestHint covers hint derivation and its none-cases.
func TestHint(t *testing.T) {
	g := chainGraph(t)

	hint, err := pathfind.Hint(g, "CAT", "COW")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hint != "COT" {
		t.Errorf("Hint(CAT, COW) = %s; want COT", hint)
	}

	if _, err = pathfind.Hint(g, "CAT", "CAT"); !errors.Is(err, pathfind.ErrNoHint) {
		t.Errorf("same word: want ErrNoHint, got %v", err)
	}
	if _, err = pathfind.Hint(g, "CAT", "ZOO"); !errors.Is(err, pathfind.ErrNoPath) {
		t.Errorf("unreachable: want ErrNoPath, got %v", err)
	}
}

// TestHint_IsNeighborOnOptimalRoute asserts the hint property: a
// direct neighbor of current that strictly reduces the distance.
func TestHint_IsNeighborOnOptimalRoute(t *testing.T) {
	g := chainGraph(t)
	words := g.Words()
	for _, cur := range words {
		for _, tgt := range words {
			hint, err := pathfind.Hint(g, cur, tgt)
			if err != nil {
				continue
			}
			if !neighborOf(g, cur, hint) {
				t.Errorf("Hint(%s, %s) = %s is not a neighbor of %s", cur, tgt, hint, cur)
			}
			dCur, _ := pathfind.Distance(g, cur, tgt)
			dHint, _ := pathfind.Distance(g, hint, tgt)
			if dHint != dCur-1 {
				t.Errorf("Hint(%s, %s) = %s does not lie on a shortest route (%d vs %d)",
					cur, tgt, hint, dHint, dCur)
			}
		}
	}
}

func neighborOf(g *wordgraph.Graph, word, candidate string) bool {
	for _, n := range g.Neighbors(word) {
		if n == candidate {
			return true
		}
	}

	return false
}
