// Package pathfind declares tunable options and error definitions for
// shortest-path queries over a wordgraph.Graph.
package pathfind

import (
	"errors"
	"fmt"
)

// NoPath is the sentinel Distance result for unreachable pairs.
const NoPath = -1

// Sentinel errors for path queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("pathfind: graph is nil")

	// ErrWordNotFound is returned when an endpoint is absent from the graph.
	ErrWordNotFound = errors.New("pathfind: word not in graph")

	// ErrNoPath is returned when the endpoints are disconnected.
	ErrNoPath = errors.New("pathfind: no path exists")

	// ErrNoHint is returned by Hint when there is no forward move,
	// i.e. current already equals target.
	ErrNoHint = errors.New("pathfind: no hint available")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

// Option configures a path query via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the query runs.
type Option func(*searchOptions)

// searchOptions holds parameters customizing the BFS.
type searchOptions struct {
	// maxDepth, if > 0, bounds the search radius in moves.
	maxDepth int

	// filter, if set, restricts traversal to words it admits.
	filter func(word string) bool

	// internal error recorded during option parsing
	err error
}

// WithMaxDepth bounds the search at the given number of moves.
//
//	d > 0: limit the radius to d moves
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *searchOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// WithFilter restricts the traversal to words fn admits. Both
// endpoints must be admitted, or the query reports ErrNoPath.
func WithFilter(fn func(word string) bool) Option {
	return func(o *searchOptions) {
		if fn != nil {
			o.filter = fn
		}
	}
}
