// Package wordgraph declares the Graph and Builder types, sentinel
// errors, length-bound options, and word normalization.
package wordgraph

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyWord indicates a word that normalized to the empty string.
	ErrEmptyWord = errors.New("wordgraph: empty word")

	// ErrWordLength indicates a word outside the configured length bounds.
	ErrWordLength = errors.New("wordgraph: word length outside bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wordgraph: invalid option supplied")
)

// Default word length policy, matching the classic 3–6 letter
// educational dictionaries the engine ships with.
const (
	DefaultMinWordLen = 3
	DefaultMaxWordLen = 6
)

// patternMask is the placeholder byte used when bucketing words by
// a single masked position ("C_T").
const patternMask = '_'

// Normalize folds a raw word into its canonical form: surrounding
// whitespace trimmed and letters upper-cased. All package APIs
// normalize their inputs, so callers may pass user-typed text as is.
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// Option configures a Builder via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation by NewBuilder's first Add or Build call.
type Option func(*buildOptions)

// buildOptions holds the length policy for admitted words.
type buildOptions struct {
	minLen int
	maxLen int

	// internal error recorded during option parsing
	err error
}

// defaultBuildOptions returns the 3–6 letter default policy.
func defaultBuildOptions() buildOptions {
	return buildOptions{minLen: DefaultMinWordLen, maxLen: DefaultMaxWordLen}
}

// WithLengthBounds overrides the admitted word length range [min, max].
//
//	min >= 1 and max >= min: valid
//	anything else: ErrOptionViolation
func WithLengthBounds(min, max int) Option {
	return func(o *buildOptions) {
		if min < 1 || max < min {
			o.err = fmt.Errorf("%w: length bounds [%d, %d]", ErrOptionViolation, min, max)
			return
		}
		o.minLen = min
		o.maxLen = max
	}
}

// Graph is the immutable word-adjacency structure.
//
// A Graph is produced by Builder.Build and never mutated afterwards;
// it is safe for unlimited concurrent read access without locks.
// All query methods normalize their inputs and are total: unknown
// words yield zero values, never errors.
type Graph struct {
	words  map[string]struct{} // node set
	sorted []string            // node set, lexicographic
	adj    map[string][]string // word → sorted neighbor list
	comp   map[string]int      // word → component label
	comps  int                 // number of connected components
	edges  int                 // undirected edge count
	minLen int
	maxLen int
}

// Builder accumulates words and freezes them into a Graph.
// The zero value is not usable; construct with NewBuilder.
type Builder struct {
	opts  buildOptions
	words map[string]struct{}
}

// NewBuilder creates an empty Builder with the given length policy.
// By default words of 3 to 6 letters are admitted.
// Complexity: O(1)
func NewBuilder(opts ...Option) *Builder {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Builder{opts: o, words: make(map[string]struct{})}
}
