// SPDX-License-Identifier: MIT

// Package puzzle declares the Pair result type, generator options, and
// sentinel errors.
package puzzle

import (
	"errors"
	"fmt"
	"math/rand"
)

// DefaultMaxAttempts bounds the rejection-sampling loop when no
// override is supplied.
const DefaultMaxAttempts = 200

// Sentinel errors for pair generation.
var (
	// ErrGraphNil is returned when the generator is given a nil graph.
	ErrGraphNil = errors.New("puzzle: graph is nil")

	// ErrBadWindow is returned for an invalid distance window.
	ErrBadWindow = errors.New("puzzle: invalid distance window")

	// ErrEmptyPool is returned when fewer than two candidate words
	// exist in the graph.
	ErrEmptyPool = errors.New("puzzle: empty candidate pool")

	// ErrNoPair is returned when the attempt budget is exhausted
	// without finding a pair inside the window.
	ErrNoPair = errors.New("puzzle: no pair found within attempt budget")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("puzzle: invalid option supplied")
)

// Pair is an ordered start/target puzzle, annotated with its
// shortest-path distance and a unique ID for session bookkeeping.
type Pair struct {
	ID       string
	Start    string
	Target   string
	Distance int
}

// Option configures a Generator via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation by NewGenerator.
type Option func(*genOptions)

type genOptions struct {
	rng         *rand.Rand
	maxAttempts int

	// internal error recorded during option parsing
	err error
}

// WithRand injects a random source, typically seeded for reproducible
// tests. A nil source leaves the time-seeded default in place.
func WithRand(r *rand.Rand) Option {
	return func(o *genOptions) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithMaxAttempts overrides the rejection-sampling attempt budget.
//
//	n >= 1: valid
//	n < 1: invalid option → ErrOptionViolation
func WithMaxAttempts(n int) Option {
	return func(o *genOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxAttempts must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.maxAttempts = n
	}
}
