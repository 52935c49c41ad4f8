// SPDX-License-Identifier: MIT

package puzzle_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexichain/lexichain/puzzle"
	"github.com/lexichain/lexichain/wordgraph"
)

func chainGraph(t *testing.T, words ...string) *wordgraph.Graph {
	t.Helper()
	b := wordgraph.NewBuilder()
	require.NoError(t, b.Add(words...))

	return b.Build()
}

func seeded(seed int64) puzzle.Option {
	return puzzle.WithRand(rand.New(rand.NewSource(seed)))
}

// TestNewGenerator_Validation covers nil graphs and bad options.
func TestNewGenerator_Validation(t *testing.T) {
	_, err := puzzle.NewGenerator(nil)
	assert.ErrorIs(t, err, puzzle.ErrGraphNil)

	g := chainGraph(t, "CAT", "BAT")
	_, err = puzzle.NewGenerator(g, puzzle.WithMaxAttempts(0))
	assert.ErrorIs(t, err, puzzle.ErrOptionViolation)
}

// TestPair_WindowAndPoolValidation covers degenerate inputs.
func TestPair_WindowAndPoolValidation(t *testing.T) {
	g := chainGraph(t, "CAT", "BAT", "HAT", "COT", "COW")
	gen, err := puzzle.NewGenerator(g, seeded(1))
	require.NoError(t, err)

	_, err = gen.Pair(g.Words(), 0, 3)
	assert.ErrorIs(t, err, puzzle.ErrBadWindow)
	_, err = gen.Pair(g.Words(), 4, 2)
	assert.ErrorIs(t, err, puzzle.ErrBadWindow)

	_, err = gen.Pair(nil, 1, 3)
	assert.ErrorIs(t, err, puzzle.ErrEmptyPool)
	_, err = gen.Pair([]string{"CAT"}, 1, 3)
	assert.ErrorIs(t, err, puzzle.ErrEmptyPool)
	// pool words absent from the graph are ignored
	_, err = gen.Pair([]string{"QUARK", "XENON"}, 1, 3)
	assert.ErrorIs(t, err, puzzle.ErrEmptyPool)
}

// TestPair_RespectsWindow samples repeatedly and asserts every
// accepted pair satisfies the distance constraint.
func TestPair_RespectsWindow(t *testing.T) {
	g := chainGraph(t, "CAT", "BAT", "HAT", "COT", "COW", "BOW", "BOT")
	gen, err := puzzle.NewGenerator(g, seeded(7))
	require.NoError(t, err)

	pool := g.Words()
	for i := 0; i < 50; i++ {
		p, err := gen.Pair(pool, 1, 2)
		require.NoError(t, err)
		assert.NotEqual(t, p.Start, p.Target)
		assert.GreaterOrEqual(t, p.Distance, 1)
		assert.LessOrEqual(t, p.Distance, 2)
		assert.NotEmpty(t, p.ID)
	}
}

// TestPair_AdjacentOnly pins the min=max=1 window to direct neighbors.
func TestPair_AdjacentOnly(t *testing.T) {
	g := chainGraph(t, "CAT", "BAT", "HAT", "COT", "COW")
	gen, err := puzzle.NewGenerator(g, seeded(3))
	require.NoError(t, err)

	for i := 0; i < 25; i++ {
		p, err := gen.Pair(g.Words(), 1, 1)
		require.NoError(t, err)
		assert.Contains(t, g.Neighbors(p.Start), p.Target,
			"pair (%s, %s) is not an edge", p.Start, p.Target)
	}
}

// TestPair_DisconnectedPoolTerminates must return ErrNoPair within the
// budget, not loop forever, when no pair can ever satisfy the window.
func TestPair_DisconnectedPoolTerminates(t *testing.T) {
	// two isolated words: distance is undefined for every draw
	g := chainGraph(t, "CAT", "ZOO")
	gen, err := puzzle.NewGenerator(g, seeded(5), puzzle.WithMaxAttempts(64))
	require.NoError(t, err)

	_, err = gen.Pair(g.Words(), 1, 6)
	assert.ErrorIs(t, err, puzzle.ErrNoPair)
}

// TestPair_UnreachableWindowTerminates covers a connected pool whose
// diameter is below the requested window.
func TestPair_UnreachableWindowTerminates(t *testing.T) {
	g := chainGraph(t, "CAT", "BAT")
	gen, err := puzzle.NewGenerator(g, seeded(5), puzzle.WithMaxAttempts(64))
	require.NoError(t, err)

	_, err = gen.Pair(g.Words(), 5, 6)
	assert.ErrorIs(t, err, puzzle.ErrNoPair)
}

// TestPair_DeterministicUnderSeed fixes the draw sequence for a seeded
// source regardless of pool ordering.
func TestPair_DeterministicUnderSeed(t *testing.T) {
	g := chainGraph(t, "CAT", "BAT", "HAT", "COT", "COW")

	genA, err := puzzle.NewGenerator(g, seeded(42))
	require.NoError(t, err)
	genB, err := puzzle.NewGenerator(g, seeded(42))
	require.NoError(t, err)

	a, err := genA.Pair([]string{"CAT", "BAT", "HAT", "COT", "COW"}, 1, 2)
	require.NoError(t, err)
	b, err := genB.Pair([]string{"COW", "COT", "HAT", "BAT", "CAT"}, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, a.Start, b.Start)
	assert.Equal(t, a.Target, b.Target)
	assert.Equal(t, a.Distance, b.Distance)
	// IDs are unique per generated pair even for identical draws
	assert.NotEqual(t, a.ID, b.ID)
}
