// SPDX-License-Identifier: MIT

// Package puzzle samples random start/target word pairs for new games,
// constrained to a shortest-path distance window.
//
// What:
//
//   - Generator draws two distinct words uniformly from a candidate
//     pool and accepts the pair when its BFS distance lies within
//     [minDist, maxDist].
//   - Sampling is rejection-based with a hard attempt budget, so a
//     sparse, disconnected, or impossible pool terminates promptly
//     with ErrNoPair instead of spinning.
//   - Accepted pairs carry a fresh UUID so external session plumbing
//     can reference the puzzle.
//
// Why:
//
//   - The distance window is the difficulty dial of a word-chain
//     round: short windows give warm-ups, long ones give challenges.
//   - The pool is the topic dial: the whole dictionary, one category's
//     vocabulary, or a difficulty-filtered slice of it.
//
// Determinism:
//
//	The random source is injectable (WithRand); under a seeded source
//	the sequence of draws, and therefore the sampled pair, is fully
//	reproducible. The default source is time-seeded.
//
// Errors:
//
//   - ErrGraphNil: generator constructed without a graph.
//   - ErrBadWindow: minDist < 1 or maxDist < minDist.
//   - ErrEmptyPool: fewer than two pool words exist in the graph.
//   - ErrNoPair: attempt budget exhausted without an acceptable pair.
//   - ErrOptionViolation: invalid option supplied.
package puzzle
