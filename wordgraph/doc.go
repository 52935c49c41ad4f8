// Package wordgraph builds an immutable adjacency graph over a word
// list: every admitted word is a node, and two words share an edge when
// they have equal length and differ in exactly one character position
// (Hamming distance 1).
//
// What:
//
//   - Builder accumulates normalized words under configurable length
//     bounds and freezes them into an immutable *Graph.
//   - Edges are derived with a wildcard-pattern index: each word is
//     bucketed once per masked position ("C_T" matches CAT, COT, CUT),
//     and every bucket pair is a one-letter neighbor.
//   - Connected components are labeled once at build time, so
//     same-component checks are O(1) afterwards.
//
// Why:
//
//   - Word-chain gameplay needs constant-time move lookups and cheap
//     neighbor enumeration for thousands of dictionary words.
//   - An immutable graph is safely shared by any number of concurrent
//     readers with no locks (see the engine package for hot reloads).
//
// Determinism:
//
//	The node set, edge set, sorted adjacency lists, and component
//	labels depend only on the word set, never on insertion order.
//	Neighbors are returned in lexicographic order.
//
// Complexity (n = words, L = max word length):
//
//   - Build:     O(n·L) expected (pattern bucketing) + O(Σ deg·log)
//     for adjacency sorting.
//   - Neighbors: O(deg) per call (defensive copy).
//   - Has, Degree, SameComponent: O(1).
//
// Errors:
//
//   - ErrEmptyWord: a word normalized to the empty string.
//   - ErrWordLength: a word outside the configured length bounds.
//   - ErrOptionViolation: invalid builder option (e.g. inverted bounds).
package wordgraph
