// Package lexichain is an in-memory word-graph engine for educational
// word-chain (word ladder) puzzles: players transform a start word into
// a target word one letter at a time, every intermediate step being a
// real dictionary word.
//
// 🚀 What is lexichain?
//
//	An embeddable, immutable engine that brings together:
//		• Graph construction: words as nodes, one-letter differences as edges
//		• Move validation: a closed set of typed outcomes, never exceptions
//		• Pathfinding: BFS shortest paths, distances, and optimal hints
//		• Puzzle sampling: random start/target pairs under a distance window
//		• Categories: general / science / biology / physics / education
//		  vocabularies with per-word 1–5 difficulty ratings
//
// ✨ Why choose lexichain?
//
//   - Build once, query forever: graphs are immutable after construction
//   - Lock-free reads: safe for unlimited concurrent gameplay queries
//   - Deterministic: same word set always yields the same graph and paths
//   - Total queries: arbitrary user text never causes an error mid-game
//
// Everything is organized under small, focused packages:
//
//	wordgraph/ — immutable word-adjacency graph, components & stats
//	lexicon/   — category membership and word difficulty index
//	moves/     — pure move validation with typed outcomes
//	pathfind/  — BFS shortest path, distance, and hint derivation
//	puzzle/    — bounded rejection sampling of puzzle pairs
//	engine/    — the consumer-facing facade with atomic hot-reload
//
// Quick ASCII example:
//
//	    CAT───COT───COW
//	     │     │
//	    HAT   DOT
//
//	CAT → COW solves in two moves via COT.
//
// The engine package is the only surface external collaborators (game
// sessions, HTTP handlers, scoring) need; everything beneath it is
// usable standalone.
//
//	go get github.com/lexichain/lexichain
package lexichain
