// Package lexicon maintains per-word metadata for the word-chain
// engine: category membership (a many-to-many relation) and a derived
// 1–5 difficulty rating.
//
// What:
//
//   - Builder accumulates category → word assignments; a word may be
//     added to any number of categories.
//   - Build freezes the assignments into an immutable *Index with
//     deterministic difficulty ratings.
//   - Difficulty = clamp(base(category) + lengthAdjustment, 1, 5),
//     where words of 5+ letters get +1, words of up to 3 letters −1.
//     Default bases: general 2, education 3, science/biology/physics 4.
//
// Why:
//
//   - Educational gameplay filters puzzles by topic vocabulary and
//     rough difficulty without touching graph topology.
//
// Determinism:
//
//	A word appearing in several categories takes the highest base
//	among them, so its rating never depends on load order. Unknown
//	words rate the neutral default of 3.
//
// The index stores whatever words it is given; keeping it consistent
// with a word graph (no metadata for absent nodes) is the engine's
// job, since both are built from the same loader output.
package lexicon
