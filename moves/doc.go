// Package moves classifies a proposed word-chain transition
// (current → next) into a closed set of typed outcomes.
//
// What:
//
//   - Validate is a pure function: no graph mutation, no side effects,
//     and no errors; every classification is an Outcome value that
//     callers turn into gameplay messaging or scoring.
//   - Evaluation order is fixed, first match wins:
//     same word → wrong length → unknown word (globally, or within a
//     restricted category vocabulary) → not one letter apart → valid.
//
// Why:
//
//   - A Valid outcome logically implies a graph edge exists between
//     the two words, because the graph connects exactly the
//     same-length Hamming-distance-1 pairs Validate accepts; no
//     separate edge lookup is needed.
//
// Inputs are case-normalized, so raw user text is safe to pass.
package moves
