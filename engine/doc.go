// Package engine is the consumer-facing facade of lexichain: a single
// handle that external collaborators (game sessions, HTTP handlers,
// scoring) use for every gameplay query.
//
// What:
//
//   - New builds an explicitly constructed, dependency-injected engine
//     (no global singleton); configuration, logging, and randomness
//     are all injectable options.
//   - Load and LoadCategory feed it a dictionary; each load builds a
//     brand-new immutable graph + lexicon snapshot off to the side and
//     atomically swaps the handle future queries read. In-flight
//     queries keep traversing the old snapshot, which is never
//     mutated.
//   - Every query is total over arbitrary user text: unknown or
//     unreachable words yield none/sentinel results (nil path,
//     NoPath distance, ok=false), never errors.
//
// Why:
//
//   - Gameplay code should not thread four packages together per
//     player action; the engine composes wordgraph, lexicon, moves,
//     pathfind, and puzzle behind the narrow read-only surface the
//     game needs.
//
// Concurrency:
//
//   - Queries are lock-free reads of an atomic snapshot pointer and
//     scale with dictionary size, not session count.
//   - Loads serialize on an internal mutex; they are expected at
//     startup and on explicit dictionary reloads only.
//   - Random pair sampling serializes briefly on the engine's random
//     source.
//
// The Mixed pseudo-category resolves to the whole dictionary wherever
// a category tag is accepted, matching the original game's behavior.
package engine
