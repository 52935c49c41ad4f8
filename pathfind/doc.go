// Package pathfind provides breadth-first shortest paths, distances,
// and hint derivation over a wordgraph.Graph.
//
// What:
//
//   - ShortestPath returns the optimal word sequence between two
//     words, endpoints inclusive.
//   - Distance returns the move count of that sequence (path length
//     minus one), with the NoPath sentinel when unreachable.
//   - Hint returns the next word along an optimal route: the second
//     element of the shortest path.
//   - WithFilter restricts the traversal to a vocabulary subset (for
//     category-limited play); WithMaxDepth bounds the search radius.
//
// Why:
//
//   - BFS visits words in non-decreasing move count, so the first
//     route found to any word is provably shortest in an unweighted
//     graph. That powers both optimal hints and puzzle distances.
//
// Determinism:
//
//	Adjacency lists are sorted and the queue is FIFO, so among
//	equally short paths the one expanding the lexicographically
//	smallest neighbor first wins. The tie-break is part of the
//	package contract and safe to rely on in tests.
//
// Complexity (V = words in the length class, E = its edges):
//
//   - Time:   O(V + E) per query
//   - Memory: O(V)
//
// Errors:
//
//   - ErrGraphNil: nil graph pointer.
//   - ErrWordNotFound: an endpoint is not a graph node.
//   - ErrNoPath: endpoints are disconnected (or beyond MaxDepth).
//   - ErrNoHint: no forward move exists (already at the target).
//   - ErrOptionViolation: invalid option supplied.
//
// The engine package maps these to the none/sentinel results the
// gameplay surface promises; callers using pathfind directly get the
// richer error vocabulary.
package pathfind
