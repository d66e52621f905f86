// Package reducer turns an ordered list of survey shots into absolute
// station coordinates.
//
// The reduction is a breadth-first traversal of the undirected station
// graph, anchored at a caller-supplied origin:
//
//   - Each shot contributes two half-edges (forward and negated reverse),
//     tagged with the shot's index so both directions are consumed together.
//   - The first path to reach a station fixes its position; positions are
//     never averaged, adjusted or overwritten afterwards.
//   - A shot whose far endpoint is already positioned is a loop closure and
//     yields a residual instead of a position: the vector difference between
//     where the shot says the endpoint should be and where it already is.
//   - Stations never reached from the origin are reported as disconnected,
//     not silently dropped.
//
// The output is deterministic for a fixed input, but which shots are
// classified as loop closures depends on the order shots were supplied:
// BFS walks each station's half-edges in insertion order, so reordering a
// shot list can swap a tree edge with a closure even though positions along
// the chosen spanning tree are unchanged. Callers that care about residual
// attribution must keep shot order stable.
//
// No adjustment (least-squares or otherwise) is performed; residuals are
// purely diagnostic.
package reducer
