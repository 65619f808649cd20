// Package patternroute routes wires between pads around rectangular
// obstacles by pattern substitution.
//
// A connection starts as one straight segment. Every segment that crosses a
// relevant obstacle is replaced by small detour shapes from a
// pattern.Library, and a weighted best-first search keeps the candidates
// ordered by solved length plus a depth-penalized estimate of what remains.
//
// It exposes three entry points:
//
//   - Route / RouteDetailed: route every connection of a Circuit, one search
//     per connection, spread over a pool of workers.
//   - Search: run one connection's search to completion and get a Result.
//   - Stepper: iterate one search a node at a time to drive UIs or
//     debugging tools.
//
// Nothing is logged unless SetLogger or WithLogger is used.
package patternroute
