// Package traverse infers paths, loops and orderings from sparse selections
// of polygon mesh components, and computes parametric positions along them.
//
// What
//
//   - Adjacency expansion: Expand and Border grow a component set by one step
//     (vertices and UVs through edges, edges through vertices, faces through
//     edges).
//   - Distance ordering: OrderByDistance sorts components by ring distance
//     from an origin.
//   - Endpoint detection: FindEndpoint and FindEndpointFrom return one end
//     of a path-like selection.
//   - Path ordering: OrderChain walks a contiguous selection end to end;
//     OrderByEndpoint orders a sparse one.
//   - Shortest path: ShortestPath and ShortestPathThrough connect vertices
//     with the fewest edges, breaking ties geometrically.
//   - Grouping and alignment: GroupContiguous splits an edge selection into
//     chains; AlignChains makes parallel chains run the same way.
//   - Parametric positions: Positions maps a chain to [0, spans], uniformly
//     or proportionally to edge length.
//   - Flood fill: FloodFill grows seeds up to an enclosing edge boundary.
//   - Chain helpers: VerticesEdges, UVsEdges, EdgesVertices,
//     TerminalVertices, IsClosed.
//
// Why
//
//   - An artist picks two or three vertices; tools need the whole loop
//     between them, in order, to distribute or loft geometry along it.
//
// Topology
//
//	Every operation consumes a Provider (see package mesh for the reference
//	implementation). Components of one call must belong to one shape and,
//	unless noted, share one kind.
//
// Determinism
//
//	component.Set iterates in ascending (shape, kind, index) order, and every
//	choice among equals takes the lowest component. The same mesh and
//	selection always produce the same result.
//
// Complexity (R = rings up to the farthest member, d = provider incidence)
//
//   - Ring growth expands only the newest ring: O(|ring|·d) per ring.
//   - OrderChain: O(|s|) single-component expansions.
//   - ShortestPath: O(R) expansions from each end.
//
// Options
//
//   - DefaultOptions(): no-op hooks, no ring limit.
//   - WithOnRing(fn):     called after each ring with its depth and members.
//   - WithOnWarning(fn):  receives advisory *PathWarning values.
//   - WithMaxRings(n):    fail with ErrNonContiguousSelection past n rings.
//
// Errors
//
//   - ErrProviderNil                  nil provider.
//   - ErrInvalidSelection             empty or mixed-kind input, missing edges.
//   - ErrBranchingSelection           OrderChain found a member with > 2 neighbours.
//   - ErrTooManyShapes                components on more than one shape.
//   - ErrNonContiguousSelection       unreachable components.
//   - ErrInvalidEdgeLength            zero-length edge in proportional positions.
//   - ErrInvalidSpans                 spans < 1.
//   - ErrOptionViolation              invalid Option.
//   - ErrMultipleVertexPathsPossible  advisory only, via the warning hook.
//
// Failures that concern particular components are returned as
// *SelectionError; use errors.As to list them.
//
// Traversals are synchronous, hold no state between calls and never mutate
// the provider. They are not cancellable.
package traverse
