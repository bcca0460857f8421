// Package loop implements the edge-loop tools built on package traverse:
// selecting the edges between picked vertices, and distributing the
// vertices of a loop segment along the curve its picked vertices span.
//
// Both operations take the picked vertices in any order. They are sorted
// along the path they span unless WithSelectionOrder(true) is given, and
// WithClose(true) routes back from the last vertex to the first.
//
// Distribute only computes targets; Apply writes them through a Mover such
// as *mesh.Scene.
package loop
