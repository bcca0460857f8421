// Package builder provides deterministic “functional-options”-style mesh
// fixtures for zenmesh tests, examples and the zentools CLI.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:  a function that adds geometry to a *mesh.Mesh.
//     – Build:        creates the mesh, resolves options, runs constructors in order.
//   - Topologies:
//     – Plane(rows, cols):      rows×cols quads in the XZ plane, one UV per vertex.
//     – Tube(rings, segments):  open cylinder of closed edge rings with a UV seam.
//     – Sphere(rings, segments): latitude rings closed by two pole fans.
//   - Options:
//     – WithShapeName, WithSpacing, WithRadius, WithOrigin, WithHoles, WithoutUVs.
//
// Guarantees:
//
//   - Same inputs and options ⇒ identical vertex, edge, face and UV numbering.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime errors for invalid build parameters wrap ErrTooFewVertices or
//     ErrConstructFailed with a method prefix ("Plane: ...").
//
// Index layout (documented so tests can address components directly):
//
//	Plane   vertex(r, c) = r*(cols+1) + c, at origin + (c·spacing, 0, r·spacing)
//	Tube    vertex(r, s) = r*segments + s, UV(r, s) = r*(segments+1) + s
//	Sphere  vertex 0 is the south pole, ring i vertex s = 1 + i*segments + s,
//	        the north pole is last
package builder
