// SPDX-License-Identifier: MIT
// Package: zenmesh/mesh

// Package mesh is the in-memory polygon mesh store and the reference
// topology provider consumed by package traverse.
//
// What
//
//   - Mesh holds one shape: vertex positions (r3.Vector), UV points
//     (r2.Point), polygonal faces with optional per-corner UV indices, and
//     the derived edge table. Wire edges (edges without faces) are allowed.
//   - Scene holds several meshes keyed by shape name and routes every
//     query to the owning mesh. A query spanning shapes fails with
//     component.ErrTooManyShapes.
//
// Conversion
//
// Convert maps a homogeneous component set to another kind. With
// internal=false every incident element is returned. With internal=true the
// result is restricted as follows:
//
//	V → E    edges with both end vertices selected
//	E → V    vertices shared by two or more selected edges
//	V → F    faces whose every corner vertex is selected
//	UV → F   faces whose every corner UV is selected
//	F → V/E  elements all of whose adjacent faces are selected
//	UV → E   edges whose two face-corner UVs are both selected
//
// All other pairs ignore the flag. E → UV returns the corner UVs of the
// edge's vertices in every adjacent face, so UV walks cross texture seams.
//
// Concurrency
//
// Mesh and Scene guard their state with sync.RWMutex. Queries take the read
// lock; AddVertex, AddFace, AddEdge and SetPosition take the write lock.
//
// Complexity
//
// Convert is O(k·d) for k selected components of average incidence d.
// Incidence lists are built eagerly by AddFace/AddEdge.
package mesh
