// Package zenmesh answers selection questions about polygon meshes: which
// components neighbour a selection, in what order a selection runs, which
// vertices lie on the shortest edge path between two others, and where the
// vertices of a loop or loft should go to be evenly spread.
//
// Everything works on components (vertices, edges, faces and UVs) named the
// way the host application names them, e.g. "pPlane1.vtx[12]", and reaches
// the mesh only through the traverse.Provider interface.
//
// Packages:
//
//	component/ Component, Kind and ordered Set values
//	mesh/      in-memory Mesh and multi-shape Scene providers
//	builder/   plane, tube and sphere fixtures
//	traverse/  ring expansion, ordering, shortest paths, chains, flood fill
//	loop/      edges between vertices, curve distribution
//	loft/      section alignment and lattice distribution
//	meshio/    YAML scene files
//	options/   persisted tool options
//
// Quick example:
//
//	 8───9──10──11
//	 │   │   │   │
//	 4───5───6───7      traverse.ShortestPath(m, vtx[0], vtx[3])
//	 │   │   │   │        → vtx[0] vtx[1] vtx[2] vtx[3]
//	 0───1───2───3
//
// The cmd/zentools command runs the tools against YAML scene files.
package zenmesh
