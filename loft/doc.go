// Package loft works on two or more parallel edge sections, as a loft or a
// bridge would take them.
//
// Sections groups an edge selection into chains and aligns them so that they
// run the same way and follow each other across the mesh. Lattice turns the
// aligned sections into vertex rows. Distribute spreads the vertices lying
// between the sections along the lattice columns, one loop.Distribute per
// column.
package loft
