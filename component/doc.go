// Package component defines typed identifiers for polygon mesh components
// (vertices, edges, faces and UVs) and the ordered set type every traversal
// in zenmesh consumes and produces.
//
// What
//
//   - Component is a comparable (ShapeID, Kind, Index) tuple. Host names such
//     as "pPlane1.vtx[12]" are produced by String and read back by Parse, so
//     the string form only exists at the host boundary.
//   - Set is an unordered collection of unique components with set algebra
//     (Union, Intersection, Difference). Iteration is always ascending by
//     (shape, kind, index), which keeps every traversal reproducible.
//
// Errors
//
//   - ErrInvalidSelection  empty selection, mixed kinds, or otherwise unusable input.
//   - ErrTooManyShapes     components span more than one mesh shape.
//   - ErrBadComponentName  a host name could not be parsed.
//   - ErrUnknownComponent  an index that does not exist on its shape.
package component
