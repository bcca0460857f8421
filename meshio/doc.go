// SPDX-License-Identifier: MIT
// Package: zenmesh/meshio

// Package meshio reads and writes scenes as YAML documents:
//
//	shapes:
//	  - name: pPlane1
//	    vertices: [[0, 0, 0], [1, 0, 0], [1, 0, 1], [0, 0, 1]]
//	    uvs: [[0, 0], [1, 0], [1, 1], [0, 1]]
//	    faces:
//	      - vertices: [0, 1, 2, 3]
//	        uvs: [0, 1, 2, 3]
//	    edges: [[0, 2]]
//
// uvs, faces and edges are optional. edges lists wire edges only; face edges
// are implied by the faces.
package meshio
