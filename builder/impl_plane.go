// SPDX-License-Identifier: MIT
// Package: zenmesh/builder
//
// impl_plane.go: implementation of Plane(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 quads (else ErrTooFewVertices).
//   • (rows+1)*(cols+1) vertices in row-major order at origin + (c·spacing, 0, r·spacing).
//   • One UV per vertex at (c/cols, r/rows), same numbering as the vertices.
//   • Faces in row-major slot order r*cols + c, corners counter-clockwise
//     seen from +Y: (r,c) (r,c+1) (r+1,c+1) (r+1,c).
//
// Complexity: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"

	"github.com/katalvlaran/zenmesh/mesh"
)

const minPlaneDim = 1

// Plane returns a Constructor that builds a rows×cols quad grid.
func Plane(rows, cols int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if rows < minPlaneDim || cols < minPlaneDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodPlane, rows, cols, minPlaneDim, ErrTooFewVertices)
		}

		base, uvBase := m.NumVertices(), m.NumUVs()
		for r := 0; r <= rows; r++ {
			for c := 0; c <= cols; c++ {
				m.AddVertex(cfg.origin.Add(r3.Vector{X: float64(c) * cfg.spacing, Z: float64(r) * cfg.spacing}))
				if cfg.uvs {
					m.AddUV(r2.Point{X: float64(c) / float64(cols), Y: float64(r) / float64(rows)})
				}
			}
		}

		at := func(r, c int) int { return r*(cols+1) + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				corners := []int{at(r, c), at(r, c+1), at(r+1, c+1), at(r+1, c)}
				verts := make([]int, 4)
				uvs := make([]int, 4)
				for i, k := range corners {
					verts[i] = base + k
					uvs[i] = uvBase + k
				}
				if err := addFace(m, cfg, methodPlane, r*cols+c, verts, uvs); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
