// SPDX-License-Identifier: MIT
// Package: zenmesh/builder
//
// impl_tube.go: implementation of Tube(rings, segments) constructor.
//
// Contract:
//   • rings ≥ 2 and segments ≥ 3 (else ErrTooFewVertices).
//   • Vertex (r, s) = r*segments + s sits at angle 2πs/segments on a circle of
//     cfg.radius, at height r·spacing along +Y.
//   • Each ring of vertices is a closed edge loop; the tube is open at both ends.
//   • UVs carry a seam: every ring has segments+1 UVs, UV (r, segments)
//     duplicates the position of vertex (r, 0) at u = 1.
//   • Face slot r*segments + s joins ring r and ring r+1 between segments s and s+1.
//
// Complexity: O(rings*segments).

package builder

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"

	"github.com/katalvlaran/zenmesh/mesh"
)

const (
	minTubeRings    = 2
	minTubeSegments = 3
)

// Tube returns a Constructor that builds an open cylinder.
func Tube(rings, segments int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if rings < minTubeRings || segments < minTubeSegments {
			return fmt.Errorf("%s: rings=%d (≥ %d), segments=%d (≥ %d): %w",
				methodTube, rings, minTubeRings, segments, minTubeSegments, ErrTooFewVertices)
		}

		base, uvBase := m.NumVertices(), m.NumUVs()
		for r := 0; r < rings; r++ {
			for s := 0; s < segments; s++ {
				m.AddVertex(cfg.origin.Add(ringPoint(s, segments, cfg.radius, float64(r)*cfg.spacing)))
			}
			if cfg.uvs {
				for s := 0; s <= segments; s++ {
					m.AddUV(r2.Point{X: float64(s) / float64(segments), Y: float64(r) / float64(rings-1)})
				}
			}
		}

		vtx := func(r, s int) int { return base + r*segments + s%segments }
		uv := func(r, s int) int { return uvBase + r*(segments+1) + s }
		for r := 0; r < rings-1; r++ {
			for s := 0; s < segments; s++ {
				verts := []int{vtx(r, s), vtx(r, s+1), vtx(r+1, s+1), vtx(r+1, s)}
				uvs := []int{uv(r, s), uv(r, s+1), uv(r+1, s+1), uv(r+1, s)}
				if err := addFace(m, cfg, methodTube, r*segments+s, verts, uvs); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// ringPoint returns segment s of a horizontal circle at height y.
func ringPoint(s, segments int, radius, y float64) r3.Vector {
	theta := 2 * math.Pi * float64(s) / float64(segments)
	return r3.Vector{X: radius * math.Cos(theta), Y: y, Z: radius * math.Sin(theta)}
}
