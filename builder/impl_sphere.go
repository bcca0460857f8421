// SPDX-License-Identifier: MIT
// Package: zenmesh/builder
//
// impl_sphere.go: implementation of Sphere(rings, segments) constructor.
//
// Contract:
//   • rings ≥ 1 latitude rings and segments ≥ 3 (else ErrTooFewVertices).
//   • Vertex 0 is the south pole, ring i vertex s is 1 + i*segments + s,
//     the north pole is the last vertex. Poles have valence = segments.
//   • Face slots: south fan (segments triangles), then quads ring by ring,
//     then the north fan.
//   • No UVs are emitted (a UV sphere needs per-pole corner UVs that no
//     traversal fixture relies on).
//
// Complexity: O(rings*segments).

package builder

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/zenmesh/mesh"
)

const (
	minSphereRings    = 1
	minSphereSegments = 3
)

// Sphere returns a Constructor that builds a closed UV-sphere topology.
func Sphere(rings, segments int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if rings < minSphereRings || segments < minSphereSegments {
			return fmt.Errorf("%s: rings=%d (≥ %d), segments=%d (≥ %d): %w",
				methodSphere, rings, minSphereRings, segments, minSphereSegments, ErrTooFewVertices)
		}

		base := m.NumVertices()
		south := base
		m.AddVertex(cfg.origin.Add(r3.Vector{Y: -cfg.radius}))
		for i := 0; i < rings; i++ {
			phi := -math.Pi/2 + float64(i+1)*math.Pi/float64(rings+1)
			ringRadius := cfg.radius * math.Cos(phi)
			for s := 0; s < segments; s++ {
				m.AddVertex(cfg.origin.Add(ringPoint(s, segments, ringRadius, cfg.radius*math.Sin(phi))))
			}
		}
		north := m.AddVertex(cfg.origin.Add(r3.Vector{Y: cfg.radius}))

		vtx := func(i, s int) int { return base + 1 + i*segments + s%segments }
		slot := 0
		next := func(verts []int) error {
			err := addFace(m, cfg.withoutUVs(), methodSphere, slot, verts, nil)
			slot++
			return err
		}
		for s := 0; s < segments; s++ {
			if err := next([]int{south, vtx(0, s+1), vtx(0, s)}); err != nil {
				return err
			}
		}
		for i := 0; i < rings-1; i++ {
			for s := 0; s < segments; s++ {
				if err := next([]int{vtx(i, s), vtx(i, s+1), vtx(i+1, s+1), vtx(i+1, s)}); err != nil {
					return err
				}
			}
		}
		for s := 0; s < segments; s++ {
			if err := next([]int{north, vtx(rings-1, s), vtx(rings-1, s+1)}); err != nil {
				return err
			}
		}
		return nil
	}
}

func (c builderConfig) withoutUVs() builderConfig {
	c.uvs = false
	return c
}
