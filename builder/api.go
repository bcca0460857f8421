// SPDX-License-Identifier: MIT
// Package: zenmesh/builder
//
// api.go: thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Creates the mesh, resolves cfg, runs cons in order.
//   - Determinism: same inputs/options and constructor order ⇒ identical meshes.
//   - Constructors return sentinel errors; they never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/zenmesh/component"
	"github.com/katalvlaran/zenmesh/mesh"
)

// Constructor adds deterministic geometry to m using the resolved
// builderConfig. Several constructors may share one mesh; each one numbers
// its vertices after those already present.
type Constructor func(m *mesh.Mesh, cfg builderConfig) error

// Method tags used as error prefixes.
const (
	methodBuild  = "Build"
	methodPlane  = "Plane"
	methodTube   = "Tube"
	methodSphere = "Sphere"
)

// Build creates a mesh named by WithShapeName (default "pMesh1"), resolves
// the builder configuration from opts, and applies all constructors in
// order. Any constructor error is wrapped as "Build: %w".
//
// Complexity: O(len(opts)) plus the cost of each constructor.
func Build(opts []Option, cons ...Constructor) (*mesh.Mesh, error) {
	cfg := newBuilderConfig(opts...)

	m, err := mesh.New(component.ShapeID(cfg.shapeName))
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", methodBuild, err, ErrConstructFailed)
	}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuild, i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}
	return m, nil
}

// MustBuild is Build for fixtures known to be valid; it panics on error.
func MustBuild(opts []Option, cons ...Constructor) *mesh.Mesh {
	m, err := Build(opts, cons...)
	if err != nil {
		panic(err)
	}
	return m
}

// addFace adds a face unless its slot is a hole.
func addFace(m *mesh.Mesh, cfg builderConfig, method string, slot int, verts, uvs []int) error {
	if cfg.isHole(slot) {
		return nil
	}
	if !cfg.uvs {
		uvs = nil
	}
	if _, err := m.AddFace(verts, uvs); err != nil {
		return fmt.Errorf("%s: face slot %d: %v: %w", method, slot, err, ErrConstructFailed)
	}
	return nil
}
