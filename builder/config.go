// SPDX-License-Identifier: MIT
// Package: zenmesh/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • shapeName = "pMesh1"
//   • spacing   = 1.0   (grid step and tube ring height)
//   • radius    = 1.0   (tube and sphere)
//   • origin    = (0,0,0)
//   • holes     = none
//   • uvs       = true

package builder

import "github.com/golang/geo/r3"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	shapeName string
	spacing   float64
	radius    float64
	origin    r3.Vector
	holes     map[int]struct{} // constructor-local face slots to omit
	uvs       bool
}

const (
	defaultShapeName = "pMesh1"
	defaultSpacing   = 1.0
	defaultRadius    = 1.0
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		shapeName: defaultShapeName,
		spacing:   defaultSpacing,
		radius:    defaultRadius,
		holes:     map[int]struct{}{},
		uvs:       true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// isHole reports whether face slot i is omitted.
func (c builderConfig) isHole(i int) bool {
	_, ok := c.holes[i]
	return ok
}
