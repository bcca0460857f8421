// SPDX-License-Identifier: MIT
// Package: zenmesh/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.

package builder

import "github.com/golang/geo/r3"

// Option customizes the mesh produced by Build.
type Option func(*builderConfig)

// WithShapeName sets the shape name of the built mesh. Panics on "".
func WithShapeName(name string) Option {
	if name == "" {
		panic("builder: WithShapeName(\"\")")
	}
	return func(c *builderConfig) {
		c.shapeName = name
	}
}

// WithSpacing sets the grid step of Plane and the ring height of Tube.
// Panics if d <= 0.
func WithSpacing(d float64) Option {
	if d <= 0 {
		panic("builder: WithSpacing(d<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = d
	}
}

// WithRadius sets the radius of Tube and Sphere. Panics if r <= 0.
func WithRadius(r float64) Option {
	if r <= 0 {
		panic("builder: WithRadius(r<=0)")
	}
	return func(c *builderConfig) {
		c.radius = r
	}
}

// WithOrigin translates every built vertex by o.
func WithOrigin(o r3.Vector) Option {
	return func(c *builderConfig) {
		c.origin = o
	}
}

// WithHoles omits the given face slots. A slot is the face's position in the
// constructor's emission order (for Plane, r*cols + c), so later faces are
// renumbered. Panics on a negative slot.
func WithHoles(slots ...int) Option {
	for _, s := range slots {
		if s < 0 {
			panic("builder: WithHoles(slot<0)")
		}
	}
	return func(c *builderConfig) {
		for _, s := range slots {
			c.holes[s] = struct{}{}
		}
	}
}

// WithoutUVs skips texture coordinates.
func WithoutUVs() Option {
	return func(c *builderConfig) {
		c.uvs = false
	}
}
