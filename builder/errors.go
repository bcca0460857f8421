// SPDX-License-Identifier: MIT
// Package: zenmesh/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with %w and a method prefix ("Tube: rings=1 ...").
//   • Constructors never panic; validation panics are confined to WithX options.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (rows, cols, rings,
// segments) is below the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that a constructor could not complete, e.g. a
// nil constructor was passed to Build or the mesh rejected a face.
var ErrConstructFailed = errors.New("builder: construction failed")
