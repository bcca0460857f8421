// SPDX-License-Identifier: MIT
// Package: zenmesh/mesh

package mesh

import "errors"

// Sentinel errors for mesh construction. Query errors reuse the sentinels of
// package component (ErrInvalidSelection, ErrTooManyShapes,
// ErrUnknownComponent) so providers stay interchangeable.
var (
	// ErrBadFace indicates a face with fewer than three corners, a repeated
	// corner vertex, or a UV index list that does not match the corners.
	ErrBadFace = errors.New("mesh: malformed face")

	// ErrBadEdge indicates a wire edge whose end vertices coincide.
	ErrBadEdge = errors.New("mesh: malformed edge")

	// ErrDuplicateShape indicates a Scene already holds a shape with that name.
	ErrDuplicateShape = errors.New("mesh: duplicate shape")

	// ErrEmptyShapeName indicates a mesh created without a shape name.
	ErrEmptyShapeName = errors.New("mesh: empty shape name")
)

// Method tags used as error prefixes.
const (
	methodAddFace     = "AddFace"
	methodAddEdge     = "AddEdge"
	methodSetPosition = "SetPosition"
	methodConvert     = "Convert"
	methodOwning      = "OwningShape"
	methodPosition    = "Position"
	methodArcLength   = "ArcLength"
	methodSceneAdd    = "Scene.Add"
)
