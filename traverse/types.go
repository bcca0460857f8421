// Package traverse provides tunable options, the topology provider contract
// and error definitions for component traversals.
package traverse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/zenmesh/component"
)

// Provider answers the topology and geometry queries every traversal is
// built from. *mesh.Mesh and *mesh.Scene implement it; hosts may supply
// their own.
type Provider interface {
	// Convert maps a homogeneous component set to kind to. With internal
	// set, only components fully enclosed by s are returned.
	Convert(s *component.Set, to component.Kind, internal bool) (*component.Set, error)

	// OwningShape returns the single shape all members of s belong to.
	OwningShape(s *component.Set) (component.ShapeID, error)

	// Position returns the location of a vertex.
	Position(v component.Component) (r3.Vector, error)

	// ArcLength returns the length of an edge.
	ArcLength(e component.Component) (float64, error)
}

// Sentinel errors for traversal execution.
var (
	// ErrProviderNil is returned if a nil provider is passed.
	ErrProviderNil = errors.New("traverse: provider is nil")

	// ErrNonContiguousSelection is returned when the selection cannot be
	// reached from its origin by edge traversal.
	ErrNonContiguousSelection = errors.New("traverse: selection is not contiguous")

	// ErrInvalidEdgeLength is returned when proportional positioning meets a
	// zero-length edge.
	ErrInvalidEdgeLength = errors.New("traverse: edge has zero length")

	// ErrMultipleVertexPathsPossible is advisory: more than one equally
	// short vertex path exists. It is only ever delivered to the warning
	// hook, wrapped in a *PathWarning.
	ErrMultipleVertexPathsPossible = errors.New("traverse: multiple vertex paths possible")

	// ErrInvalidSpans is returned when spans < 1.
	ErrInvalidSpans = errors.New("traverse: spans must be at least 1")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrBranchingSelection is returned by OrderChain when a member has more
	// than two neighbours inside the selection. It wraps
	// component.ErrInvalidSelection.
	ErrBranchingSelection = fmt.Errorf("%w: member has more than two neighbours", component.ErrInvalidSelection)

	// ErrInvalidSelection and ErrTooManyShapes are re-exported for callers
	// that only import traverse.
	ErrInvalidSelection = component.ErrInvalidSelection
	ErrTooManyShapes    = component.ErrTooManyShapes
)

// SelectionError carries the components an operation failed on.
// Match the cause with errors.Is; extract the payload with errors.As.
type SelectionError struct {
	Op         string
	Components []component.Component
	Err        error
}

func (e *SelectionError) Error() string {
	names := make([]string, len(e.Components))
	for i, c := range e.Components {
		names[i] = c.String()
	}
	return fmt.Sprintf("traverse: %s: %v: [%s]", e.Op, e.Err, strings.Join(names, " "))
}

func (e *SelectionError) Unwrap() error { return e.Err }

// PathWarning reports a shortest-path step where several vertices qualified
// and a geometric tie-break chose one. It unwraps to
// ErrMultipleVertexPathsPossible.
type PathWarning struct {
	Start, End component.Component
	Step       int
	Candidates []component.Component
	Chosen     component.Component
}

func (w *PathWarning) Error() string {
	return fmt.Sprintf("traverse: %s → %s step %d: chose %s among %d candidates: %v",
		w.Start, w.End, w.Step, w.Chosen, len(w.Candidates), ErrMultipleVertexPathsPossible)
}

func (w *PathWarning) Unwrap() error { return ErrMultipleVertexPathsPossible }

// Mode selects how Positions spreads parameters along a chain.
type Mode int

const (
	// Uniform spaces parameters evenly by index.
	Uniform Mode = iota
	// Proportional spaces parameters by accumulated edge length.
	Proportional
)

func (m Mode) String() string {
	switch m {
	case Uniform:
		return "uniform"
	case Proportional:
		return "proportional"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode reads "uniform" or "proportional".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "uniform":
		return Uniform, nil
	case "proportional":
		return Proportional, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, s)
}

// Option configures traversal behavior via functional arguments.
// If an Option is invalid (e.g. a negative ring limit), it is recorded
// internally and surfaced as ErrOptionViolation when the traversal runs.
type Option func(*Options)

// Options holds parameters and callbacks to customize traversals.
type Options struct {
	// OnRing is called each time a traversal grows its frontier by one
	// ring. depth starts at 1 for the first ring around the origin.
	OnRing func(depth int, ring *component.Set)

	// OnWarning receives advisory errors such as *PathWarning.
	OnWarning func(err error)

	// MaxRings, if > 0, fails a traversal that needs more rings.
	// A value of 0 disables the limit.
	MaxRings int

	err error
}

// DefaultOptions returns Options with no-op hooks and no ring limit.
func DefaultOptions() Options {
	return Options{
		OnRing:    func(int, *component.Set) {},
		OnWarning: func(error) {},
		MaxRings:  0,
	}
}

// WithOnRing registers a callback run at every ring boundary.
func WithOnRing(fn func(depth int, ring *component.Set)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRing = fn
		}
	}
}

// WithOnWarning registers a callback receiving advisory warnings.
func WithOnWarning(fn func(err error)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnWarning = fn
		}
	}
}

// WithMaxRings bounds frontier growth.
//
//	n > 0:  at most n rings
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxRings(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRings cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRings = n
	}
}
