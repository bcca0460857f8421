package loft

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/zenmesh/component"
	"github.com/katalvlaran/zenmesh/loop"
	"github.com/katalvlaran/zenmesh/traverse"
)

const (
	methodSections   = "Sections"
	methodLattice    = "Lattice"
	methodDistribute = "Distribute"
)

var (
	// ErrTooFewSections is returned when the edges form fewer than two chains.
	ErrTooFewSections = errors.New("loft: at least two sections required")

	// ErrUnequalSections is returned when sections differ in edge count or
	// one is closed while another is open.
	ErrUnequalSections = errors.New("loft: sections differ in length")
)

// Sections groups edges into contiguous chains and aligns them
// (traverse.GroupContiguous, traverse.AlignChains).
//
// Errors: ErrTooFewSections, ErrUnequalSections, plus those of the
// traversals.
func Sections(p traverse.Provider, edges *component.Set, opts ...traverse.Option) ([][]component.Component, error) {
	chains, err := traverse.GroupContiguous(p, edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSections, err)
	}
	if len(chains) < 2 {
		return nil, fmt.Errorf("%s: got %d: %w", methodSections, len(chains), ErrTooFewSections)
	}
	for i := 1; i < len(chains); i++ {
		if len(chains[i]) != len(chains[0]) {
			return nil, fmt.Errorf("%s: section %d has %d edges, section 0 has %d: %w",
				methodSections, i, len(chains[i]), len(chains[0]), ErrUnequalSections)
		}
	}
	aligned, err := traverse.AlignChains(p, chains, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSections, err)
	}
	tracer().Debugf("%d sections of %d edges", len(aligned), len(aligned[0]))
	return aligned, nil
}

// Lattice returns the vertex row of every section. Closed sections drop the
// repeated first vertex, so all rows have one entry per lattice column.
func Lattice(p traverse.Provider, sections [][]component.Component, opts ...traverse.Option) ([][]component.Component, error) {
	if len(sections) < 2 {
		return nil, fmt.Errorf("%s: %w", methodLattice, ErrTooFewSections)
	}
	rows := make([][]component.Component, len(sections))
	for i, sec := range sections {
		row, err := traverse.EdgesVertices(p, sec, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: section %d: %w", methodLattice, i, err)
		}
		if n := len(row); n > 2 && row[0] == row[n-1] {
			row = row[:n-1]
		}
		if i > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%s: row %d has %d vertices, row 0 has %d: %w",
				methodLattice, i, len(row), len(rows[0]), ErrUnequalSections)
		}
		rows[i] = row
	}
	return rows, nil
}

// Result is a computed loft distribution.
type Result struct {
	Sections [][]component.Component
	Rows     [][]component.Component
	// Columns[j] distributes the path through vertex j of every row.
	Columns []*loop.Result
}

// Distribute spreads the vertices between edge sections along the lattice
// columns. Column j routes through vertex j of every row, in row order, and
// is laid out by loop.Distribute. Selection order is forced on and Close off;
// the remaining options apply to every column.
//
// Nothing is moved until Apply.
func Distribute(p traverse.Provider, edges *component.Set, opts ...loop.Option) (*Result, error) {
	o, err := loop.Resolve(opts...)
	if err != nil {
		return nil, err
	}
	sections, err := Sections(p, edges, o.Traverse...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDistribute, err)
	}
	rows, err := Lattice(p, sections, o.Traverse...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDistribute, err)
	}

	colOpts := append(append([]loop.Option(nil), opts...),
		loop.WithSelectionOrder(true), loop.WithClose(false))
	cols := make([]*loop.Result, len(rows[0]))
	knots := make([]component.Component, len(rows))
	for j := range cols {
		for i, row := range rows {
			knots[i] = row[j]
		}
		if cols[j], err = loop.Distribute(p, knots, colOpts...); err != nil {
			return nil, fmt.Errorf("%s: column %d: %w", methodDistribute, j, err)
		}
	}
	tracer().Debugf("loft %s: %d rows × %d columns", o.Mode, len(rows), len(cols))
	return &Result{Sections: sections, Rows: rows, Columns: cols}, nil
}

// Apply moves the vertices of every column to their targets.
func Apply(m loop.Mover, r *Result) error {
	for _, c := range r.Columns {
		if err := loop.Apply(m, c); err != nil {
			return err
		}
	}
	return nil
}
