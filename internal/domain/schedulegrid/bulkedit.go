package schedulegrid

import (
	"errors"
	"fmt"
)

// Selection errors, reported inside EditResult rather than aborting the call
// (except the time-slot bounds, which define the row range and are
// all-or-nothing).
var (
	ErrUnknownTimeSlot   = errors.New("selection references an unknown time slot")
	ErrUnknownDay        = errors.New("selection references an unknown day")
	ErrEditSessionClosed = errors.New("edit session is not active")
)

// EditSession is the explicit edit-mode state passed into the edit pathway.
// The grid itself never depends on ambient mutable state.
type EditSession struct {
	Active bool
	Actor  string
}

// Selection is a rectangular region: a time-slot range (bounds accepted in
// either order) by a set of day columns.
type Selection struct {
	StartLabel string
	EndLabel   string
	Days       []string
}

// EditResult reports the outcome of one bulk edit. Errs carries at most one
// ErrUnknownTimeSlot and any number of ErrUnknownDay entries; a zero
// UpdatedCount with no errors means every addressed cell was a placeholder,
// which is a successful no-op, not a fault.
type EditResult struct {
	UpdatedCount int
	Errs         []error
}

// Apply resolves the selection against the grid and writes text into every
// addressed, non-placeholder cell. Writes always target the block's leader,
// so a block is updated atomically even when the addressed cell is a
// follower.
// PRE: session is active; grid was built by BuildFromTemplate
// POST: either both row bounds resolved and all resolvable cells were
// written, or no cell was touched
func Apply(g *Grid, session EditSession, sel Selection, text string) (EditResult, error) {
	if !session.Active {
		return EditResult{}, ErrEditSessionClosed
	}

	startRow, ok := g.LocateRowByLabel(sel.StartLabel)
	if !ok {
		return EditResult{Errs: []error{fmt.Errorf("%w: %q", ErrUnknownTimeSlot, sel.StartLabel)}}, nil
	}
	endRow, ok := g.LocateRowByLabel(sel.EndLabel)
	if !ok {
		return EditResult{Errs: []error{fmt.Errorf("%w: %q", ErrUnknownTimeSlot, sel.EndLabel)}}, nil
	}
	lo, hi := startRow, endRow
	if lo > hi {
		lo, hi = hi, lo
	}

	var result EditResult
	var cols []int
	for _, day := range sel.Days {
		col, ok := g.LocateDayByLabel(day)
		if !ok {
			result.Errs = append(result.Errs, fmt.Errorf("%w: %q", ErrUnknownDay, day))
			continue
		}
		cols = append(cols, col)
	}

	for row := lo; row <= hi; row++ {
		for _, col := range cols {
			cell, err := g.GetCell(row, col)
			if err != nil {
				return result, err
			}
			if cell.IsPlaceholder {
				continue
			}
			updated, err := g.SetLeaderText(row, cell.LeaderCol, text)
			if err != nil {
				// Unreachable when the merge invariants hold; surfaced as a
				// fatal assertion rather than swallowed.
				return result, err
			}
			result.UpdatedCount += updated
		}
	}
	return result, nil
}
