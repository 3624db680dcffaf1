// Package schedulegrid holds the data model and algorithms for the recurring
// weekly activity schedule: a matrix of quarter-hour time slots by day
// columns whose cells may be merged into multi-day blocks, plus the parsing,
// search, bulk-edit and persistence logic that operates on it. The package is
// pure; rendering and transport live in the adapters.
package schedulegrid

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors
var (
	ErrOutOfRange         = errors.New("cell address out of range")
	ErrInvalidMergeTarget = errors.New("cell is not a merge leader")
	ErrPlaceholderCell    = errors.New("placeholder cells are immutable")
	ErrAmbiguousTimeSlot  = errors.New("duplicate time slot label in template")
	ErrNoTimeSlots        = errors.New("template has no time slots")
	ErrNoDayColumns       = errors.New("template has no day columns")
)

// TimeSlot is one horizontal band of the schedule. StartMinutes/EndMinutes
// are derived from Label at build time; both are -1 when the label does not
// parse as a time range. Rows are ordered by Index (display order), which is
// not guaranteed to be sorted by time.
type TimeSlot struct {
	Index        int
	Label        string
	StartMinutes int
	EndMinutes   int
}

// DayColumn is one vertical band of the schedule, e.g. "MONDAY". Day indices
// are zero-based over the day columns only; the time-label column of the
// rendered table is not a DayColumn.
type DayColumn struct {
	Index int
	Label string
}

// Cell is one row/day intersection. A cell with LeaderCol == Col is the
// merge leader holding the authoritative text; cells with LeaderCol != Col
// are followers mirroring their leader and are never written directly.
type Cell struct {
	Row           int
	Col           int
	SpanWidth     int
	Text          string
	IsPlaceholder bool
	LeaderCol     int
}

// TemplateCell seeds one merge block (or placeholder) during construction.
// Col addresses the block's leader; SpanWidth <= 1 means a single cell.
type TemplateCell struct {
	Row         int
	Col         int
	Text        string
	SpanWidth   int
	Placeholder bool
}

// Grid owns the ordered time slots, the ordered day columns, and a cell
// arena indexed row*numDays+col. It is built once per editing session and
// mutated in place only through SetLeaderText.
type Grid struct {
	slots []TimeSlot
	days  []DayColumn
	cells []Cell
}

// BuildFromTemplate constructs a grid from ordered row labels, ordered day
// labels and seeded cells. Unseeded cells default to empty single-width
// leaders. Duplicate row labels are rejected: both row lookup and persistence
// key off the label, so a duplicate would silently misroute edits.
// PRE: template cells address in-range cells
// POST: every row/day intersection has exactly one Cell; merge invariants hold
func BuildFromTemplate(rowLabels []string, dayLabels []string, seeded []TemplateCell) (*Grid, error) {
	if len(rowLabels) == 0 {
		return nil, ErrNoTimeSlots
	}
	if len(dayLabels) == 0 {
		return nil, ErrNoDayColumns
	}

	seen := make(map[string]struct{}, len(rowLabels))
	slots := make([]TimeSlot, len(rowLabels))
	for i, label := range rowLabels {
		if _, dup := seen[label]; dup {
			return nil, fmt.Errorf("%w: %q", ErrAmbiguousTimeSlot, label)
		}
		seen[label] = struct{}{}
		start, end := -1, -1
		if iv, ok := ParseRange(label); ok {
			start, end = iv.Start, iv.End
		}
		slots[i] = TimeSlot{Index: i, Label: label, StartMinutes: start, EndMinutes: end}
	}

	days := make([]DayColumn, len(dayLabels))
	for i, label := range dayLabels {
		days[i] = DayColumn{Index: i, Label: label}
	}

	g := &Grid{
		slots: slots,
		days:  days,
		cells: make([]Cell, len(slots)*len(days)),
	}
	for row := range slots {
		for col := range days {
			*g.cellAt(row, col) = Cell{Row: row, Col: col, SpanWidth: 1, LeaderCol: col}
		}
	}

	for _, tc := range seeded {
		if err := g.seed(tc); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// seed writes one template block into the arena.
func (g *Grid) seed(tc TemplateCell) error {
	span := tc.SpanWidth
	if span < 1 {
		span = 1
	}
	if tc.Row < 0 || tc.Row >= len(g.slots) || tc.Col < 0 || tc.Col+span > len(g.days) {
		return fmt.Errorf("%w: template cell row=%d col=%d span=%d", ErrOutOfRange, tc.Row, tc.Col, span)
	}
	for c := tc.Col; c < tc.Col+span; c++ {
		if cell := g.cellAt(tc.Row, c); cell.LeaderCol != cell.Col || cell.SpanWidth != 1 || cell.Text != "" || cell.IsPlaceholder {
			return fmt.Errorf("%w: template cell row=%d col=%d overlaps an existing block", ErrInvalidMergeTarget, tc.Row, c)
		}
	}
	for c := tc.Col; c < tc.Col+span; c++ {
		*g.cellAt(tc.Row, c) = Cell{
			Row:           tc.Row,
			Col:           c,
			SpanWidth:     span,
			Text:          tc.Text,
			IsPlaceholder: tc.Placeholder,
			LeaderCol:     tc.Col,
		}
	}
	return nil
}

func (g *Grid) cellAt(row, col int) *Cell {
	return &g.cells[row*len(g.days)+col]
}

// NumRows returns the number of time slots.
func (g *Grid) NumRows() int { return len(g.slots) }

// NumDays returns the number of day columns.
func (g *Grid) NumDays() int { return len(g.days) }

// Slots returns the ordered time slots.
func (g *Grid) Slots() []TimeSlot { return g.slots }

// Days returns the ordered day columns.
func (g *Grid) Days() []DayColumn { return g.days }

// GetCell returns a copy of the cell at (row, col).
// PRE: none
// POST: returns ErrOutOfRange when either index is outside the grid
func (g *Grid) GetCell(row, col int) (Cell, error) {
	if row < 0 || row >= len(g.slots) || col < 0 || col >= len(g.days) {
		return Cell{}, fmt.Errorf("%w: row=%d col=%d", ErrOutOfRange, row, col)
	}
	return *g.cellAt(row, col), nil
}

// LocateRowByLabel finds the first row whose label exactly matches, scanning
// in display order. Construction guarantees labels are unique, so first match
// is the only match.
func (g *Grid) LocateRowByLabel(label string) (int, bool) {
	for _, slot := range g.slots {
		if slot.Label == label {
			return slot.Index, true
		}
	}
	return 0, false
}

// LocateDayByLabel resolves a day name to its column index,
// case-insensitively.
func (g *Grid) LocateDayByLabel(label string) (int, bool) {
	for _, day := range g.days {
		if strings.EqualFold(day.Label, label) {
			return day.Index, true
		}
	}
	return 0, false
}

// SetLeaderText writes text to the merge leader at (row, col) and mirrors it
// into every follower of the block. SpanWidth and LeaderCol are untouched.
// PRE: (row, col) addresses a non-placeholder merge leader
// POST: returns the number of cells written (leader plus followers)
func (g *Grid) SetLeaderText(row, col int, text string) (int, error) {
	cell, err := g.GetCell(row, col)
	if err != nil {
		return 0, err
	}
	if cell.IsPlaceholder {
		return 0, fmt.Errorf("%w: row=%d col=%d", ErrPlaceholderCell, row, col)
	}
	if cell.LeaderCol != cell.Col {
		return 0, fmt.Errorf("%w: row=%d col=%d leads from col=%d", ErrInvalidMergeTarget, row, col, cell.LeaderCol)
	}
	for c := col; c < col+cell.SpanWidth; c++ {
		g.cellAt(row, c).Text = text
	}
	return cell.SpanWidth, nil
}
