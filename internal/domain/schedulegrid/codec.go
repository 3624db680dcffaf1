package schedulegrid

// Record is the flat, persisted representation of one non-default leader
// cell. ColumnIndex is the rendered table column, so it is one-based over the
// day columns: column 0 is the time-label column and is never addressed.
// Followers are not separately recorded; SpanWidth implies them.
type Record struct {
	TimeLabel   string `json:"timeLabel"`
	DayLabel    string `json:"dayLabel"`
	Text        string `json:"text"`
	ColumnIndex int    `json:"columnIndex"`
	SpanWidth   int    `json:"spanWidth"`
}

// ImportResult reports how many records were applied and which were dropped.
type ImportResult struct {
	Applied int
	Dropped []Record
}

// Export serializes the grid to override records: one per non-placeholder
// merge leader with non-empty text, in row-major order.
func Export(g *Grid) []Record {
	var records []Record
	for _, slot := range g.Slots() {
		for _, day := range g.Days() {
			cell, err := g.GetCell(slot.Index, day.Index)
			if err != nil {
				continue
			}
			if cell.IsPlaceholder || cell.LeaderCol != cell.Col || cell.Text == "" {
				continue
			}
			records = append(records, Record{
				TimeLabel:   slot.Label,
				DayLabel:    day.Label,
				Text:        cell.Text,
				ColumnIndex: day.Index + 1,
				SpanWidth:   cell.SpanWidth,
			})
		}
	}
	return records
}

// Import replays override records onto a freshly built template grid. A
// record whose time label is unknown, whose column is out of range, or whose
// target is a placeholder or follower is dropped; a bad record never aborts
// the rest.
// PRE: g was just built from the same template the records were exported from
// POST: for record sets addressing valid non-placeholder leaders,
// Export(g) is set-equal to the imported records
func Import(g *Grid, records []Record) ImportResult {
	var result ImportResult
	for _, rec := range records {
		row, ok := g.LocateRowByLabel(rec.TimeLabel)
		if !ok {
			result.Dropped = append(result.Dropped, rec)
			continue
		}
		if _, err := g.SetLeaderText(row, rec.ColumnIndex-1, rec.Text); err != nil {
			result.Dropped = append(result.Dropped, rec)
			continue
		}
		result.Applied++
	}
	return result
}
