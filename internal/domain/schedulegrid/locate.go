package schedulegrid

// LocateCurrentRow finds the first row in display order whose parsed interval
// contains nowMinutes (bounds inclusive). Rows with labels that do not parse
// are skipped. Schedules may have gaps, so no match is a normal outcome, not
// an error.
// PRE: 0 <= nowMinutes < 1440
// POST: ok implies the returned row's interval covers nowMinutes
func LocateCurrentRow(nowMinutes int, g *Grid) (int, bool) {
	for _, slot := range g.Slots() {
		iv, parsed := ParseRange(slot.Label)
		if !parsed {
			continue
		}
		if iv.Start <= nowMinutes && nowMinutes <= iv.End {
			return slot.Index, true
		}
	}
	return 0, false
}
