package web

import (
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"caseboard/internal/application/projections"
)

func weeklyReportDeps() projections.GetWeeklyReportDeps {
	return projections.GetWeeklyReportDeps{
		CheckInStore:      stores.CheckInStore,
		InterventionStore: stores.InterventionStore,
		ActivityLogStore:  stores.ActivityLogStore,
		Now:               timeNow,
	}
}

// handleWeeklyReport returns the seven-day summary as JSON.
func handleWeeklyReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	view, err := projections.GetWeeklyReport(r.Context(), weeklyReportDeps())
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "report": view})
}

// handleWeeklyReportXLSX renders the same summary as a spreadsheet for
// the program director's records.
func handleWeeklyReportXLSX(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	view, err := projections.GetWeeklyReport(r.Context(), weeklyReportDeps())
	if err != nil {
		internalError(w, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Weekly Report"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Check-ins", "Average mood", "Notes added"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, day := range view.Days {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row+2), day.Date)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row+2), day.CheckIns)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row+2), day.AvgMood)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row+2), day.NotesAdded)
	}

	summaryRow := len(view.Days) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Total check-ins")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow), view.TotalCheckIns)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow+1), "Sessions completed")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow+1), view.SessionsCompleted)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow+2), "Sessions still planned")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow+2), view.SessionsStillPlanned)

	filename := fmt.Sprintf("weekly-report-%s.xlsx", view.WeekEnd)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := f.Write(w); err != nil {
		internalError(w, err)
	}
}
