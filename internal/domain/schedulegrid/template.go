package schedulegrid

import "fmt"

// House schedule bounds: quarter-hour slots from 5:00AM to 10:00PM.
const (
	houseDayStart = 5 * 60
	houseDayEnd   = 22 * 60
)

// HouseDayLabels are the day columns of the house week, Monday first.
var HouseDayLabels = []string{
	"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY",
}

// HouseWeekTemplate returns the static template the house schedule is rebuilt
// from on every load: ordered row labels, ordered day labels, and the seeded
// fixed blocks (whole-week routines plus the immutable lights-out band).
func HouseWeekTemplate() ([]string, []string, []TemplateCell) {
	var rows []string
	for m := houseDayStart; m < houseDayEnd; m += DefaultSlotMinutes {
		rows = append(rows, fmt.Sprintf("%s-%s", clockLabel(m), clockLabel(m+DefaultSlotMinutes)))
	}

	allWeek := len(HouseDayLabels)
	rowAt := func(minutes int) int { return (minutes - houseDayStart) / DefaultSlotMinutes }

	var cells []TemplateCell
	span := func(minutes int, text string) {
		cells = append(cells, TemplateCell{Row: rowAt(minutes), Col: 0, Text: text, SpanWidth: allWeek})
	}

	span(5*60, "WAKE UP")
	span(5*60+15, "PERSONAL HYGIENE")
	span(5*60+30, "MORNING DEVOTION")
	span(7*60, "BREAKFAST SERVING")
	span(7*60+15, "BREAKFAST SERVING")
	span(12*60, "LUNCH")
	span(12*60+15, "LUNCH")
	span(17*60, "GENERAL CLEANING")
	span(18*60, "DINNER")
	span(18*60+15, "DINNER")
	span(21*60, "EVENING DEVOTION")

	// Lights-out band: not editable.
	for col := 0; col < allWeek; col++ {
		cells = append(cells, TemplateCell{Row: rowAt(21*60 + 45), Col: col, Text: "LIGHTS OUT", Placeholder: true})
	}

	return rows, HouseDayLabels, cells
}

// BuildHouseWeekGrid builds a fresh grid from the house template.
func BuildHouseWeekGrid() (*Grid, error) {
	rows, days, cells := HouseWeekTemplate()
	return BuildFromTemplate(rows, days, cells)
}

// clockLabel formats minutes since midnight as a 12-hour reading ("5:00AM").
func clockLabel(minutes int) string {
	minutes %= 24 * 60
	hour := minutes / 60
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d%s", display, minutes%60, meridiem)
}
