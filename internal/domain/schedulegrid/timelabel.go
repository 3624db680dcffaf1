package schedulegrid

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultSlotMinutes is the width assigned to a label that names a single
// point in time rather than a range.
const DefaultSlotMinutes = 15

// Interval is a time span in minutes since midnight. End may be earlier than
// Start when a label explicitly says so; no day-wrap correction is applied.
type Interval struct {
	Start int
	End   int
}

// timeLabelRE matches "H:MM(AM|PM)" optionally followed by "-H:MM(AM|PM)".
// Hour range (1-12) is validated after the match.
var timeLabelRE = regexp.MustCompile(`^(\d{1,2}):([0-5][0-9])(AM|PM)(?:-(\d{1,2}):([0-5][0-9])(AM|PM))?$`)

// ParseRange parses a display label such as "5:00AM-5:15AM" into an Interval.
// A single time point ("9:00PM") gets the default slot width. Labels that do
// not match the grammar report ok == false; callers treat those rows as not
// time-bearing and move on.
// PRE: none
// POST: ok implies 0 <= Start < 1440 and 0 <= End
func ParseRange(label string) (Interval, bool) {
	m := timeLabelRE.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return Interval{}, false
	}

	start, ok := toMinutes(m[1], m[2], m[3])
	if !ok {
		return Interval{}, false
	}

	if m[4] == "" {
		return Interval{Start: start, End: start + DefaultSlotMinutes}, true
	}

	end, ok := toMinutes(m[4], m[5], m[6])
	if !ok {
		return Interval{}, false
	}
	return Interval{Start: start, End: end}, true
}

// toMinutes converts a 12-hour clock reading to minutes since midnight.
// 12AM maps to hour 0 and 12PM stays 12; other PM hours shift by 12.
func toMinutes(hourStr, minStr, meridiem string) (int, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 1 || hour > 12 {
		return 0, false
	}
	minute, _ := strconv.Atoi(minStr)

	switch meridiem {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	}
	return hour*60 + minute, true
}
