package planner

import (
	"fmt"
	"slices"
	"time"
)

// Weekday is a day of the week as the planned-change API numbers them:
// Monday is 0 and Sunday is 6. This differs from time.Weekday, which
// starts the week on Sunday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func (w Weekday) String() string {
	switch w {
	case Monday:
		return "Monday"
	case Tuesday:
		return "Tuesday"
	case Wednesday:
		return "Wednesday"
	case Thursday:
		return "Thursday"
	case Friday:
		return "Friday"
	case Saturday:
		return "Saturday"
	case Sunday:
		return "Sunday"
	default:
		return "unknown"
	}
}

// ParseWeekday parses a weekday name (case sensitive, e.g. "monday") into a Weekday.
func ParseWeekday(s string) (Weekday, error) {
	switch s {
	case "monday":
		return Monday, nil
	case "tuesday":
		return Tuesday, nil
	case "wednesday":
		return Wednesday, nil
	case "thursday":
		return Thursday, nil
	case "friday":
		return Friday, nil
	case "saturday":
		return Saturday, nil
	case "sunday":
		return Sunday, nil
	default:
		return 0, fmt.Errorf("unknown weekday: %q", s)
	}
}

// FromTime converts a time.Weekday into the Monday-based Weekday.
func FromTime(w time.Weekday) Weekday {
	// time.Sunday is 0; shift so Monday is 0.
	return Weekday((int(w) + 6) % 7)
}

// toggleWeekday adds day to the set when checked, removes it otherwise,
// and keeps the set sorted ascending with no duplicates.
func toggleWeekday(days []Weekday, day Weekday, checked bool) []Weekday {
	out := make([]Weekday, 0, len(days)+1)
	for _, d := range days {
		if d != day {
			out = append(out, d)
		}
	}
	if checked {
		out = append(out, day)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
