package planner

import (
	"encoding/json"
	"fmt"
)

// MonthlyMode selects how a monthly or yearly recurrence anchors its day:
// either a specific day of the month, or an ordinal weekday ("the last Friday").
type MonthlyMode int

const (
	SpecificDay MonthlyMode = iota
	OrdinalDay
)

func (m MonthlyMode) String() string {
	switch m {
	case SpecificDay:
		return "specific-day"
	case OrdinalDay:
		return "ordinal-day"
	default:
		return "unknown"
	}
}

// ParseMonthlyMode parses a string into a MonthlyMode.
func ParseMonthlyMode(s string) (MonthlyMode, error) {
	switch s {
	case "specific-day":
		return SpecificDay, nil
	case "ordinal-day":
		return OrdinalDay, nil
	default:
		return 0, fmt.Errorf("unknown monthly mode: %q", s)
	}
}

// Ordinal is the rank of the anchoring weekday within the month.
type Ordinal int

const (
	First Ordinal = iota
	Second
	Third
	Fourth
	Last
)

func (o Ordinal) String() string {
	switch o {
	case First:
		return "first"
	case Second:
		return "second"
	case Third:
		return "third"
	case Fourth:
		return "fourth"
	case Last:
		return "last"
	default:
		return "unknown"
	}
}

// ParseOrdinal parses a string into an Ordinal.
func ParseOrdinal(s string) (Ordinal, error) {
	switch s {
	case "first":
		return First, nil
	case "second":
		return Second, nil
	case "third":
		return Third, nil
	case "fourth":
		return Fourth, nil
	case "last":
		return Last, nil
	default:
		return 0, fmt.Errorf("unknown ordinal: %q", s)
	}
}

// MarshalJSON implements the json.Marshaler interface for Ordinal.
func (o Ordinal) MarshalJSON() ([]byte, error) { return json.Marshal(o.String()) }

// UnmarshalJSON implements the json.Unmarshaler interface for Ordinal.
func (o *Ordinal) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseOrdinal(s)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// OrdinalWeekday is the kind of day an ordinal recurrence anchors on:
// one of the seven weekdays, or any day, any weekday, or any weekend day.
type OrdinalWeekday int

const (
	OnMonday OrdinalWeekday = iota
	OnTuesday
	OnWednesday
	OnThursday
	OnFriday
	OnSaturday
	OnSunday
	// OnDay anchors on any calendar day ("the first day of the month").
	OnDay
	// OnWeekday anchors on Monday through Friday.
	OnWeekday
	// OnWeekendDay anchors on Saturday or Sunday.
	OnWeekendDay
)

func (o OrdinalWeekday) String() string {
	switch o {
	case OnMonday:
		return "monday"
	case OnTuesday:
		return "tuesday"
	case OnWednesday:
		return "wednesday"
	case OnThursday:
		return "thursday"
	case OnFriday:
		return "friday"
	case OnSaturday:
		return "saturday"
	case OnSunday:
		return "sunday"
	case OnDay:
		return "day"
	case OnWeekday:
		return "weekday"
	case OnWeekendDay:
		return "weekend-day"
	default:
		return "unknown"
	}
}

// ParseOrdinalWeekday parses a string into an OrdinalWeekday.
func ParseOrdinalWeekday(s string) (OrdinalWeekday, error) {
	switch s {
	case "monday":
		return OnMonday, nil
	case "tuesday":
		return OnTuesday, nil
	case "wednesday":
		return OnWednesday, nil
	case "thursday":
		return OnThursday, nil
	case "friday":
		return OnFriday, nil
	case "saturday":
		return OnSaturday, nil
	case "sunday":
		return OnSunday, nil
	case "day":
		return OnDay, nil
	case "weekday":
		return OnWeekday, nil
	case "weekend-day":
		return OnWeekendDay, nil
	default:
		return 0, fmt.Errorf("unknown ordinal weekday: %q", s)
	}
}

// MarshalJSON implements the json.Marshaler interface for OrdinalWeekday.
func (o OrdinalWeekday) MarshalJSON() ([]byte, error) { return json.Marshal(o.String()) }

// UnmarshalJSON implements the json.Unmarshaler interface for OrdinalWeekday.
func (o *OrdinalWeekday) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseOrdinalWeekday(s)
	if err != nil {
		return err
	}
	*o = v
	return nil
}
