package planner

import (
	"encoding/json"
	"fmt"
)

// EndCondition describes when a recurring change stops.
type EndCondition int

const (
	// Never lets the recurrence run indefinitely.
	Never EndCondition = iota
	// AfterOccurrences stops after a fixed number of occurrences.
	AfterOccurrences
	// OnDate stops on a calendar date.
	OnDate
)

func (e EndCondition) String() string {
	switch e {
	case Never:
		return "never"
	case AfterOccurrences:
		return "after-occurrences"
	case OnDate:
		return "on-date"
	default:
		return "unknown"
	}
}

// ParseEndCondition parses a string into an EndCondition.
func ParseEndCondition(s string) (EndCondition, error) {
	switch s {
	case "never":
		return Never, nil
	case "after-occurrences":
		return AfterOccurrences, nil
	case "on-date":
		return OnDate, nil
	default:
		return 0, fmt.Errorf("unknown end condition: %q", s)
	}
}

// MarshalJSON implements the json.Marshaler interface for EndCondition.
func (e EndCondition) MarshalJSON() ([]byte, error) { return json.Marshal(e.String()) }

// UnmarshalJSON implements the json.Unmarshaler interface for EndCondition.
func (e *EndCondition) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseEndCondition(s)
	if err != nil {
		return err
	}
	*e = v
	return nil
}
