package planner

import (
	"encoding/json"
	"fmt"
)

// Frequency describes how often a recurring change repeats.
type Frequency int

const (
	// OneTime marks a change that happens exactly once.
	OneTime Frequency = iota
	Daily
	Weekly
	Monthly
	Yearly
)

func (f Frequency) String() string {
	switch f {
	case OneTime:
		return "one-time"
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return "unknown"
	}
}

// Unit returns the singular noun for the frequency's period (e.g., "week").
// It is used to phrase recurrence descriptions.
func (f Frequency) Unit() string {
	switch f {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Yearly:
		return "year"
	default:
		return "period"
	}
}

// ParseFrequency parses a string into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch s {
	case "one-time":
		return OneTime, nil
	case "daily":
		return Daily, nil
	case "weekly":
		return Weekly, nil
	case "monthly":
		return Monthly, nil
	case "yearly":
		return Yearly, nil
	default:
		return 0, fmt.Errorf("unknown frequency: %q", s)
	}
}

// MarshalJSON implements the json.Marshaler interface for Frequency.
func (f Frequency) MarshalJSON() ([]byte, error) { return json.Marshal(f.String()) }

// UnmarshalJSON implements the json.Unmarshaler interface for Frequency.
func (f *Frequency) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseFrequency(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}
