package planner

import (
	"encoding/json"
	"fmt"
)

// ChangeType identifies the financial nature of a planned change.
type ChangeType int

const (
	// Contribution adds cash to the portfolio.
	Contribution ChangeType = iota
	// Withdrawal removes cash from the portfolio.
	Withdrawal
	// Reallocation redistributes the portfolio across its assets by percentage.
	Reallocation
)

func (c ChangeType) String() string {
	switch c {
	case Contribution:
		return "contribution"
	case Withdrawal:
		return "withdrawal"
	case Reallocation:
		return "reallocation"
	default:
		return "unknown"
	}
}

// ParseChangeType parses a string into a ChangeType.
func ParseChangeType(s string) (ChangeType, error) {
	switch s {
	case "contribution":
		return Contribution, nil
	case "withdrawal":
		return Withdrawal, nil
	case "reallocation":
		return Reallocation, nil
	default:
		return 0, fmt.Errorf("unknown change type: %q", s)
	}
}

// MarshalJSON implements the json.Marshaler interface for ChangeType.
func (c ChangeType) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

// UnmarshalJSON implements the json.Unmarshaler interface for ChangeType.
func (c *ChangeType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseChangeType(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
