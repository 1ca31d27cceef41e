package planner

import (
	"encoding/json"
	"fmt"

	"github.com/etnz/planner/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// PlannedChange is the canonical, backend-ready record a draft finalizes
// into. Its wire shape (field names, order, nullability) is a fixed contract
// with the remote API: every non-applicable field is an explicit null, and
// marshaling the same record twice yields byte-identical output.
type PlannedChange struct {
	ID                   string // update target; empty means create. Not part of the payload body.
	ChangeType           ChangeType
	ChangeDate           date.Date
	Amount               *decimal.Decimal // contribution/withdrawal only
	Description          string
	TargetAllocationJSON *string // reallocation only: string-encoded assetId -> "NN.NN" map
	IsRecurring          bool
	Frequency            Frequency
	Interval             int
	DaysOfWeek           []Weekday // weekly only; empty list otherwise, never null
	DayOfMonth           *int
	MonthlyOrdinal       *Ordinal
	MonthlyOrdinalDay    *OrdinalWeekday
	MonthOfYear          *int
	EndsOnType           EndCondition
	EndsOnOccurrences    *int
	EndsOnDate           *date.Date
}

// MarshalJSON implements the json.Marshaler interface for PlannedChange.
// Field order and explicit nulls are part of the API contract, so the record
// is written through the ordered object writer rather than struct tags.
func (t PlannedChange) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("changeType", t.ChangeType)
	w.Append("changeDate", t.ChangeDate)
	w.Append("amount", t.Amount)
	if t.Description != "" {
		w.Append("description", t.Description)
	} else {
		w.Append("description", nil)
	}
	w.Append("targetAllocationJson", t.TargetAllocationJSON)
	w.Append("isRecurring", t.IsRecurring)
	w.Append("frequency", t.Frequency)
	w.Append("interval", t.Interval)
	days := t.DaysOfWeek
	if days == nil {
		days = []Weekday{}
	}
	w.Append("daysOfWeek", days)
	w.Append("dayOfMonth", t.DayOfMonth)
	w.Append("monthlyOrdinal", t.MonthlyOrdinal)
	w.Append("monthlyOrdinalDay", t.MonthlyOrdinalDay)
	w.Append("monthOfYear", t.MonthOfYear)
	w.Append("endsOnType", t.EndsOnType)
	w.Append("endsOnOccurrences", t.EndsOnOccurrences)
	w.Append("endsOnDate", t.EndsOnDate)
	return w.MarshalJSON()
}

// DecodePlannedChange parses a persisted planned change, typically fetched
// back from the remote API for editing.
func DecodePlannedChange(data []byte) (PlannedChange, error) {
	// Use a temporary type that has all possible fields.
	var temp struct {
		ID                   string           `json:"id"`
		ChangeType           ChangeType       `json:"changeType"`
		ChangeDate           date.Date        `json:"changeDate"`
		Amount               *decimal.Decimal `json:"amount"`
		Description          *string          `json:"description"`
		TargetAllocationJSON *string          `json:"targetAllocationJson"`
		IsRecurring          bool             `json:"isRecurring"`
		Frequency            Frequency        `json:"frequency"`
		Interval             int              `json:"interval"`
		DaysOfWeek           []Weekday        `json:"daysOfWeek"`
		DayOfMonth           *int             `json:"dayOfMonth"`
		MonthlyOrdinal       *Ordinal         `json:"monthlyOrdinal"`
		MonthlyOrdinalDay    *OrdinalWeekday  `json:"monthlyOrdinalDay"`
		MonthOfYear          *int             `json:"monthOfYear"`
		EndsOnType           EndCondition     `json:"endsOnType"`
		EndsOnOccurrences    *int             `json:"endsOnOccurrences"`
		EndsOnDate           *date.Date       `json:"endsOnDate"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return PlannedChange{}, fmt.Errorf("cannot decode planned change: %w", err)
	}
	pc := PlannedChange{
		ID:                   temp.ID,
		ChangeType:           temp.ChangeType,
		ChangeDate:           temp.ChangeDate,
		Amount:               temp.Amount,
		TargetAllocationJSON: temp.TargetAllocationJSON,
		IsRecurring:          temp.IsRecurring,
		Frequency:            temp.Frequency,
		Interval:             temp.Interval,
		DaysOfWeek:           temp.DaysOfWeek,
		DayOfMonth:           temp.DayOfMonth,
		MonthlyOrdinal:       temp.MonthlyOrdinal,
		MonthlyOrdinalDay:    temp.MonthlyOrdinalDay,
		MonthOfYear:          temp.MonthOfYear,
		EndsOnType:           temp.EndsOnType,
		EndsOnOccurrences:    temp.EndsOnOccurrences,
		EndsOnDate:           temp.EndsOnDate,
	}
	if temp.Description != nil {
		pc.Description = *temp.Description
	}
	return pc, nil
}

// TargetAllocation decodes the record's string-encoded allocation map into
// asset id to two-decimal percentage text. It returns nil for a change that
// is not a reallocation.
func (t PlannedChange) TargetAllocation() (map[string]string, error) {
	if t.TargetAllocationJSON == nil {
		return nil, nil
	}
	return decodeTargetAllocation(*t.TargetAllocationJSON)
}

// encodeTargetAllocation serializes the allocation list into the
// string-encoded map the API expects: asset id to a percentage with exactly
// two decimal places, in the list's asset order so the encoding is stable.
func encodeTargetAllocation(allocs Allocations) (string, error) {
	var w jsonObjectWriter
	for _, entry := range allocs {
		pct, err := decimal.NewFromString(entry.Percentage)
		if err != nil {
			pct = decimal.Zero
		}
		w.Append(entry.AssetID, pct.StringFixed(2))
	}
	b, err := w.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeTargetAllocation parses the string-encoded allocation map back into
// asset id to raw percentage text.
func decodeTargetAllocation(s string) (map[string]string, error) {
	out := map[string]string{}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("cannot decode target allocation %q: %w", s, err)
	}
	return out, nil
}
