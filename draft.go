package planner

import (
	"strconv"

	"github.com/etnz/planner/date"
)

// Draft is the mutable, in-progress representation of a planned change.
// Numeric and date fields hold the raw text the user typed: a draft may be
// transiently inconsistent or incomplete, and only Finalize judges it.
// A draft is owned by a single editing session and mutated exclusively
// through Apply.
type Draft struct {
	ID          string // empty for a new change, set when editing a persisted one
	ChangeType  ChangeType
	ChangeDate  string // raw ISO date text
	Amount      string // raw decimal text, contribution/withdrawal only
	Description string
	Recurrence  RecurrenceDraft
	Allocations Allocations // populated only while ChangeType is Reallocation
}

// RecurrenceDraft is the in-progress recurrence rule. A non-recurring change
// is Recurring=false with Frequency OneTime.
type RecurrenceDraft struct {
	Recurring      bool
	Frequency      Frequency
	Interval       string // raw positive-integer text
	DaysOfWeek     []Weekday
	MonthlyMode    MonthlyMode
	DayOfMonth     string // raw 1-31 text
	Ordinal        string // raw Ordinal name
	OrdinalWeekday string // raw OrdinalWeekday name
	MonthOfYear    string // raw 1-12 text
	EndsOn         EndCondition
	Occurrences    string // raw positive-integer text
	EndDate        string // raw ISO date text
}

// NewDraft returns the draft of a brand new change: a one-time contribution
// dated today.
func NewDraft() Draft {
	return Draft{
		ChangeType: Contribution,
		ChangeDate: date.Today().String(),
		Recurrence: RecurrenceDraft{
			Frequency: OneTime,
			Interval:  "1",
			EndsOn:    Never,
		},
	}
}

// DraftFromChange hydrates a draft from a persisted planned change so it can
// be edited again. The transport-level allocation encoding is decoded back
// into the per-asset list, scaffolded over the current asset collaborator
// list so assets added since the change was saved appear with an empty
// percentage.
func DraftFromChange(pc PlannedChange, assets []Asset) Draft {
	d := Draft{
		ID:          pc.ID,
		ChangeType:  pc.ChangeType,
		ChangeDate:  pc.ChangeDate.String(),
		Description: pc.Description,
		Recurrence: RecurrenceDraft{
			Recurring: pc.IsRecurring,
			Frequency: pc.Frequency,
			Interval:  strconv.Itoa(pc.Interval),
			EndsOn:    pc.EndsOnType,
		},
	}
	if pc.Amount != nil {
		d.Amount = pc.Amount.String()
	}
	if pc.TargetAllocationJSON != nil {
		saved, _ := decodeTargetAllocation(*pc.TargetAllocationJSON)
		prev := make(Allocations, 0, len(saved))
		for id, pct := range saved {
			prev = append(prev, AllocationEntry{AssetID: id, Percentage: pct})
		}
		d.Allocations = NewAllocations(assets, prev)
	}

	r := &d.Recurrence
	r.DaysOfWeek = append([]Weekday(nil), pc.DaysOfWeek...)
	if pc.DayOfMonth != nil {
		r.DayOfMonth = strconv.Itoa(*pc.DayOfMonth)
	}
	// The wire record has no monthlyMode field: the mode is implied by which
	// anchor fields are set.
	if pc.MonthlyOrdinal != nil {
		r.MonthlyMode = OrdinalDay
		r.Ordinal = pc.MonthlyOrdinal.String()
	}
	if pc.MonthlyOrdinalDay != nil {
		r.OrdinalWeekday = pc.MonthlyOrdinalDay.String()
	}
	if pc.MonthOfYear != nil {
		r.MonthOfYear = strconv.Itoa(*pc.MonthOfYear)
	}
	if pc.EndsOnOccurrences != nil {
		r.Occurrences = strconv.Itoa(*pc.EndsOnOccurrences)
	}
	if pc.EndsOnDate != nil {
		r.EndDate = pc.EndsOnDate.String()
	}
	return d
}

// clone returns a deep copy of the draft, so transitions never alias the
// previous draft's slices.
func (d Draft) clone() Draft {
	out := d
	out.Recurrence.DaysOfWeek = append([]Weekday(nil), d.Recurrence.DaysOfWeek...)
	if d.Allocations != nil {
		out.Allocations = append(Allocations(nil), d.Allocations...)
	}
	return out
}
