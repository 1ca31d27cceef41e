package planner

// This file is the draft editor: one concrete Edit event per editable field,
// each applying its own transition. Transitions keep the draft structurally
// consistent (dependent fields cleared) but never validate values; a draft
// may hold empty or out-of-range text mid-edit.

// Edit is a single field-edit event against a draft.
type Edit interface {
	// apply receives a fresh copy of the draft and returns the new draft.
	apply(d Draft, assets []Asset) Draft
}

// Apply produces the new draft resulting from one edit event. It is a pure
// function: the given draft is never mutated, and the same inputs always
// produce the same output. The asset list is only consulted when switching
// the change type to a reallocation.
func Apply(d Draft, assets []Asset, e Edit) Draft {
	return e.apply(d.clone(), assets)
}

// SetChangeType switches the financial nature of the change.
type SetChangeType struct{ Type ChangeType }

func (e SetChangeType) apply(d Draft, assets []Asset) Draft {
	d.ChangeType = e.Type
	if e.Type == Reallocation {
		// An amount makes no sense for a reallocation; scaffold the
		// allocation list, keeping percentages already typed for assets
		// that are still present.
		d.Amount = ""
		d.Allocations = NewAllocations(assets, d.Allocations)
	} else {
		d.Allocations = nil
	}
	return d
}

// SetRecurring toggles the recurrence gate.
type SetRecurring struct{ Recurring bool }

func (e SetRecurring) apply(d Draft, _ []Asset) Draft {
	if !e.Recurring {
		// Collapse the whole rule back to the one-time defaults.
		d.Recurrence = RecurrenceDraft{
			Frequency: OneTime,
			Interval:  "1",
			EndsOn:    Never,
		}
		return d
	}
	d.Recurrence.Recurring = true
	if d.Recurrence.Frequency == OneTime {
		d.Recurrence.Frequency = Daily
	}
	return d
}

// SetFrequency changes how often the change repeats.
type SetFrequency struct{ Frequency Frequency }

func (e SetFrequency) apply(d Draft, _ []Asset) Draft {
	r := &d.Recurrence
	r.Frequency = e.Frequency
	// Frequency-specific anchors never survive a frequency change.
	r.DaysOfWeek = nil
	r.DayOfMonth = ""
	r.Ordinal = ""
	r.OrdinalWeekday = ""
	r.MonthlyMode = SpecificDay
	return d
}

// ToggleWeekday checks or unchecks one weekday of a weekly recurrence.
type ToggleWeekday struct {
	Day     Weekday
	Checked bool
}

func (e ToggleWeekday) apply(d Draft, _ []Asset) Draft {
	d.Recurrence.DaysOfWeek = toggleWeekday(d.Recurrence.DaysOfWeek, e.Day, e.Checked)
	return d
}

// SetMonthlyMode switches between a specific day of the month and an
// ordinal weekday anchor.
type SetMonthlyMode struct{ Mode MonthlyMode }

func (e SetMonthlyMode) apply(d Draft, _ []Asset) Draft {
	r := &d.Recurrence
	r.MonthlyMode = e.Mode
	switch e.Mode {
	case SpecificDay:
		r.Ordinal = ""
		r.OrdinalWeekday = ""
	case OrdinalDay:
		r.DayOfMonth = ""
	}
	return d
}

// SetEndCondition changes when the recurrence stops.
type SetEndCondition struct{ Condition EndCondition }

func (e SetEndCondition) apply(d Draft, _ []Asset) Draft {
	r := &d.Recurrence
	r.EndsOn = e.Condition
	switch e.Condition {
	case Never:
		r.Occurrences = ""
		r.EndDate = ""
	case AfterOccurrences:
		r.EndDate = ""
	case OnDate:
		r.Occurrences = ""
	}
	return d
}

// SetPercentage edits one allocation entry's raw percentage text.
type SetPercentage struct {
	AssetID string
	Value   string
}

func (e SetPercentage) apply(d Draft, _ []Asset) Draft {
	d.Allocations = d.Allocations.SetPercentage(e.AssetID, e.Value)
	return d
}

// The remaining events store the supplied raw text verbatim; values are
// coerced and judged only at finalize time.

type SetChangeDate struct{ Value string }

func (e SetChangeDate) apply(d Draft, _ []Asset) Draft { d.ChangeDate = e.Value; return d }

type SetAmount struct{ Value string }

func (e SetAmount) apply(d Draft, _ []Asset) Draft { d.Amount = e.Value; return d }

type SetDescription struct{ Value string }

func (e SetDescription) apply(d Draft, _ []Asset) Draft { d.Description = e.Value; return d }

type SetInterval struct{ Value string }

func (e SetInterval) apply(d Draft, _ []Asset) Draft { d.Recurrence.Interval = e.Value; return d }

type SetDayOfMonth struct{ Value string }

func (e SetDayOfMonth) apply(d Draft, _ []Asset) Draft { d.Recurrence.DayOfMonth = e.Value; return d }

type SetOrdinal struct{ Value string }

func (e SetOrdinal) apply(d Draft, _ []Asset) Draft { d.Recurrence.Ordinal = e.Value; return d }

type SetOrdinalWeekday struct{ Value string }

func (e SetOrdinalWeekday) apply(d Draft, _ []Asset) Draft {
	d.Recurrence.OrdinalWeekday = e.Value
	return d
}

type SetMonthOfYear struct{ Value string }

func (e SetMonthOfYear) apply(d Draft, _ []Asset) Draft {
	d.Recurrence.MonthOfYear = e.Value
	return d
}

type SetOccurrences struct{ Value string }

func (e SetOccurrences) apply(d Draft, _ []Asset) Draft {
	d.Recurrence.Occurrences = e.Value
	return d
}

type SetEndDate struct{ Value string }

func (e SetEndDate) apply(d Draft, _ []Asset) Draft { d.Recurrence.EndDate = e.Value; return d }
