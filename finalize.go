package planner

import (
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/planner/date"
	"github.com/shopspring/decimal"
)

// sumTolerance is how far from 100.00 an allocation sum may drift and still
// be accepted. The tolerant check is authoritative over a bit-exact ==100,
// but stays below the smallest typeable step (0.01) so 99.99 is rejected.
var sumTolerance = decimal.RequireFromString("0.001")

var oneHundred = decimal.NewFromInt(100)

// Finalize validates and normalizes a draft into the canonical planned
// change, or reports the first violated rule as a *ValidationError.
//
// It is a pure function of the draft: submit and preview call it
// identically, and two calls on the same draft produce byte-identical
// records. It never panics; every failure is a recoverable value and the
// draft stays editable. On error the returned record is the zero value and
// must be ignored.
func Finalize(d Draft) (PlannedChange, error) {
	pc := PlannedChange{ID: d.ID, ChangeType: d.ChangeType, Description: d.Description}

	day, err := date.Parse(strings.TrimSpace(d.ChangeDate))
	if err != nil {
		return PlannedChange{}, errRequired("changeDate")
	}
	pc.ChangeDate = day

	// Change-type branch: exactly one of amount and allocation map survives.
	switch d.ChangeType {
	case Reallocation:
		sum := d.Allocations.Sum()
		if sum.Sub(oneHundred).Abs().GreaterThanOrEqual(sumTolerance) {
			return PlannedChange{}, errAllocationSum(sum.StringFixed(2))
		}
		enc, err := encodeTargetAllocation(d.Allocations)
		if err != nil {
			return PlannedChange{}, err
		}
		pc.TargetAllocationJSON = &enc
	default: // Contribution, Withdrawal
		amt, err := decimal.NewFromString(strings.TrimSpace(d.Amount))
		if err != nil {
			return PlannedChange{}, errRequired("amount")
		}
		pc.Amount = &amt
	}

	r := d.Recurrence
	if !r.Recurring || r.Frequency == OneTime {
		// Canonical non-recurring shape, regardless of leftovers from a
		// prior recurring state.
		pc.IsRecurring = false
		pc.Frequency = OneTime
		pc.Interval = 1
		pc.EndsOnType = Never
		return pc, nil
	}

	pc.IsRecurring = true
	pc.Frequency = r.Frequency

	// Interval: unparsable text falls back to 1, but an explicit value
	// below 1 is a rejection, not a quick fix.
	interval := 1
	if raw := strings.TrimSpace(r.Interval); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			interval = n
		}
	}
	if interval < 1 {
		return PlannedChange{}, errInterval(r.Interval)
	}
	pc.Interval = interval

	// Frequency-specific anchors. Fields irrelevant to the chosen frequency
	// stay at their null zero values in pc.
	switch r.Frequency {
	case Weekly:
		if len(r.DaysOfWeek) == 0 {
			return PlannedChange{}, errWeeklyDays()
		}
		days := append([]Weekday(nil), r.DaysOfWeek...)
		slices.Sort(days)
		pc.DaysOfWeek = slices.Compact(days)
	case Monthly, Yearly:
		if r.Frequency == Yearly {
			month, err := strconv.Atoi(strings.TrimSpace(r.MonthOfYear))
			if err != nil || month < 1 || month > 12 {
				return PlannedChange{}, errYearlyMonth(r.MonthOfYear)
			}
			pc.MonthOfYear = &month
		}
		switch r.MonthlyMode {
		case SpecificDay:
			dom, err := strconv.Atoi(strings.TrimSpace(r.DayOfMonth))
			if err != nil || dom < 1 || dom > 31 {
				return PlannedChange{}, errDayOfMonth(r.DayOfMonth)
			}
			pc.DayOfMonth = &dom
		case OrdinalDay:
			ord, err := ParseOrdinal(strings.TrimSpace(r.Ordinal))
			if err != nil {
				return PlannedChange{}, errRequired("ordinal")
			}
			owd, err := ParseOrdinalWeekday(strings.TrimSpace(r.OrdinalWeekday))
			if err != nil {
				return PlannedChange{}, errRequired("ordinalWeekdayType")
			}
			pc.MonthlyOrdinal = &ord
			pc.MonthlyOrdinalDay = &owd
		}
	}

	// End condition.
	pc.EndsOnType = r.EndsOn
	switch r.EndsOn {
	case AfterOccurrences:
		n, err := strconv.Atoi(strings.TrimSpace(r.Occurrences))
		if err != nil || n < 1 {
			return PlannedChange{}, errEndCondition("occurrenceCount")
		}
		pc.EndsOnOccurrences = &n
	case OnDate:
		end, err := date.Parse(strings.TrimSpace(r.EndDate))
		if err != nil {
			return PlannedChange{}, errEndCondition("endDate")
		}
		pc.EndsOnDate = &end
	}

	return pc, nil
}
