// Package renderer turns finalized planned changes into human-readable
// text: a one-line description for confirmations, and a markdown block for
// the preview screen.
package renderer

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/etnz/planner"
)

// Change renders a one-line description of a finalized planned change, e.g.
// "Contribution of $1,000.00 on 2024-06-01, repeating every 2 weeks on
// Monday and Wednesday, never ending". Amounts are formatted in the given
// display currency; the wire record itself carries none.
func Change(pc planner.PlannedChange, currency string) string {
	var head string
	switch pc.ChangeType {
	case planner.Contribution:
		head = fmt.Sprintf("Contribution of %s", planner.M(*pc.Amount, currency))
	case planner.Withdrawal:
		head = fmt.Sprintf("Withdrawal of %s", planner.M(*pc.Amount, currency))
	case planner.Reallocation:
		targets, _ := pc.TargetAllocation()
		head = fmt.Sprintf("Reallocation across %d assets", len(targets))
	}
	head += fmt.Sprintf(" on %s", pc.ChangeDate)
	if !pc.IsRecurring {
		return head
	}
	return head + ", repeating " + Recurrence(pc)
}

// Recurrence renders the recurrence rule of a finalized change in plain
// English. The change must be recurring.
func Recurrence(pc planner.PlannedChange) string {
	var b strings.Builder
	b.WriteString(every(pc.Interval, pc.Frequency.Unit()))

	switch pc.Frequency {
	case planner.Weekly:
		names := make([]string, 0, len(pc.DaysOfWeek))
		for _, d := range pc.DaysOfWeek {
			names = append(names, d.String())
		}
		b.WriteString(" on " + andList(names))
	case planner.Monthly:
		b.WriteString(" on " + anchor(pc))
	case planner.Yearly:
		b.WriteString(fmt.Sprintf(" on %s of %s", anchor(pc), time.Month(*pc.MonthOfYear)))
	}

	switch pc.EndsOnType {
	case planner.Never:
		b.WriteString(", never ending")
	case planner.AfterOccurrences:
		b.WriteString(fmt.Sprintf(", for %d occurrences", *pc.EndsOnOccurrences))
	case planner.OnDate:
		b.WriteString(fmt.Sprintf(", until %s", *pc.EndsOnDate))
	}
	return b.String()
}

// ChangeMarkdown renders a markdown preview of a finalized planned change.
func ChangeMarkdown(pc planner.PlannedChange, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Planned Change\n\n%s.\n", Change(pc, currency))
	if pc.Description != "" {
		fmt.Fprintf(&b, "\n> %s\n", pc.Description)
	}
	if targets, err := pc.TargetAllocation(); err == nil && len(targets) > 0 {
		b.WriteString("\n| Asset | Target |\n|---|---|\n")
		for _, id := range slices.Sorted(maps.Keys(targets)) {
			fmt.Fprintf(&b, "| %s | %s%% |\n", id, targets[id])
		}
	}
	return b.String()
}

// every phrases an interval, e.g. "every week" or "every 2 weeks".
func every(interval int, unit string) string {
	if interval == 1 {
		return "every " + unit
	}
	return fmt.Sprintf("every %d %ss", interval, unit)
}

// anchor phrases the day a monthly or yearly occurrence lands on.
func anchor(pc planner.PlannedChange) string {
	if pc.DayOfMonth != nil {
		return fmt.Sprintf("day %d", *pc.DayOfMonth)
	}
	kind := strings.ReplaceAll(pc.MonthlyOrdinalDay.String(), "-", " ")
	return fmt.Sprintf("the %s %s", pc.MonthlyOrdinal, kind)
}

// andList joins names with commas and a final "and".
func andList(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
