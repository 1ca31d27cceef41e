package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/planner"
	"github.com/etnz/planner/date"
	"github.com/etnz/planner/renderer"
	"github.com/google/subcommands"
)

// recurrenceFlags are the schedule flags shared by every change command.
// Values stay raw text all the way into the draft: the engine, not the CLI,
// decides what is valid.
type recurrenceFlags struct {
	freq       string
	every      string
	on         string
	dayOfMonth string
	ordinal    string
	ordinalDay string
	month      string
	count      string
	until      string
}

func (r *recurrenceFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.freq, "freq", "", "Repeat frequency (daily, weekly, monthly, yearly). Empty for a one-time change.")
	f.StringVar(&r.every, "every", "1", "Repeat interval, e.g. 2 for every second week")
	f.StringVar(&r.on, "on", "", "Weekdays of a weekly repeat, comma separated (e.g. monday,friday)")
	f.StringVar(&r.dayOfMonth, "day-of-month", "", "Day of the month (1-31) for a monthly or yearly repeat")
	f.StringVar(&r.ordinal, "ordinal", "", "Ordinal anchor (first, second, third, fourth, last)")
	f.StringVar(&r.ordinalDay, "ordinal-day", "", "Ordinal anchor day (a weekday name, day, weekday or weekend-day)")
	f.StringVar(&r.month, "month", "", "Month of the year (1-12) for a yearly repeat")
	f.StringVar(&r.count, "count", "", "Stop after this many occurrences")
	f.StringVar(&r.until, "until", "", "Stop on this date (YYYY-MM-DD)")
}

// apply replays the schedule flags as edit events on the draft, the same
// transitions the interactive screens would emit one field at a time.
func (r *recurrenceFlags) apply(d planner.Draft) (planner.Draft, error) {
	if r.freq == "" {
		return d, nil
	}
	freq, err := planner.ParseFrequency(r.freq)
	if err != nil {
		return d, err
	}
	d = planner.Apply(d, nil, planner.SetRecurring{Recurring: true})
	d = planner.Apply(d, nil, planner.SetFrequency{Frequency: freq})
	d = planner.Apply(d, nil, planner.SetInterval{Value: r.every})

	if r.on != "" {
		for _, name := range strings.Split(r.on, ",") {
			day, err := planner.ParseWeekday(strings.TrimSpace(name))
			if err != nil {
				return d, err
			}
			d = planner.Apply(d, nil, planner.ToggleWeekday{Day: day, Checked: true})
		}
	}

	if r.ordinal != "" || r.ordinalDay != "" {
		d = planner.Apply(d, nil, planner.SetMonthlyMode{Mode: planner.OrdinalDay})
		d = planner.Apply(d, nil, planner.SetOrdinal{Value: r.ordinal})
		d = planner.Apply(d, nil, planner.SetOrdinalWeekday{Value: r.ordinalDay})
	} else if r.dayOfMonth != "" {
		d = planner.Apply(d, nil, planner.SetMonthlyMode{Mode: planner.SpecificDay})
		d = planner.Apply(d, nil, planner.SetDayOfMonth{Value: r.dayOfMonth})
	}
	if r.month != "" {
		d = planner.Apply(d, nil, planner.SetMonthOfYear{Value: r.month})
	}

	switch {
	case r.count != "":
		d = planner.Apply(d, nil, planner.SetEndCondition{Condition: planner.AfterOccurrences})
		d = planner.Apply(d, nil, planner.SetOccurrences{Value: r.count})
	case r.until != "":
		d = planner.Apply(d, nil, planner.SetEndCondition{Condition: planner.OnDate})
		d = planner.Apply(d, nil, planner.SetEndDate{Value: r.until})
	}
	return d, nil
}

// finishChange finalizes the draft, previews it, and submits it unless
// preview-only. Preview and submit go through the same Finalize call, so
// what is shown is byte for byte what is sent.
func finishChange(ctx context.Context, d planner.Draft, previewOnly bool) subcommands.ExitStatus {
	pc, err := planner.Finalize(d)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ChangeMarkdown(pc, *displayCurrency))
	payload, err := json.Marshal(pc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s\n", payload)

	if previewOnly {
		return subcommands.ExitSuccess
	}
	id, err := client().Save(ctx, pc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully saved planned change %s\n", id)
	return subcommands.ExitSuccess
}

// --- Contribute Command ---

type contributeCmd struct {
	date    string
	amount  string
	memo    string
	preview bool
	rec     recurrenceFlags
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "plan a one-time or recurring contribution" }
func (*contributeCmd) Usage() string {
	return `pcp contribute -a <amount> [-d <date>] [-m <memo>] [recurrence flags] [-preview]

  Plans a cash contribution. With -freq it repeats; see 'pcp topic recurrence'.

Usage Examples:
# $500 on the 15th of every month, indefinitely.
$ pcp contribute -a 500 -freq monthly -day-of-month 15

`
}

func (c *contributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Change date (YYYY-MM-DD)")
	f.StringVar(&c.amount, "a", "", "Amount to contribute")
	f.StringVar(&c.memo, "m", "", "An optional description for the change")
	f.BoolVar(&c.preview, "preview", false, "Show the payload without submitting it")
	c.rec.SetFlags(f)
}

func (c *contributeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return executeCashChange(ctx, planner.Contribution, c.date, c.amount, c.memo, &c.rec, c.preview)
}

// --- Withdraw Command ---

type withdrawCmd struct {
	date    string
	amount  string
	memo    string
	preview bool
	rec     recurrenceFlags
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "plan a one-time or recurring withdrawal" }
func (*withdrawCmd) Usage() string {
	return `pcp withdraw -a <amount> [-d <date>] [-m <memo>] [recurrence flags] [-preview]

  Plans a cash withdrawal. With -freq it repeats; see 'pcp topic recurrence'.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Change date (YYYY-MM-DD)")
	f.StringVar(&c.amount, "a", "", "Amount to withdraw")
	f.StringVar(&c.memo, "m", "", "An optional description for the change")
	f.BoolVar(&c.preview, "preview", false, "Show the payload without submitting it")
	c.rec.SetFlags(f)
}

func (c *withdrawCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return executeCashChange(ctx, planner.Withdrawal, c.date, c.amount, c.memo, &c.rec, c.preview)
}

// executeCashChange composes a contribution or withdrawal draft through the
// editor and finishes it.
func executeCashChange(ctx context.Context, kind planner.ChangeType, day, amount, memo string, rec *recurrenceFlags, preview bool) subcommands.ExitStatus {
	d := planner.NewDraft()
	d = planner.Apply(d, nil, planner.SetChangeType{Type: kind})
	d = planner.Apply(d, nil, planner.SetChangeDate{Value: day})
	d = planner.Apply(d, nil, planner.SetAmount{Value: amount})
	if memo != "" {
		d = planner.Apply(d, nil, planner.SetDescription{Value: memo})
	}
	d, err := rec.apply(d)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return finishChange(ctx, d, preview)
}
