package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/planner"
	"github.com/etnz/planner/date"
	"github.com/google/subcommands"
)

// --- Reallocate Command ---

type reallocateCmd struct {
	date    string
	targets string
	memo    string
	preview bool
	rec     recurrenceFlags
}

func (*reallocateCmd) Name() string { return "reallocate" }
func (*reallocateCmd) Synopsis() string {
	return "plan a reallocation of the portfolio across its assets"
}
func (*reallocateCmd) Usage() string {
	return `pcp reallocate -t <asset=pct,...> [-d <date>] [-m <memo>] [recurrence flags] [-preview]

  Plans a reallocation. The asset list is fetched from the service; every
  asset not named in -t keeps an empty percentage. Percentages must sum to
  exactly 100.00 (rounding drift under 0.001 is tolerated).

Usage Examples:
# Move to a 60/40 split.
$ pcp reallocate -t "equities=60,bonds=40"

`
}

func (c *reallocateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Change date (YYYY-MM-DD)")
	f.StringVar(&c.targets, "t", "", "Target percentages, comma separated asset=pct pairs")
	f.StringVar(&c.memo, "m", "", "An optional description for the change")
	f.BoolVar(&c.preview, "preview", false, "Show the payload without submitting it")
	c.rec.SetFlags(f)
}

func (c *reallocateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.targets == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	assets, err := client().Assets(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	d := planner.NewDraft()
	d = planner.Apply(d, assets, planner.SetChangeType{Type: planner.Reallocation})
	d = planner.Apply(d, nil, planner.SetChangeDate{Value: c.date})
	if c.memo != "" {
		d = planner.Apply(d, nil, planner.SetDescription{Value: c.memo})
	}

	for _, pair := range strings.Split(c.targets, ",") {
		id, pct, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			fmt.Fprintf(os.Stderr, "Error: invalid target %q, want asset=pct\n", pair)
			return subcommands.ExitUsageError
		}
		d = planner.Apply(d, nil, planner.SetPercentage{AssetID: resolveAsset(assets, id), Value: pct})
	}

	d, err = c.rec.apply(d)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return finishChange(ctx, d, c.preview)
}

// resolveAsset accepts either an asset id or a display name, so targets can
// be typed the way the user knows them.
func resolveAsset(assets []planner.Asset, idOrName string) string {
	for _, a := range assets {
		if a.ID == idOrName || strings.EqualFold(a.Name, idOrName) {
			return a.ID
		}
	}
	return idOrName
}
