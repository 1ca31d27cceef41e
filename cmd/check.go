package cmd

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/etnz/planner"
	"github.com/etnz/planner/renderer"
	"github.com/google/subcommands"
)

// --- Check Command ---

type checkCmd struct {
	file string
	id   string
}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "re-validate a persisted planned change and show its canonical form"
}
func (*checkCmd) Usage() string {
	return `pcp check [-f <file> | -id <change-id>]

  Loads a persisted planned change (from a JSON file or from the service),
  hydrates it back into a draft, and finalizes it again. Reports the
  validation verdict and the canonical record a save would transmit.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "File holding the planned change JSON")
	f.StringVar(&c.id, "id", "", "Id of a planned change to fetch from the service")
}

func (c *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var pc planner.PlannedChange
	var err error
	switch {
	case c.file != "":
		var data []byte
		data, err = os.ReadFile(c.file)
		if err == nil {
			pc, err = planner.DecodePlannedChange(data)
		}
	case c.id != "":
		pc, err = client().Change(ctx, c.id)
	default:
		f.Usage()
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	// Hydrate and finalize again, exactly the round trip an edit session does.
	d := planner.DraftFromChange(pc, assetsOf(pc))
	out, err := planner.Finalize(d)
	if err != nil {
		if v, ok := planner.AsValidation(err); ok {
			fmt.Fprintf(os.Stderr, "Invalid (%s): %s\n", v.Kind, v.Message)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ChangeMarkdown(out, *displayCurrency))
	payload, err := out.MarshalJSON()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s\n", payload)
	return subcommands.ExitSuccess
}

// assetsOf rebuilds an asset list from the change's own allocation map, so a
// reallocation can be re-validated without asking the service.
func assetsOf(pc planner.PlannedChange) []planner.Asset {
	targets, err := pc.TargetAllocation()
	if err != nil || len(targets) == 0 {
		return nil
	}
	assets := make([]planner.Asset, 0, len(targets))
	for _, id := range slices.Sorted(maps.Keys(targets)) {
		assets = append(assets, planner.Asset{ID: id, Name: id})
	}
	return assets
}
