package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/planner"
)

// finalize builds a finalized change through the editor, failing the test on
// any validation error.
func finalize(t *testing.T, d planner.Draft) planner.PlannedChange {
	t.Helper()
	pc, err := planner.Finalize(d)
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	return pc
}

func cash() planner.Draft {
	d := planner.NewDraft()
	d = planner.Apply(d, nil, planner.SetChangeDate{Value: "2025-03-15"})
	d = planner.Apply(d, nil, planner.SetAmount{Value: "500"})
	return d
}

func TestChangeOneTime(t *testing.T) {
	got := Change(finalize(t, cash()), "USD")
	want := "Contribution of $500.00 on 2025-03-15"
	if got != want {
		t.Errorf("Change() = %q, want %q", got, want)
	}
}

func TestChangeWeekly(t *testing.T) {
	d := cash()
	d = planner.Apply(d, nil, planner.SetChangeType{Type: planner.Withdrawal})
	d = planner.Apply(d, nil, planner.SetRecurring{Recurring: true})
	d = planner.Apply(d, nil, planner.SetFrequency{Frequency: planner.Weekly})
	d = planner.Apply(d, nil, planner.SetInterval{Value: "2"})
	d = planner.Apply(d, nil, planner.ToggleWeekday{Day: planner.Wednesday, Checked: true})
	d = planner.Apply(d, nil, planner.ToggleWeekday{Day: planner.Monday, Checked: true})

	got := Change(finalize(t, d), "USD")
	want := "Withdrawal of $500.00 on 2025-03-15, repeating every 2 weeks on Monday and Wednesday, never ending"
	if got != want {
		t.Errorf("Change() = %q, want %q", got, want)
	}
}

func TestRecurrencePhrasing(t *testing.T) {
	monthlyOrdinal := cash()
	monthlyOrdinal = planner.Apply(monthlyOrdinal, nil, planner.SetRecurring{Recurring: true})
	monthlyOrdinal = planner.Apply(monthlyOrdinal, nil, planner.SetFrequency{Frequency: planner.Monthly})
	monthlyOrdinal = planner.Apply(monthlyOrdinal, nil, planner.SetMonthlyMode{Mode: planner.OrdinalDay})
	monthlyOrdinal = planner.Apply(monthlyOrdinal, nil, planner.SetOrdinal{Value: "last"})
	monthlyOrdinal = planner.Apply(monthlyOrdinal, nil, planner.SetOrdinalWeekday{Value: "weekend-day"})
	monthlyOrdinal = planner.Apply(monthlyOrdinal, nil, planner.SetEndCondition{Condition: planner.AfterOccurrences})
	monthlyOrdinal = planner.Apply(monthlyOrdinal, nil, planner.SetOccurrences{Value: "12"})

	yearly := cash()
	yearly = planner.Apply(yearly, nil, planner.SetRecurring{Recurring: true})
	yearly = planner.Apply(yearly, nil, planner.SetFrequency{Frequency: planner.Yearly})
	yearly = planner.Apply(yearly, nil, planner.SetMonthOfYear{Value: "6"})
	yearly = planner.Apply(yearly, nil, planner.SetDayOfMonth{Value: "30"})
	yearly = planner.Apply(yearly, nil, planner.SetEndCondition{Condition: planner.OnDate})
	yearly = planner.Apply(yearly, nil, planner.SetEndDate{Value: "2030-06-30"})

	tests := []struct {
		name string
		d    planner.Draft
		want string
	}{
		{"monthly ordinal", monthlyOrdinal, "every month on the last weekend day, for 12 occurrences"},
		{"yearly", yearly, "every year on day 30 of June, until 2030-06-30"},
	}
	for _, tt := range tests {
		if got := Recurrence(finalize(t, tt.d)); got != tt.want {
			t.Errorf("%s: Recurrence() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestChangeMarkdownReallocation(t *testing.T) {
	assets := []planner.Asset{{ID: "equities", Name: "Equities"}, {ID: "bonds", Name: "Bonds"}}
	d := planner.NewDraft()
	d = planner.Apply(d, assets, planner.SetChangeType{Type: planner.Reallocation})
	d = planner.Apply(d, nil, planner.SetChangeDate{Value: "2025-03-15"})
	d = planner.Apply(d, nil, planner.SetDescription{Value: "Move to 60/40"})
	d = planner.Apply(d, nil, planner.SetPercentage{AssetID: "equities", Value: "60"})
	d = planner.Apply(d, nil, planner.SetPercentage{AssetID: "bonds", Value: "40"})

	md := ChangeMarkdown(finalize(t, d), "USD")
	for _, want := range []string{
		"# Planned Change",
		"Reallocation across 2 assets on 2025-03-15.",
		"> Move to 60/40",
		"| bonds | 40.00% |",
		"| equities | 60.00% |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	// The table is sorted by asset id.
	if strings.Index(md, "| bonds |") > strings.Index(md, "| equities |") {
		t.Errorf("table not sorted by asset id:\n%s", md)
	}
}
