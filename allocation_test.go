package planner

import "testing"

func TestNewAllocationsScaffolds(t *testing.T) {
	prev := Allocations{
		{AssetID: "bonds", Percentage: "40"},
		{AssetID: "gone", Percentage: "60"},
	}
	got := NewAllocations(testAssets, prev)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].AssetID != "equities" || got[0].AssetName != "Global Equities" || got[0].Percentage != "" {
		t.Errorf("equities entry = %+v, want fresh empty entry", got[0])
	}
	if got[1].AssetID != "bonds" || got[1].Percentage != "40" {
		t.Errorf("bonds entry = %+v, want percentage 40 preserved", got[1])
	}
}

func TestSetPercentageCopies(t *testing.T) {
	a := NewAllocations(testAssets, nil)
	b := a.SetPercentage("bonds", "40")
	if a[1].Percentage != "" {
		t.Errorf("original list mutated: %+v", a[1])
	}
	if b[1].Percentage != "40" {
		t.Errorf("copy not updated: %+v", b[1])
	}
	// Unknown ids are a no-op.
	c := b.SetPercentage("nope", "10")
	if len(c) != 2 || c[0].Percentage != "" || c[1].Percentage != "40" {
		t.Errorf("unknown asset id changed the list: %+v", c)
	}
}

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		a    Allocations
		want string
	}{
		{"empty", nil, "0"},
		{"simple", Allocations{{Percentage: "60"}, {Percentage: "40"}}, "100"},
		{"decimals", Allocations{{Percentage: "33.33"}, {Percentage: "66.67"}}, "100"},
		{"unparsable counts as zero", Allocations{{Percentage: "60"}, {Percentage: "oops"}, {Percentage: ""}}, "60"},
	}
	for _, tt := range tests {
		if got := tt.a.Sum().String(); got != tt.want {
			t.Errorf("%s: Sum() = %s, want %s", tt.name, got, tt.want)
		}
	}
}
