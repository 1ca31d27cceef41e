package planner

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/etnz/planner/date"
)

func TestMarshalCanonicalOneTime(t *testing.T) {
	d := cashDraft()
	d = Apply(d, nil, SetDescription{Value: "Bonus"})
	pc, err := Finalize(d)
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	got, err := json.Marshal(pc)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"changeType":"contribution","changeDate":"2025-03-15","amount":500,` +
		`"description":"Bonus","targetAllocationJson":null,"isRecurring":false,` +
		`"frequency":"one-time","interval":1,"daysOfWeek":[],"dayOfMonth":null,` +
		`"monthlyOrdinal":null,"monthlyOrdinalDay":null,"monthOfYear":null,` +
		`"endsOnType":"never","endsOnOccurrences":null,"endsOnDate":null}`
	if string(got) != want {
		t.Errorf("payload mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestMarshalCanonicalRecurring(t *testing.T) {
	d := NewDraft()
	d = Apply(d, nil, SetChangeType{Type: Withdrawal})
	d = Apply(d, nil, SetChangeDate{Value: "2025-01-01"})
	d = Apply(d, nil, SetAmount{Value: "100"})
	d = Apply(d, nil, SetRecurring{Recurring: true})
	d = Apply(d, nil, SetFrequency{Frequency: Monthly})
	d = Apply(d, nil, SetInterval{Value: "2"})
	d = Apply(d, nil, SetMonthlyMode{Mode: OrdinalDay})
	d = Apply(d, nil, SetOrdinal{Value: "last"})
	d = Apply(d, nil, SetOrdinalWeekday{Value: "friday"})
	d = Apply(d, nil, SetEndCondition{Condition: AfterOccurrences})
	d = Apply(d, nil, SetOccurrences{Value: "12"})

	pc, err := Finalize(d)
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	got, err := json.Marshal(pc)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"changeType":"withdrawal","changeDate":"2025-01-01","amount":100,` +
		`"description":null,"targetAllocationJson":null,"isRecurring":true,` +
		`"frequency":"monthly","interval":2,"daysOfWeek":[],"dayOfMonth":null,` +
		`"monthlyOrdinal":"last","monthlyOrdinalDay":"friday","monthOfYear":null,` +
		`"endsOnType":"after-occurrences","endsOnOccurrences":12,"endsOnDate":null}`
	if string(got) != want {
		t.Errorf("payload mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestMarshalWeekdaysAsInts(t *testing.T) {
	d := cashDraft()
	d = Apply(d, nil, SetRecurring{Recurring: true})
	d = Apply(d, nil, SetFrequency{Frequency: Weekly})
	d = Apply(d, nil, ToggleWeekday{Day: Sunday, Checked: true})
	d = Apply(d, nil, ToggleWeekday{Day: Monday, Checked: true})

	pc, err := Finalize(d)
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	got, err := json.Marshal(pc)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	// Monday is 0, Sunday is 6 on the wire.
	if want := `"daysOfWeek":[0,6]`; !strings.Contains(string(got), want) {
		t.Errorf("payload %s\ndoes not contain %s", got, want)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	d := cashDraft()
	d = Apply(d, nil, SetRecurring{Recurring: true})
	d = Apply(d, nil, SetFrequency{Frequency: Yearly})
	d = Apply(d, nil, SetMonthOfYear{Value: "6"})
	d = Apply(d, nil, SetDayOfMonth{Value: "30"})
	pc, err := Finalize(d)
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	data, err := json.Marshal(pc)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	back, err := DecodePlannedChange(data)
	if err != nil {
		t.Fatalf("DecodePlannedChange() error = %v", err)
	}

	again, err := json.Marshal(back)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(again) != string(data) {
		t.Errorf("round trip changed the payload:\n got %s\nwant %s", again, data)
	}
}

func TestDraftFromChange(t *testing.T) {
	raw := `{
		"id": "pc-7",
		"changeType": "withdrawal",
		"changeDate": "2025-01-01",
		"amount": 100,
		"description": null,
		"targetAllocationJson": null,
		"isRecurring": true,
		"frequency": "monthly",
		"interval": 2,
		"daysOfWeek": [],
		"dayOfMonth": null,
		"monthlyOrdinal": "last",
		"monthlyOrdinalDay": "friday",
		"monthOfYear": null,
		"endsOnType": "after-occurrences",
		"endsOnOccurrences": 12,
		"endsOnDate": null
	}`
	pc, err := DecodePlannedChange([]byte(raw))
	if err != nil {
		t.Fatalf("DecodePlannedChange() error = %v", err)
	}
	d := DraftFromChange(pc, nil)

	if d.ID != "pc-7" {
		t.Errorf("ID = %q, want pc-7", d.ID)
	}
	if d.Amount != "100" || d.ChangeDate != "2025-01-01" {
		t.Errorf("Amount = %q ChangeDate = %q, want raw text back", d.Amount, d.ChangeDate)
	}
	r := d.Recurrence
	if !r.Recurring || r.Frequency != Monthly || r.Interval != "2" {
		t.Errorf("Recurrence = %+v, want recurring monthly every 2", r)
	}
	// The wire has no monthlyMode: it must be inferred from the set anchors.
	if r.MonthlyMode != OrdinalDay || r.Ordinal != "last" || r.OrdinalWeekday != "friday" {
		t.Errorf("Recurrence = %+v, want ordinal mode inferred", r)
	}
	if r.EndsOn != AfterOccurrences || r.Occurrences != "12" {
		t.Errorf("Recurrence = %+v, want 12 occurrences", r)
	}

	// The hydrated draft must finalize back to the same payload.
	out, err := Finalize(d)
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	a, _ := json.Marshal(pc)
	b, _ := json.Marshal(out)
	if string(a) != string(b) {
		t.Errorf("hydration round trip changed the payload:\n got %s\nwant %s", b, a)
	}
}

func TestDraftFromChangeReallocation(t *testing.T) {
	alloc := `{"equities":"40.00","bonds":"60.00"}`
	pc := PlannedChange{
		ChangeType:           Reallocation,
		ChangeDate:           date.MustParse("2025-03-15"),
		TargetAllocationJSON: &alloc,
		Frequency:            OneTime,
		Interval:             1,
	}
	d := DraftFromChange(pc, testAssets)
	if len(d.Allocations) != 2 {
		t.Fatalf("Allocations has %d entries, want 2", len(d.Allocations))
	}
	if d.Allocations[0].AssetID != "equities" || d.Allocations[0].Percentage != "40.00" {
		t.Errorf("equities entry = %+v, want 40.00", d.Allocations[0])
	}
	if d.Allocations[1].AssetID != "bonds" || d.Allocations[1].Percentage != "60.00" {
		t.Errorf("bonds entry = %+v, want 60.00", d.Allocations[1])
	}
}

func TestTargetAllocation(t *testing.T) {
	pc, err := Finalize(reallocationDraft("40", "60"))
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	targets, err := pc.TargetAllocation()
	if err != nil {
		t.Fatalf("TargetAllocation() error = %v", err)
	}
	if targets["equities"] != "40.00" || targets["bonds"] != "60.00" {
		t.Errorf("TargetAllocation() = %v", targets)
	}

	cash, err := Finalize(cashDraft())
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	targets, err = cash.TargetAllocation()
	if err != nil || targets != nil {
		t.Errorf("TargetAllocation() = %v, %v, want nil for a cash change", targets, err)
	}
}
