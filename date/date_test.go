package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Date
		err  bool
	}{
		{"2024-06-01", New(2024, time.June, 1), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{"not-a-date", Date{}, true},
		{"", Date{}, true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if (err != nil) != tc.err {
			t.Errorf("Parse(%q) error = %v, want error %v", tc.in, err, tc.err)
			continue
		}
		if !tc.err && got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewNormalizes(t *testing.T) {
	// Overflowing days roll into the next month.
	got := New(2024, time.January, 32)
	want := New(2024, time.February, 1)
	if got != want {
		t.Errorf("New(2024, January, 32) = %v, want %v", got, want)
	}
}

func TestDaysIn(t *testing.T) {
	if got := DaysIn(2024, time.February); got != 29 {
		t.Errorf("DaysIn(2024, February) = %d, want 29", got)
	}
	if got := DaysIn(2025, time.February); got != 28 {
		t.Errorf("DaysIn(2025, February) = %d, want 28", got)
	}
	if got := DaysIn(2025, time.December); got != 31 {
		t.Errorf("DaysIn(2025, December) = %d, want 31", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2024, time.June, 1)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(b) != `"2024-06-01"` {
		t.Errorf("Marshal() = %s, want %q", b, `"2024-06-01"`)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestBeforeAfterAdd(t *testing.T) {
	a := New(2024, time.June, 1)
	b := a.Add(1)
	if !a.Before(b) || !b.After(a) {
		t.Errorf("expected %v before %v", a, b)
	}
	if a.Add(30) != New(2024, time.July, 1) {
		t.Errorf("Add(30) = %v, want 2024-07-01", a.Add(30))
	}
}
