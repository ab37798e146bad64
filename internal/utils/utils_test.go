package utils

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-01T10:00:00Z", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-01-01T10:00:00.250Z", time.Date(2024, 1, 1, 10, 0, 0, 250e6, time.UTC)},
		{"2024-01-01T10:00:00", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"2024-01-01 10:30:00", time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)},
		{"2024-01-01T11:10:00+0000", time.Date(2024, 1, 1, 11, 10, 0, 0, time.UTC)},
		{"2024-01-01T12:00:00+0200", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseTimestamp(tc.in)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q) error: %v", tc.in, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("ParseTimestamp(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"not a date", "2024-01-01garbage", "2024-01-01 10:00", "2024-13-01"} {
		if _, err := ParseTimestamp(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
	if _, err := ParseTimestamp(""); err == nil {
		t.Fatalf("expected error for empty input")
	}
}

func TestDayUTCUsesUTCDate(t *testing.T) {
	loc := time.FixedZone("MST", -7*3600)
	ts := time.Date(2024, 1, 1, 20, 0, 0, 0, loc) // 03:00 UTC next day
	if got := DayUTC(ts); got != "2024-01-02" {
		t.Fatalf("DayUTC = %s, want 2024-01-02", got)
	}
}

func TestContainsFold(t *testing.T) {
	if !ContainsFold("cab1", "AB1") {
		t.Fatalf("expected case-insensitive match")
	}
	if ContainsFold("cab1", "xyz") {
		t.Fatalf("unexpected match")
	}
}

func TestNumberOrEmpty(t *testing.T) {
	if NumberOrEmpty(0) != "" || NumberOrEmpty(12.5) != "12.5" || NumberOrEmpty(3) != "3" {
		t.Fatalf("NumberOrEmpty mismatch")
	}
	if FormatMoney(1234.5) != "1234.50" {
		t.Fatalf("FormatMoney mismatch")
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := SafeFilenamePart(" a/b:c "); got != "a_b_c" {
		t.Fatalf("SafeFilenamePart = %q", got)
	}
	if SafeFilenamePart("") != "NA" {
		t.Fatalf("empty should become NA")
	}
}
