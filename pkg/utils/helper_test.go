package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-03-02")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if !parsed.Equal(want) {
		t.Fatalf("expected %v, got %v", want, parsed)
	}
}

func TestParseDate_EmptyDefaultsToToday(t *testing.T) {
	parsed, err := ParseDate("")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if !parsed.Equal(today) {
		t.Fatalf("expected today %v, got %v", today, parsed)
	}
}

func TestParseDate_MalformedIsAnError(t *testing.T) {
	for _, value := range []string{"02-03-2026", "2026/03/02", "yesterday"} {
		if _, err := ParseDate(value); err == nil {
			t.Fatalf("expected error for %q, got none", value)
		}
	}
}
