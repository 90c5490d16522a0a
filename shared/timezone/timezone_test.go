package timezone_test

import (
	"teesheet/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestParseDate(t *testing.T) {
	got, err := timezone.ParseDate("2025-12-21")
	if err != nil {
		t.Fatalf("ParseDate() failed: %v", err)
	}

	want := time.Date(2025, 12, 21, 0, 0, 0, 0, timezone.GetLocation())
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if _, err := timezone.ParseDate("21-12-2025"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestParseDateTime(t *testing.T) {
	naive, err := timezone.ParseDateTime("2025-12-21T07:20:00")
	if err != nil {
		t.Fatalf("ParseDateTime() failed: %v", err)
	}

	want := time.Date(2025, 12, 21, 7, 20, 0, 0, timezone.GetLocation())
	if naive != want {
		t.Errorf("expected %v, got %v", want, naive)
	}

	withOffset, err := timezone.ParseDateTime("2025-12-21T15:20:00Z")
	if err != nil {
		t.Fatalf("ParseDateTime() with offset failed: %v", err)
	}

	if withOffset.Location() != timezone.GetLocation() {
		t.Errorf("expected offset value normalized into %v, got %v", timezone.GetLocation(), withOffset.Location())
	}

	instant := time.Date(2025, 12, 21, 15, 20, 0, 0, time.UTC)
	if !withOffset.Equal(instant) {
		t.Errorf("expected same instant as %v, got %v", instant, withOffset)
	}

	if _, err := timezone.ParseDateTime("not-a-datetime"); err == nil {
		t.Error("expected error for malformed datetime")
	}
}

func TestFormatDateTime(t *testing.T) {
	testTime := time.Date(2025, 12, 21, 7, 0, 0, 0, timezone.GetLocation())

	if got := timezone.FormatDateTime(testTime); got != "2025-12-21T07:00:00" {
		t.Errorf("expected 2025-12-21T07:00:00, got %s", got)
	}

	if got := timezone.FormatDate(testTime); got != "2025-12-21" {
		t.Errorf("expected 2025-12-21, got %s", got)
	}
}
