package timezone_test

import (
	"nautica/shared/timezone"
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
	testTime := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2026-09-05")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 {
		t.Error("Today() should be anchored at midnight")
	}

	if today.Location() != time.UTC {
		t.Errorf("Today() should be at UTC, got %s", today.Location())
	}
}

func TestParseCalendarDate(t *testing.T) {
	parsed, err := timezone.ParseCalendarDate("2026-09-05")
	if err != nil {
		t.Fatalf("ParseCalendarDate() failed: %v", err)
	}

	if parsed.Weekday() != time.Saturday {
		t.Errorf("expected Saturday, got %s", parsed.Weekday())
	}

	if parsed.Location() != time.UTC {
		t.Errorf("expected UTC, got %s", parsed.Location())
	}

	if _, err := timezone.ParseCalendarDate("05/09/2026"); err == nil {
		t.Error("expected an error for a non-ISO date")
	}

	if _, err := timezone.ParseCalendarDate("2026-13-45"); err == nil {
		t.Error("expected an error for an impossible date")
	}
}
