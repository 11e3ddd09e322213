package timezone_test

import (
	"testing"
	"time"

	"roam/shared/timezone"
)

func TestNowAndLocation(t *testing.T) {
	if timezone.Now().IsZero() {
		t.Error("Now() returned zero time")
	}

	if timezone.GetLocation() == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestToAppTime(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if !appTime.Equal(utcTime) {
		t.Error("ToAppTime() changed the instant")
	}

	if appTime.Location() == nil {
		t.Error("expected converted time to carry a location")
	}
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2026-09-01")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if parsed.IsZero() {
		t.Error("Parse() returned a zero time")
	}

	if got := timezone.Format(parsed, "2006-01-02"); got != "2026-09-01" {
		t.Errorf("Format() = %q, want %q", got, "2026-09-01")
	}
}
