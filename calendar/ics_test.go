package calendar

import (
	"testing"

	"hallboard/types"
)

const sampleFeed = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:abc-123\r\n" +
	"SUMMARY:Dentist\r\n" +
	"DTSTART:20250615T090000\r\n" +
	"DTEND:20250615T110000\r\n" +
	"DESCRIPTION:Checkup: molars\r\n" +
	"LOCATION:High Street\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParseICSRoundTrip(t *testing.T) {
	t.Parallel()

	events, dropped := ParseICS(sampleFeed, "Apple Calendar")
	if dropped != 0 {
		t.Fatalf("expected no dropped blocks, got %d", dropped)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	ev := events[0]
	if ev.ID != "abc-123" {
		t.Fatalf("unexpected id: %s", ev.ID)
	}
	if ev.Title != "Dentist" {
		t.Fatalf("unexpected title: %s", ev.Title)
	}
	if ev.Date != "2025-06-15" {
		t.Fatalf("unexpected date: %s", ev.Date)
	}
	if ev.Time != "09:00" {
		t.Fatalf("unexpected time: %s", ev.Time)
	}
	if ev.Duration != "2 hours" {
		t.Fatalf("unexpected duration: %s", ev.Duration)
	}
	if ev.Description != "Checkup: molars" {
		t.Fatalf("value after first colon should be kept whole, got %s", ev.Description)
	}
	if ev.Location != "High Street" {
		t.Fatalf("unexpected location: %s", ev.Location)
	}
	if ev.Priority != types.PriorityMedium {
		t.Fatalf("expected default medium priority, got %s", ev.Priority)
	}
	if ev.Source != "Apple Calendar" {
		t.Fatalf("unexpected source: %s", ev.Source)
	}
	if len(ev.Attendees) != 0 {
		t.Fatalf("expected no attendees, got %v", ev.Attendees)
	}
}

func TestParseICSDropsMissingSummary(t *testing.T) {
	t.Parallel()

	feed := "BEGIN:VEVENT\nDTSTART:20250615T090000\nEND:VEVENT\n"
	events, dropped := ParseICS(feed, "test")
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
	if dropped != 1 {
		t.Fatalf("expected 1 dropped block, got %d", dropped)
	}
}

func TestParseICSDropsMissingStart(t *testing.T) {
	t.Parallel()

	feed := "BEGIN:VEVENT\nSUMMARY:No start\nEND:VEVENT\n"
	events, dropped := ParseICS(feed, "test")
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
	if dropped != 1 {
		t.Fatalf("expected 1 dropped block, got %d", dropped)
	}
}

func TestParseICSAllDay(t *testing.T) {
	t.Parallel()

	feed := "BEGIN:VEVENT\nSUMMARY:Bank Holiday\nDTSTART;VALUE=DATE:20250615\nDTEND;VALUE=DATE:20250616\nEND:VEVENT\n"
	events, _ := ParseICS(feed, "UK Holidays")
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Date != "2025-06-15" {
		t.Fatalf("unexpected date: %s", events[0].Date)
	}
	if events[0].Time != "All day" {
		t.Fatalf("expected All day time, got %s", events[0].Time)
	}
	if events[0].Duration != "All day" {
		t.Fatalf("expected All day duration, got %s", events[0].Duration)
	}
}

func TestParseICSNestedBeginRestarts(t *testing.T) {
	t.Parallel()

	feed := "BEGIN:VEVENT\n" +
		"SUMMARY:Outer\n" +
		"BEGIN:VEVENT\n" +
		"SUMMARY:Inner\n" +
		"DTSTART:20250615T090000\n" +
		"END:VEVENT\n"
	events, dropped := ParseICS(feed, "test")
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Title != "Inner" {
		t.Fatalf("nested BEGIN should restart the accumulator, got %s", events[0].Title)
	}
	if dropped != 1 {
		t.Fatalf("expected the outer block counted as dropped, got %d", dropped)
	}
}

func TestParseICSIgnoresLinesOutsideBlocks(t *testing.T) {
	t.Parallel()

	feed := "SUMMARY:stray\nDTSTART:20250615T090000\nX-WR-CALNAME:Home\n"
	events, dropped := ParseICS(feed, "test")
	if len(events) != 0 || dropped != 0 {
		t.Fatalf("expected nothing from stray lines, got %d events %d dropped", len(events), dropped)
	}
}

func TestParseICSFallbackIDDeterministic(t *testing.T) {
	t.Parallel()

	feed := "BEGIN:VEVENT\nSUMMARY:No UID\nDTSTART:20250615T090000\nEND:VEVENT\n"

	first, _ := ParseICS(feed, "test")
	second, _ := ParseICS(feed, "test")
	if first[0].ID == "" {
		t.Fatal("fallback id should not be empty")
	}
	if first[0].ID != second[0].ID {
		t.Fatalf("fallback id should be stable across parses: %s vs %s", first[0].ID, second[0].ID)
	}

	other, _ := ParseICS(feed, "other-source")
	if other[0].ID == first[0].ID {
		t.Fatal("fallback id should differ per source")
	}
}
