package calendar

import (
	"strings"

	"github.com/google/uuid"

	"hallboard/types"
)

// rawBlock accumulates the properties seen between BEGIN:VEVENT and
// END:VEVENT. It never outlives a single ParseICS call.
type rawBlock map[string]string

// Properties the parser cares about; everything else in a VEVENT is ignored.
var knownProps = map[string]bool{
	"SUMMARY":            true,
	"DTSTART":            true,
	"DTSTART;VALUE=DATE": true,
	"DTEND":              true,
	"DTEND;VALUE=DATE":   true,
	"DESCRIPTION":        true,
	"LOCATION":           true,
	"UID":                true,
}

// ParseICS scans raw iCalendar text line by line and returns the events it
// could normalize, labelled with the given source name, plus a count of
// VEVENT blocks that were dropped. Parsing is deliberately lenient: lines
// outside a VEVENT are ignored, a nested BEGIN restarts the accumulator,
// and a block missing SUMMARY or DTSTART is dropped silently instead of
// failing the whole feed.
func ParseICS(data, source string) ([]types.CalendarEvent, int) {
	events := []types.CalendarEvent{}
	dropped := 0

	var cur rawBlock
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case line == "BEGIN:VEVENT":
			if cur != nil {
				dropped++
			}
			cur = rawBlock{}
		case line == "END:VEVENT":
			if cur == nil {
				continue
			}
			if ev, ok := cur.toEvent(source); ok {
				events = append(events, ev)
			} else {
				dropped++
			}
			cur = nil
		default:
			if cur == nil {
				continue
			}
			name, value, found := strings.Cut(line, ":")
			if found && knownProps[name] {
				cur[name] = value
			}
		}
	}

	return events, dropped
}

func (b rawBlock) toEvent(source string) (types.CalendarEvent, bool) {
	start := b["DTSTART"]
	allDay := false
	if v, ok := b["DTSTART;VALUE=DATE"]; ok {
		start = v
		allDay = true
	}
	title := b["SUMMARY"]
	if title == "" || start == "" {
		return types.CalendarEvent{}, false
	}

	end := b["DTEND"]
	if v, ok := b["DTEND;VALUE=DATE"]; ok {
		end = v
	}

	evTime := "All day"
	if !allDay {
		evTime = FormatTime(start)
	}

	id := b["UID"]
	if id == "" {
		id = fallbackID(source, title, start)
	}

	return types.CalendarEvent{
		ID:          id,
		Title:       title,
		Date:        FormatDate(start),
		Time:        evTime,
		Duration:    FormatDuration(start, end, allDay),
		Description: b["DESCRIPTION"],
		Location:    b["LOCATION"],
		Priority:    types.PriorityMedium,
		Source:      source,
		Attendees:   []string{},
	}, true
}

// fallbackID derives a deterministic id for feeds that omit UID, so the
// same event maps to the same id on every aggregation pass.
func fallbackID(source, title, start string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(source+"|"+title+"|"+start)).String()
}
