package calendar

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	dateLayout    = "20060102"
	isoDateLayout = "2006-01-02"
)

// FormatDate converts an iCalendar date token (20250615) or date-time token
// (20250615T090000Z) into YYYY-MM-DD. Unparseable or missing input falls
// back to today's date rather than failing.
func FormatDate(token string) string {
	datePart := token
	if i := strings.IndexByte(token, 'T'); i >= 0 {
		datePart = token[:i]
	}
	if len(datePart) >= 8 {
		if t, err := time.Parse(dateLayout, datePart[:8]); err == nil {
			return t.Format(isoDateLayout)
		}
	}
	return time.Now().Format(isoDateLayout)
}

// FormatTime extracts HH:MM from a date-time token. Date-only or missing
// input yields "00:00"; emitting "All day" for all-day events is the
// parser's call, not this function's.
func FormatTime(token string) string {
	i := strings.IndexByte(token, 'T')
	if i < 0 || len(token) < i+5 {
		return "00:00"
	}
	seg := token[i+1:]
	return seg[0:2] + ":" + seg[2:4]
}

// FormatDuration renders the gap between two iCalendar tokens as a human
// string, largest unit first: whole days, else rounded hours, else rounded
// minutes. All-day events are always "All day". A missing, unparseable or
// non-positive span defaults to "1 hour".
func FormatDuration(startToken, endToken string, allDay bool) string {
	if allDay {
		return "All day"
	}

	start, err := parseInstant(startToken)
	if err != nil {
		return "1 hour"
	}
	end, err := parseInstant(endToken)
	if err != nil {
		return "1 hour"
	}

	diff := end.Sub(start)
	if diff <= 0 {
		return "1 hour"
	}

	if diff >= 24*time.Hour {
		return plural(int(diff.Hours()/24), "day")
	}
	if diff >= time.Hour {
		return plural(int(math.Round(diff.Hours())), "hour")
	}
	if minutes := int(math.Round(diff.Minutes())); minutes >= 1 {
		return plural(minutes, "minute")
	}
	return "1 hour"
}

func parseInstant(token string) (time.Time, error) {
	token = strings.TrimSuffix(token, "Z")
	if i := strings.IndexByte(token, 'T'); i >= 0 {
		return time.Parse("20060102T150405", token)
	}
	return time.Parse(dateLayout, token)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
