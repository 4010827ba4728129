package types

// Priority buckets for dashboard events. The aggregator never computes
// these itself; feed events default to PriorityMedium and only a producing
// source (e.g. the task provider) overrides them.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// CalendarEvent is the normalized record every feed is reduced to.
type CalendarEvent struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Time        string   `json:"time"` // HH:MM or "All day"
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Priority    string   `json:"priority"`
	Source      string   `json:"source"`
	Attendees   []string `json:"attendees"`
}

// Source is one configured upstream calendar feed.
type Source struct {
	Name string
	URL  string
}

// SourceStatus reports whether a source was configured at all; it says
// nothing about whether the fetch succeeded.
type SourceStatus struct {
	Name       string `json:"name"`
	Configured bool   `json:"configured"`
}

// AggregateResult is the output of one aggregation pass across all sources.
type AggregateResult struct {
	Events         []CalendarEvent `json:"events"`
	TotalEvents    int             `json:"total_events"`
	FilteredEvents int             `json:"filtered_events"`
	DroppedBlocks  int             `json:"dropped_blocks"`
	Sources        []SourceStatus  `json:"sources"`
}

// CalendarResponse is AggregateResult plus the action-store counters the
// UI uses to explain why events are missing.
type CalendarResponse struct {
	Events         []CalendarEvent `json:"events"`
	TotalEvents    int             `json:"total_events"`
	FilteredEvents int             `json:"filtered_events"`
	DroppedBlocks  int             `json:"dropped_blocks"`
	CompletedCount int             `json:"completed_count"`
	DismissedCount int             `json:"dismissed_count"`
	Sources        []SourceStatus  `json:"sources"`
}

type EventActionRequest struct {
	EventID string `json:"eventId"`
	Action  string `json:"action"`
}

type EventActionResponse struct {
	Success bool   `json:"success"`
	EventID string `json:"eventId"`
	Action  string `json:"action"`
	Message string `json:"message"`
}

// TimeResponse is either a forwarded upstream reading or a synthesized
// local-clock one (Fallback=true).
type TimeResponse struct {
	Datetime string `json:"datetime"`
	Timezone string `json:"timezone"`
	Fallback bool   `json:"fallback"`
	Note     string `json:"note,omitempty"`
}

// Task is the remapped shape of a task-provider item.
type Task struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Due      string `json:"due,omitempty"`
	Priority int    `json:"priority"` // 1=high .. 3=low
}

type TaskActionRequest struct {
	TaskID string `json:"taskId"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
