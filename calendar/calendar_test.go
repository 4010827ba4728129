package calendar

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"hallboard/actions"
	"hallboard/types"
)

func feedWith(events ...[2]string) string {
	body := "BEGIN:VCALENDAR\n"
	for _, ev := range events {
		body += fmt.Sprintf("BEGIN:VEVENT\nUID:%s\nSUMMARY:%s\nDTSTART:%sT090000\nEND:VEVENT\n",
			ev[0], ev[0], ev[1])
	}
	return body + "END:VCALENDAR\n"
}

func feedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestAggregatePartialFailureIsolation(t *testing.T) {
	t.Parallel()

	good := feedServer(t, feedWith([2]string{"ev-1", "20250615"}, [2]string{"ev-2", "20250616"}))
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(bad.Close)

	cal := New(zap.NewNop())
	res := cal.Aggregate([]types.Source{
		{Name: "Todoist", URL: good.URL},
		{Name: "Apple Calendar", URL: bad.URL},
		{Name: "UK Holidays", URL: "YOUR_CALENDAR_URL_HERE"},
	}, actions.NewStore())

	if len(res.Sources) != 3 {
		t.Fatalf("expected all 3 sources reported, got %d", len(res.Sources))
	}
	if !res.Sources[0].Configured || !res.Sources[1].Configured {
		t.Fatal("fetch outcome must not affect configured flag")
	}
	if res.Sources[2].Configured {
		t.Fatal("placeholder URL should report not configured")
	}
	if res.TotalEvents != 2 {
		t.Fatalf("expected 2 events from the healthy source, got %d", res.TotalEvents)
	}
	if res.FilteredEvents != 2 {
		t.Fatalf("expected no filtering, got %d", res.FilteredEvents)
	}
}

func TestAggregateActionExclusion(t *testing.T) {
	t.Parallel()

	server := feedServer(t, feedWith([2]string{"ev-1", "20250615"}, [2]string{"ev-2", "20250616"}))

	store := actions.NewStore()
	if err := store.Record("ev-1", actions.Complete); err != nil {
		t.Fatalf("record: %v", err)
	}

	cal := New(zap.NewNop())
	res := cal.Aggregate([]types.Source{{Name: "Todoist", URL: server.URL}}, store)

	if res.TotalEvents != 2 {
		t.Fatalf("expected total 2, got %d", res.TotalEvents)
	}
	if res.FilteredEvents != 1 {
		t.Fatalf("expected filtered = total - excluded, got %d", res.FilteredEvents)
	}
	for _, ev := range res.Events {
		if ev.ID == "ev-1" {
			t.Fatal("completed event should be excluded from aggregation")
		}
	}
}

func TestAggregateSortsByDateWithStableTies(t *testing.T) {
	t.Parallel()

	server := feedServer(t, feedWith(
		[2]string{"late", "20250701"},
		[2]string{"tie-first", "20250615"},
		[2]string{"early", "20250601"},
		[2]string{"tie-second", "20250615"},
	))

	cal := New(zap.NewNop())
	res := cal.Aggregate([]types.Source{{Name: "Todoist", URL: server.URL}}, actions.NewStore())

	got := make([]string, 0, len(res.Events))
	for _, ev := range res.Events {
		got = append(got, ev.ID)
	}
	want := []string{"early", "tie-first", "tie-second", "late"}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order %v, want %v", got, want)
		}
	}
}

func TestAggregateCountsDroppedBlocks(t *testing.T) {
	t.Parallel()

	server := feedServer(t, "BEGIN:VEVENT\nDTSTART:20250615T090000\nEND:VEVENT\n"+
		feedWith([2]string{"ev-1", "20250615"}))

	cal := New(zap.NewNop())
	res := cal.Aggregate([]types.Source{{Name: "Todoist", URL: server.URL}}, actions.NewStore())

	if res.DroppedBlocks != 1 {
		t.Fatalf("expected 1 dropped block reported, got %d", res.DroppedBlocks)
	}
	if res.TotalEvents != 1 {
		t.Fatalf("expected 1 event, got %d", res.TotalEvents)
	}
}
