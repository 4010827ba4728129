package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"hallboard/actions"
	"hallboard/metric"
	"hallboard/pkg/config"
	"hallboard/types"
)

// Calendar fetches configured feed sources and merges them into one
// sorted event list.
type Calendar struct {
	Logger *zap.Logger
	client *resty.Client
}

func New(logger *zap.Logger) *Calendar {
	return &Calendar{
		Logger: logger,
		client: resty.New().SetTimeout(15 * time.Second),
	}
}

// DownloadCalendar fetches the raw iCalendar body of one feed. webcal://
// URLs are normalized to https:// first.
func (c *Calendar) DownloadCalendar(url string) (string, error) {
	if strings.HasPrefix(url, "webcal://") {
		url = "https://" + strings.TrimPrefix(url, "webcal://")
	}

	resp, err := c.client.R().Get(url)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("calendar feed returned %s", resp.Status())
	}

	return resp.String(), nil
}

// Aggregate runs every configured source through fetch+parse, drops events
// the user has acted on, and sorts the rest ascending by date. A failing
// source is logged and skipped; the remaining sources still contribute.
// Events sharing a date keep source-fetch order.
func (c *Calendar) Aggregate(sources []types.Source, store *actions.Store) types.AggregateResult {
	res := types.AggregateResult{
		Events:  []types.CalendarEvent{},
		Sources: []types.SourceStatus{},
	}

	var all []types.CalendarEvent
	for _, src := range sources {
		configured := !config.IsPlaceholder(src.URL)
		res.Sources = append(res.Sources, types.SourceStatus{Name: src.Name, Configured: configured})
		if !configured {
			continue
		}

		body, err := c.DownloadCalendar(src.URL)
		if err != nil {
			metric.SourceFetchFailures.WithLabelValues(src.Name).Inc()
			c.Logger.Warn("calendar fetch failed",
				zap.String("source", src.Name),
				zap.Error(err))
			continue
		}

		events, dropped := ParseICS(body, src.Name)
		if dropped > 0 {
			c.Logger.Warn("calendar feed had unparseable blocks",
				zap.String("source", src.Name),
				zap.Int("dropped", dropped))
		}
		res.DroppedBlocks += dropped
		all = append(all, events...)
	}

	res.TotalEvents = len(all)

	kept := make([]types.CalendarEvent, 0, len(all))
	for _, ev := range all {
		if store != nil && store.Has(ev.ID) {
			continue
		}
		kept = append(kept, ev)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Date < kept[j].Date
	})

	res.Events = kept
	res.FilteredEvents = len(kept)
	return res
}
