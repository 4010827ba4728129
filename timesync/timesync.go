package timesync

import (
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"hallboard/metric"
	"hallboard/types"
)

const endpointTimeout = 8 * time.Second

var defaultEndpoints = []string{
	"https://worldtimeapi.org/api/ip",
	"https://timeapi.io/api/Time/current/zone?timeZone=Etc/UTC",
}

// Client reads wall-clock time from a short ordered list of upstream
// endpoints. The first successful, parseable response wins. When every
// endpoint fails, the server's own clock is returned instead of an error,
// so the clock display always has something to show.
type Client struct {
	Logger *zap.Logger

	endpoints []string
	client    *resty.Client
}

func New(logger *zap.Logger, endpoints []string) *Client {
	if len(endpoints) == 0 {
		endpoints = defaultEndpoints
	}
	return &Client{
		Logger:    logger,
		endpoints: endpoints,
		client:    resty.New().SetTimeout(endpointTimeout),
	}
}

// timePayload accepts both worldtimeapi-style and timeapi.io-style field
// names.
type timePayload struct {
	Datetime  string `json:"datetime"`
	DateTime2 string `json:"dateTime"`
	Timezone  string `json:"timezone"`
	TimeZone2 string `json:"timeZone"`
}

func (c *Client) Now() types.TimeResponse {
	for _, endpoint := range c.endpoints {
		resp, err := c.client.R().Get(endpoint)
		if err != nil || resp.IsError() {
			c.Logger.Warn("time endpoint unreachable", zap.String("endpoint", endpoint), zap.Error(err))
			continue
		}

		var payload timePayload
		if err := json.Unmarshal(resp.Body(), &payload); err != nil {
			c.Logger.Warn("time endpoint returned unparseable body", zap.String("endpoint", endpoint), zap.Error(err))
			continue
		}

		datetime := payload.Datetime
		if datetime == "" {
			datetime = payload.DateTime2
		}
		if datetime == "" {
			continue
		}
		timezone := payload.Timezone
		if timezone == "" {
			timezone = payload.TimeZone2
		}
		if timezone == "" {
			// never hand the UI a blank zone
			timezone = "Etc/UTC"
		}

		return types.TimeResponse{Datetime: datetime, Timezone: timezone}
	}

	metric.TimeFallbacks.Inc()
	now := time.Now()
	return types.TimeResponse{
		Datetime: now.Format(time.RFC3339),
		Timezone: now.Location().String(),
		Fallback: true,
		Note:     "all time endpoints unreachable, serving server clock",
	}
}
