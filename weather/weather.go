package weather

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"hallboard/metric"
	"hallboard/pkg/config"
)

const (
	defaultBaseURL = "https://api.openweathermap.org"
	cacheTTL       = 30 * time.Minute

	versionOneCall = "3.0"
	versionLegacy  = "2.5"
)

// ErrNotConfigured means no usable API key was provided.
var ErrNotConfigured = errors.New("weather provider is not configured")

// errTierUnavailable marks an upstream rejection that means "this key's
// subscription does not cover this endpoint", the only failure that routes
// to the legacy tier. Anything else is a hard error for the read.
var errTierUnavailable = errors.New("weather tier unavailable for this subscription")

type Config struct {
	APIKey string
	Lat    string
	Lon    string
	Units  string
}

// Result carries the upstream payload plus the cache/tier tags the API
// surface exposes alongside it.
type Result struct {
	Data       map[string]interface{}
	Cached     bool
	AgeMinutes int
	APIVersion string
}

// slot is the single cache entry per endpoint kind. It is replaced
// wholesale on refresh and never evicted except by age, evaluated at
// read time.
type slot struct {
	data       map[string]interface{}
	fetchedAt  time.Time
	apiVersion string
}

// Client wraps the weather provider behind a TTL cache and a two-tier
// fallback: the capability-rich One Call endpoint first, degrading to the
// legacy endpoint when the key's subscription does not cover One Call.
type Client struct {
	Logger *zap.Logger

	cfg     Config
	client  *resty.Client
	baseURL string
	now     func() time.Time

	mu       sync.Mutex
	current  *slot
	forecast *slot
}

func New(logger *zap.Logger, cfg Config) *Client {
	return &Client{
		Logger:  logger,
		cfg:     cfg,
		client:  resty.New().SetTimeout(10 * time.Second),
		baseURL: defaultBaseURL,
		now:     time.Now,
	}
}

func (c *Client) Configured() bool {
	return !config.IsPlaceholder(c.cfg.APIKey)
}

// Current returns the current conditions, served from the cache slot when
// it is younger than the TTL. Overlapping refreshes at the TTL boundary are
// tolerated; the loser's payload simply overwrites the winner's.
func (c *Client) Current() (Result, error) {
	return c.read(&c.current, c.fetchCurrent)
}

// Forecast returns the hourly/daily outlook with the same cache and
// fallback behavior as Current.
func (c *Client) Forecast() (Result, error) {
	return c.read(&c.forecast, c.fetchForecast)
}

func (c *Client) read(sl **slot, fetch func() (*slot, error)) (Result, error) {
	if !c.Configured() {
		return Result{}, ErrNotConfigured
	}

	c.mu.Lock()
	cached := *sl
	c.mu.Unlock()

	now := c.now()
	if cached != nil && now.Sub(cached.fetchedAt) < cacheTTL {
		metric.WeatherCacheHits.Inc()
		return Result{
			Data:       cached.data,
			Cached:     true,
			AgeMinutes: int(now.Sub(cached.fetchedAt).Minutes()),
			APIVersion: cached.apiVersion,
		}, nil
	}

	metric.WeatherCacheMisses.Inc()
	fresh, err := fetch()
	if err != nil {
		return Result{}, err
	}

	c.mu.Lock()
	*sl = fresh
	c.mu.Unlock()

	metric.WeatherTierServed.WithLabelValues(fresh.apiVersion).Inc()
	return Result{Data: fresh.data, APIVersion: fresh.apiVersion}, nil
}

func (c *Client) fetchCurrent() (*slot, error) {
	data, err := c.getJSON(c.oneCallURL())
	if err == nil {
		return &slot{data: data, fetchedAt: c.now(), apiVersion: versionOneCall}, nil
	}
	if !errors.Is(err, errTierUnavailable) {
		return nil, err
	}

	c.Logger.Info("one call tier unavailable, falling back to legacy endpoint")
	data, err = c.getJSON(c.legacyURL("/data/2.5/weather"))
	if err != nil {
		return nil, err
	}
	return &slot{data: data, fetchedAt: c.now(), apiVersion: versionLegacy}, nil
}

func (c *Client) fetchForecast() (*slot, error) {
	data, err := c.getJSON(c.oneCallURL())
	if err == nil {
		return &slot{data: data, fetchedAt: c.now(), apiVersion: versionOneCall}, nil
	}
	if !errors.Is(err, errTierUnavailable) {
		return nil, err
	}

	c.Logger.Info("one call tier unavailable, falling back to legacy forecast")
	data, err = c.getJSON(c.legacyURL("/data/2.5/forecast"))
	if err != nil {
		return nil, err
	}
	return &slot{data: reshapeLegacyForecast(data), fetchedAt: c.now(), apiVersion: versionLegacy}, nil
}

func (c *Client) getJSON(url string) (map[string]interface{}, error) {
	resp, err := c.client.R().Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return nil, fmt.Errorf("%w: %s", errTierUnavailable, resp.Status())
	}
	if resp.IsError() {
		return nil, fmt.Errorf("weather provider returned %s", resp.Status())
	}

	var data map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return nil, fmt.Errorf("malformed weather payload: %w", err)
	}
	return data, nil
}

func (c *Client) oneCallURL() string {
	return fmt.Sprintf("%s/data/3.0/onecall?lat=%s&lon=%s&units=%s&appid=%s",
		c.baseURL, c.cfg.Lat, c.cfg.Lon, c.cfg.Units, c.cfg.APIKey)
}

func (c *Client) legacyURL(path string) string {
	return fmt.Sprintf("%s%s?lat=%s&lon=%s&units=%s&appid=%s",
		c.baseURL, path, c.cfg.Lat, c.cfg.Lon, c.cfg.Units, c.cfg.APIKey)
}
