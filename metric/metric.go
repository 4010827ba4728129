package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SourceFetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hallboard_source_fetch_failures_total",
		Help: "Calendar feed fetches that failed, by source name.",
	}, []string{"source"})

	WeatherCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hallboard_weather_cache_hits_total",
		Help: "Weather reads served from the in-memory cache slot.",
	})

	WeatherCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hallboard_weather_cache_misses_total",
		Help: "Weather reads that went upstream (empty or expired slot).",
	})

	WeatherTierServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hallboard_weather_tier_served_total",
		Help: "Successful weather fetches by upstream API version.",
	}, []string{"api_version"})

	TimeFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hallboard_time_fallbacks_total",
		Help: "Time reads that fell back to the server clock.",
	})
)
