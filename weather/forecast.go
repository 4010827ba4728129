package weather

import "time"

// reshapeLegacyForecast reworks the legacy 5-day/3-hour forecast payload
// into the One Call shape the UI expects: an "hourly" array (next 24h of
// 3-hour steps) and a "daily" array with per-day temperature extremes.
func reshapeLegacyForecast(payload map[string]interface{}) map[string]interface{} {
	list, ok := payload["list"].([]interface{})
	if !ok {
		return payload
	}

	out := map[string]interface{}{}
	if city, ok := payload["city"]; ok {
		out["city"] = city
	}

	hourly := list
	if len(hourly) > 8 {
		hourly = hourly[:8]
	}
	out["hourly"] = hourly

	type dayAgg struct {
		date    string
		min     float64
		max     float64
		weather interface{}
	}
	var days []*dayAgg
	byDate := map[string]*dayAgg{}

	for _, raw := range list {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		dt, ok := entry["dt"].(float64)
		if !ok {
			continue
		}
		main, ok := entry["main"].(map[string]interface{})
		if !ok {
			continue
		}
		min, _ := main["temp_min"].(float64)
		max, _ := main["temp_max"].(float64)

		date := time.Unix(int64(dt), 0).UTC().Format("2006-01-02")
		agg, seen := byDate[date]
		if !seen {
			agg = &dayAgg{date: date, min: min, max: max, weather: entry["weather"]}
			byDate[date] = agg
			days = append(days, agg)
			continue
		}
		if min < agg.min {
			agg.min = min
		}
		if max > agg.max {
			agg.max = max
		}
	}

	daily := make([]interface{}, 0, len(days))
	for _, d := range days {
		daily = append(daily, map[string]interface{}{
			"date":    d.date,
			"temp":    map[string]interface{}{"min": d.min, "max": d.max},
			"weather": d.weather,
		})
	}
	out["daily"] = daily

	return out
}
