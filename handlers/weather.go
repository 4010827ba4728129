package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"hallboard/types"
	"hallboard/weather"
)

func (h Handlers) WeatherHandler(c *fiber.Ctx) error {
	return h.serveWeather(c, h.Weather.Current)
}

func (h Handlers) ForecastHandler(c *fiber.Ctx) error {
	return h.serveWeather(c, h.Weather.Forecast)
}

func (h Handlers) serveWeather(c *fiber.Ctx, read func() (weather.Result, error)) error {
	res, err := read()
	if errors.Is(err, weather.ErrNotConfigured) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{Error: err.Error()})
	}
	if err != nil {
		h.Logger.Error("weather read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Error: err.Error()})
	}

	body := fiber.Map{}
	for k, v := range res.Data {
		body[k] = v
	}
	body["cached"] = res.Cached
	if res.Cached {
		body["cache_age_minutes"] = res.AgeMinutes
	}
	body["api_version"] = res.APIVersion
	return c.JSON(body)
}
