package handlers

import "github.com/gofiber/fiber/v2"

// TimeHandler never errors; the time client degrades to the server clock
// when every upstream endpoint is unreachable.
func (h Handlers) TimeHandler(c *fiber.Ctx) error {
	return c.JSON(h.Time.Now())
}
