package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"hallboard/actions"
	"hallboard/types"
)

// CalendarHandler aggregates every configured feed. Individual source
// failures never surface here; the response always reports per-source
// configuration so the UI can explain an empty list.
func (h Handlers) CalendarHandler(c *fiber.Ctx) error {
	res := h.Calendar.Aggregate(h.Sources, h.Store)
	completed, dismissed := h.Store.Counts()

	return c.JSON(types.CalendarResponse{
		Events:         res.Events,
		TotalEvents:    res.TotalEvents,
		FilteredEvents: res.FilteredEvents,
		DroppedBlocks:  res.DroppedBlocks,
		CompletedCount: completed,
		DismissedCount: dismissed,
		Sources:        res.Sources,
	})
}

// EventActionHandler records a complete/dismiss action for an event id.
func (h Handlers) EventActionHandler(c *fiber.Ctx) error {
	var req types.EventActionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{Error: "invalid request body"})
	}
	if req.EventID == "" || req.Action == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{Error: "eventId and action are required"})
	}

	if err := h.Store.Record(req.EventID, actions.Action(req.Action)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{Error: err.Error()})
	}

	h.Logger.Info("event action recorded",
		zap.String("eventId", req.EventID),
		zap.String("action", req.Action))

	return c.JSON(types.EventActionResponse{
		Success: true,
		EventID: req.EventID,
		Action:  req.Action,
		Message: "event marked " + req.Action,
	})
}
