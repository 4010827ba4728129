package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"hallboard/types"
)

func (h Handlers) TasksHandler(c *fiber.Ctx) error {
	if !h.Tasks.Configured() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{Error: "task provider is not configured"})
	}

	list, err := h.Tasks.List()
	if err != nil {
		h.Logger.Error("task list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(fiber.Map{"tasks": list})
}

func (h Handlers) TaskCompleteHandler(c *fiber.Ctx) error {
	if !h.Tasks.Configured() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{Error: "task provider is not configured"})
	}

	var req types.TaskActionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{Error: "invalid request body"})
	}
	if req.TaskID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{Error: "taskId is required"})
	}

	if err := h.Tasks.Close(req.TaskID); err != nil {
		h.Logger.Error("task close failed", zap.String("taskId", req.TaskID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "taskId": req.TaskID})
}
