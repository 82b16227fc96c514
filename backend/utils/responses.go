package utils

import (
	"github.com/gofiber/fiber/v2"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope of every API reply.
type Response struct {
	Status             string      `json:"status"`
	Message            string      `json:"message,omitempty"`
	Data               interface{} `json:"data,omitempty"`
	AvailableEndpoints []string    `json:"availableEndpoints,omitempty"`
}

// AvailableEndpoints is the hint returned for unmatched routes.
var AvailableEndpoints = []string{"/health", "/api/auth", "/api/modules", "/api/progress", "/api/users"}

// Success sends a success envelope with the given status code
func Success(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(Response{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// OK sends 200 with data
func OK(c *fiber.Ctx, data interface{}) error {
	return Success(c, fiber.StatusOK, "", data)
}

// Created sends 201 Created
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return Success(c, fiber.StatusCreated, message, data)
}

// Error sends an error envelope
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Response{
		Status:  StatusError,
		Message: message,
	})
}

// RouteNotFound answers requests that matched no route
func RouteNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(Response{
		Status:             StatusError,
		Message:            "Route " + c.OriginalURL() + " not found",
		AvailableEndpoints: AvailableEndpoints,
	})
}
