package controllers

import (
	"context"
	"time"

	"pandas-platform/backend/config"
	"pandas-platform/backend/utils"

	"github.com/gofiber/fiber/v2"
)

const apiVersion = "1.0.0"

// Pinger reports whether the database answers.
type Pinger interface {
	Ping(ctx context.Context) error
	Driver() string
}

type HealthController struct {
	DB  Pinger
	Cfg *config.Config
}

func NewHealthController(db Pinger, cfg *config.Config) *HealthController {
	return &HealthController{DB: db, Cfg: cfg}
}

// Health godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} utils.Response
// @Router /health [get]
func (hc *HealthController) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	database := hc.DB.Driver()
	if err := hc.DB.Ping(ctx); err != nil {
		database = "not connected"
	}

	return utils.OK(c, fiber.Map{
		"message":     "Pandas Learning Platform API is running",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": hc.Cfg.Environment,
		"version":     apiVersion,
		"database":    database,
	})
}

// Root godoc
// @Summary API index
// @Tags health
// @Produce json
// @Success 200 {object} utils.Response
// @Router / [get]
func (hc *HealthController) Root(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, "Welcome to the Pandas Learning Platform API", fiber.Map{
		"version":   apiVersion,
		"endpoints": utils.AvailableEndpoints,
	})
}
