package controllers

import (
	"pandas-platform/backend/middleware"
	"pandas-platform/backend/services"
	"pandas-platform/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Progress *services.ProgressService
}

func NewProgressController(progress *services.ProgressService) *ProgressController {
	return &ProgressController{Progress: progress}
}

// UpdateProgress godoc
// @Summary Record topic progress
// @Description Creates or replaces the caller's progress row for one topic
// @Tags progress
// @Accept json
// @Produce json
// @Param progress body services.UpsertProgressInput true "Topic progress"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Security ApiKeyAuth
// @Router /api/progress [post]
func (pc *ProgressController) UpdateProgress(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var input services.UpsertProgressInput
	if err := c.BodyParser(&input); err != nil {
		return bodyError(err)
	}

	progress, err := pc.Progress.UpsertProgress(c.UserContext(), user.ID, input)
	if err != nil {
		return err
	}
	return utils.Success(c, fiber.StatusOK, "Progress updated successfully", fiber.Map{"progress": progress})
}

// GetProgress godoc
// @Summary Get user progress
// @Description Returns the caller's progress grouped by module with totals
// @Tags progress
// @Produce json
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Security ApiKeyAuth
// @Router /api/progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	report, err := pc.Progress.GetUserProgress(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	return utils.OK(c, report)
}

// GetModuleProgress godoc
// @Summary Get progress for one module
// @Tags progress
// @Produce json
// @Param moduleId path string true "Module ID"
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Security ApiKeyAuth
// @Router /api/progress/{moduleId} [get]
func (pc *ProgressController) GetModuleProgress(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	report, err := pc.Progress.GetModuleProgress(c.UserContext(), user.ID, c.Params("moduleId"))
	if err != nil {
		return err
	}
	return utils.OK(c, report)
}
