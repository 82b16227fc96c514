package controllers

import (
	"pandas-platform/backend/middleware"
	"pandas-platform/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct{}

func NewUserController() *UserController {
	return &UserController{}
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns the authenticated user's public profile
// @Tags users
// @Produce json
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Security ApiKeyAuth
// @Router /api/users/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	return utils.OK(c, fiber.Map{"user": user})
}
