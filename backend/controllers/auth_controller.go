package controllers

import (
	"pandas-platform/backend/config"
	"pandas-platform/backend/middleware"
	"pandas-platform/backend/services"
	"pandas-platform/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Auth *services.AuthService
	Cfg  *config.Config
}

func NewAuthController(auth *services.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{Auth: auth, Cfg: cfg}
}

type registeredUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user account and starts a session
// @Tags auth
// @Accept json
// @Produce json
// @Param user body services.RegisterInput true "User registration data"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return bodyError(err)
	}

	session, err := ac.Auth.Register(c.UserContext(), input)
	if err != nil {
		return err
	}

	utils.SetTokenCookie(c, session.Token, ac.Cfg)
	return utils.Created(c, "User registered successfully", fiber.Map{
		"user": registeredUser{
			ID:    session.User.ID,
			Name:  session.User.Name,
			Email: session.User.Email,
		},
		"token": session.Token,
	})
}

// Login godoc
// @Summary User login
// @Description Authenticates the user and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.LoginInput true "Login credentials"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /api/auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return bodyError(err)
	}

	session, err := ac.Auth.Login(c.UserContext(), input)
	if err != nil {
		return err
	}

	utils.SetTokenCookie(c, session.Token, ac.Cfg)
	return utils.Success(c, fiber.StatusOK, "Login successful", fiber.Map{
		"user":  session.User,
		"token": session.Token,
	})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Security ApiKeyAuth
// @Router /api/auth/me [get]
func (ac *AuthController) Me(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	return utils.OK(c, fiber.Map{"user": user})
}

// Logout godoc
// @Summary Logout
// @Description Clears the session cookie. Copies of the token stay valid until they expire.
// @Tags auth
// @Produce json
// @Success 200 {object} utils.Response
// @Router /api/auth/logout [post]
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	utils.ClearTokenCookie(c, ac.Cfg)
	return utils.Success(c, fiber.StatusOK, "Logout successful", nil)
}
