package middleware

import (
	"errors"

	"pandas-platform/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// ErrorHandler renders every error returned by a handler as the standard
// envelope. Internal causes are logged and never sent to the client.
func ErrorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *utils.AppError
		if errors.As(err, &appErr) {
			if appErr.Kind == utils.KindInternal {
				logger.Error().Err(err).Str("path", c.Path()).Msg(appErr.Message)
			}
			return utils.Error(c, appErr.StatusCode(), appErr.Message)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			switch fiberErr.Code {
			case fiber.StatusNotFound:
				return utils.RouteNotFound(c)
			case fiber.StatusRequestEntityTooLarge:
				return utils.Error(c, fiberErr.Code, "Request body too large")
			}
			if fiberErr.Code < fiber.StatusInternalServerError {
				return utils.Error(c, fiberErr.Code, fiberErr.Message)
			}
		}

		logger.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		return utils.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
