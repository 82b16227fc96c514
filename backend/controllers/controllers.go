// Package controllers holds the HTTP handlers. Handlers parse input, call a
// service and return its error unchanged; the app error handler renders it.
package controllers

import (
	"encoding/json"
	"errors"

	"pandas-platform/backend/utils"
)

var errInvalidBody = utils.NewValidationError("Invalid request body")

// fieldTypeMessages names the client message for a body field of the wrong JSON type.
var fieldTypeMessages = map[string]string{
	"timeSpent": "Time spent must be a whole number of minutes",
}

// bodyError turns a BodyParser failure into a validation error.
func bodyError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if msg, ok := fieldTypeMessages[typeErr.Field]; ok {
			return utils.NewValidationError(msg)
		}
	}
	return errInvalidBody
}
