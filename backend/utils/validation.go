package utils

import (
	"errors"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validate = newValidator()

	lettersAndSpaces = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

// validationMessages maps "Field.tag" to the message returned to clients.
var validationMessages = map[string]string{
	"Name.required":      "Name is required",
	"Name.min":           "Name must be at least 2 characters long",
	"Name.max":           "Name cannot exceed 50 characters",
	"Name.alphaspace":    "Name can only contain letters and spaces",
	"Email.required":     "Email is required",
	"Email.email":        "Please provide a valid email address",
	"Password.required":  "Password is required",
	"Password.min":       "Password must be at least 6 characters long",
	"Password.max":       "Password cannot exceed 128 characters",
	"Password.pwcomplex": "Password must contain at least one uppercase letter, one lowercase letter, and one number",
	"ModuleID.required":  "Module ID and Topic ID are required",
	"TopicID.required":   "Module ID and Topic ID are required",
	"TimeSpent.min":      "Time spent cannot be negative",
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		return lettersAndSpaces.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("pwcomplex", func(fl validator.FieldLevel) bool {
		return IsComplexPassword(fl.Field().String())
	})
	return v
}

// IsComplexPassword reports whether s has an upper-case letter, a lower-case letter and a digit.
func IsComplexPassword(s string) bool {
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

// ValidateStruct runs the struct's validate tags and returns a ValidationError
// carrying the message of the first failing rule.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return NewValidationError("Invalid request data")
	}

	fe := fieldErrs[0]
	if msg, ok := validationMessages[fe.StructField()+"."+fe.Tag()]; ok {
		return NewValidationError(msg)
	}
	return NewValidationError(fe.Field() + " is invalid")
}
