package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signup struct {
	Name     string `validate:"required,min=2,max=50,alphaspace"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=128,pwcomplex"`
}

func TestValidateStructMessages(t *testing.T) {
	cases := []struct {
		name  string
		input signup
		want  string
	}{
		{"valid", signup{"Ada Lovelace", "ada@example.com", "Secret1"}, ""},
		{"missing name", signup{"", "ada@example.com", "Secret1"}, "Name is required"},
		{"short name", signup{"A", "ada@example.com", "Secret1"}, "Name must be at least 2 characters long"},
		{"digits in name", signup{"Ada 2", "ada@example.com", "Secret1"}, "Name can only contain letters and spaces"},
		{"bad email", signup{"Ada", "ada-at-example", "Secret1"}, "Please provide a valid email address"},
		{"short password", signup{"Ada", "ada@example.com", "Se1"}, "Password must be at least 6 characters long"},
		{"weak password", signup{"Ada", "ada@example.com", "secret12"}, "Password must contain at least one uppercase letter, one lowercase letter, and one number"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(tc.input)
			if tc.want == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, KindValidation, KindOf(err))
			assert.EqualError(t, err, tc.want)
		})
	}
}

func TestIsComplexPassword(t *testing.T) {
	assert.True(t, IsComplexPassword("Abcdef1"))
	assert.False(t, IsComplexPassword("abcdef1"))
	assert.False(t, IsComplexPassword("ABCDEF1"))
	assert.False(t, IsComplexPassword("Abcdefg"))
}
