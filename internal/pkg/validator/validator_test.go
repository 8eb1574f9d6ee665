package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidMobile(t *testing.T) {
	assert.True(t, ValidMobile("9876543210"))
	assert.False(t, ValidMobile("987654321"))
	assert.False(t, ValidMobile("98765432101"))
	assert.False(t, ValidMobile("98765x3210"))
	assert.False(t, ValidMobile(""))
}

func TestValidPassword(t *testing.T) {
	cases := map[string]bool{
		"Passw0rd!":   true,
		"Str0ng#Pass": true,
		"short":       false,
		"passw0rd!":   false, // no uppercase
		"Password!":   false, // no digit
		"Passw0rdd":   false, // no symbol
		"Pass w0rd!":  false, // whitespace
		"Pa0!":        false,
	}
	for pw, want := range cases {
		assert.Equal(t, want, ValidPassword(pw), pw)
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail(""))
	assert.True(t, ValidEmail("asha.k+home@example.co.in"))
	assert.False(t, ValidEmail("asha@"))
	assert.False(t, ValidEmail("asha@example.c"))
	assert.False(t, ValidEmail("not an email"))
}

func TestDescribe(t *testing.T) {
	type body struct {
		UserID int    `validate:"required"`
		Rating int    `validate:"min=1,max=5"`
		Status string `validate:"oneof=OPEN RESOLVED"`
	}

	validate := validator.New()

	assert.Equal(t, "UserID is required", Describe(validate.Struct(body{Rating: 3, Status: "OPEN"})))
	assert.Equal(t, "Rating must not exceed 5", Describe(validate.Struct(body{UserID: 1, Rating: 9, Status: "OPEN"})))
	assert.Equal(t, "Invalid request body", Describe(assert.AnError))
	assert.Equal(t, "Status must be one of: OPEN RESOLVED", Describe(validate.Struct(body{UserID: 1, Rating: 2, Status: "CLOSED"})))
	assert.NoError(t, validate.Struct(body{UserID: 1, Rating: 2, Status: "RESOLVED"}))
}
