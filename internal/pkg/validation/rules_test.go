package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotBlank(t *testing.T) {
	type chapter struct {
		Title string `validate:"required,notblank"`
	}

	v := validator.New()
	require.NoError(t, RegisterOn(v))

	assert.NoError(t, v.Struct(chapter{Title: "Intro"}))
	assert.Error(t, v.Struct(chapter{Title: "   "}))
	assert.Error(t, v.Struct(chapter{Title: ""}))
}

func TestRegister(t *testing.T) {
	assert.NoError(t, Register())
	assert.NoError(t, Register())
}
