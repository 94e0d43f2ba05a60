package validation

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// NotBlankTag rejects strings made only of whitespace
const NotBlankTag = "notblank"

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// RegisterOn installs the custom rules on v
func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation(NotBlankTag, notBlank); err != nil {
		return fmt.Errorf("register %s: %w", NotBlankTag, err)
	}
	return nil
}

// Register installs the custom rules on gin's binding validator
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return RegisterOn(v)
}
