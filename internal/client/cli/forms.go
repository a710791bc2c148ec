package cli

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the package-level singleton validator. The form schemas below
// mirror the ones the web client declared with zod.
var validate = validator.New()

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type registerForm struct {
	Username string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type otpForm struct {
	Code string `validate:"required,len=6"`
}

type emailForm struct {
	Email string `validate:"required,email"`
}

type resetForm struct {
	NewPassword     string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=NewPassword"`
}

// checkForm validates s against its validate tags and returns per-field
// messages. A nil result means the form may be submitted.
func checkForm(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": err.Error()}
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "email":
		return "Please enter a valid email."
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", fe.Field(), fe.Param())
	case "len":
		return "Your one-time password must be 6 characters."
	case "eqfield":
		return "Passwords do not match"
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}
