package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dtroode/carlisting-server/internal/apierror"
)

// Validator plugs go-playground/validator into echo.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks the struct tags of i and reports the first failed field as
// a 400 error.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apierror.NewErrValidation(err.Error())
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return apierror.NewErrValidation(fmt.Sprintf("%s is required", field))
	case "email":
		return apierror.NewErrValidation(fmt.Sprintf("%s must be a valid email", field))
	default:
		return apierror.NewErrValidation(fmt.Sprintf("%s is invalid", field))
	}
}
