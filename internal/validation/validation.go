// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/chatterfix/internal/types"
)

type ValidatorInterface interface {
	Validate(s any) error
}

// Validator runs struct tag validation on request payloads. Field errors are
// flattened into one message so handlers can hand it straight back in a 400.
type Validator struct {
	validate *validator.Validate
}

func (v *Validator) Validate(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	msgs := make([]string, len(fieldErrors))
	for i, fe := range fieldErrors {
		msgs[i] = fieldErrorMessage(fe)
	}
	return errors.New(strings.Join(msgs, ", "))
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "tier":
		return fmt.Sprintf("%s must be one of free, starter, professional, enterprise", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func NewValidator() *Validator {
	v := new(Validator)
	v.validate = validator.New(validator.WithRequiredStructEnabled())

	// tier is used by bootstrap and signup payloads
	_ = v.validate.RegisterValidation("tier", func(fl validator.FieldLevel) bool {
		return types.IsValidTier(fl.Field().String())
	})

	return v
}
