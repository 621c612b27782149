// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/MKhiriev/go-bienes-raices/models"
)

// Field name constants used to restrict validation to a subset of fields.
// They double as the keys of the reported errors.
const (
	FieldName           = "name"
	FieldEmail          = "email"
	FieldPassword       = "password"
	FieldRepeatPassword = "repeat_password"
)

// MinPasswordLength is the shortest password accepted on registration and
// password reset, counted in characters.
const MinPasswordLength = 6

var (
	nameRules = []validation.Rule{
		validation.Required.Error(MsgNameRequired),
	}
	emailRules = []validation.Rule{
		validation.Required.Error(MsgEmailRequired),
		is.Email.Error(MsgEmailInvalid),
	}
	newPasswordRules = []validation.Rule{
		validation.Required.Error(MsgPasswordTooShort),
		validation.Length(MinPasswordLength, 0).Error(MsgPasswordTooShort),
	}
	loginPasswordRules = []validation.Rule{
		validation.Required.Error(MsgPasswordRequired),
	}
)

// AccountValidator implements [Validator] for the account forms:
// RegisterRequest, LoginRequest, ForgotPasswordRequest and
// NewPasswordRequest, in value or pointer form.
type AccountValidator struct{}

// NewAccountValidator constructs an [AccountValidator].
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate checks obj against the rules of its form. Without fields, the
// default set of each form is validated; RepeatPassword is only checked when
// [FieldRepeatPassword] is requested explicitly.
//
// Rule violations are returned wrapped in [ErrInvalidInput].
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)
	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)
	case models.ForgotPasswordRequest:
		return v.validateForgotPasswordRequest(ctx, value, fields...)
	case *models.ForgotPasswordRequest:
		return v.validateForgotPasswordRequest(ctx, *value, fields...)
	case models.NewPasswordRequest:
		return v.validateNewPasswordRequest(ctx, value, fields...)
	case *models.NewPasswordRequest:
		return v.validateNewPasswordRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateRegisterRequest(ctx context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	errs := validation.Errors{}
	for _, f := range fields {
		switch f {
		case FieldName:
			errs[f] = validation.Validate(request.Name, nameRules...)
		case FieldEmail:
			errs[f] = validation.Validate(request.Email, emailRules...)
		case FieldPassword:
			errs[f] = validation.Validate(request.Password, newPasswordRules...)
		case FieldRepeatPassword:
			errs[f] = validation.Validate(request.RepeatPassword,
				validation.By(stringEquals(request.Password)))
		default:
			return ErrUnknownField
		}
	}

	return wrap(errs)
}

func (v *AccountValidator) validateLoginRequest(ctx context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	errs := validation.Errors{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			errs[f] = validation.Validate(request.Email, emailRules...)
		case FieldPassword:
			errs[f] = validation.Validate(request.Password, loginPasswordRules...)
		default:
			return ErrUnknownField
		}
	}

	return wrap(errs)
}

func (v *AccountValidator) validateForgotPasswordRequest(ctx context.Context, request models.ForgotPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	errs := validation.Errors{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			errs[f] = validation.Validate(request.Email, emailRules...)
		default:
			return ErrUnknownField
		}
	}

	return wrap(errs)
}

func (v *AccountValidator) validateNewPasswordRequest(ctx context.Context, request models.NewPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword}
	}

	errs := validation.Errors{}
	for _, f := range fields {
		switch f {
		case FieldPassword:
			errs[f] = validation.Validate(request.Password, newPasswordRules...)
		default:
			return ErrUnknownField
		}
	}

	return wrap(errs)
}

// stringEquals fails unless the validated string equals expected.
// An empty value is checked too, so a missing repetition is reported.
func stringEquals(expected string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != expected {
			return errors.New(MsgPasswordsMismatch)
		}
		return nil
	}
}

func wrap(errs validation.Errors) error {
	if err := errs.Filter(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

// Messages returns the user-facing messages carried by err, ordered by field
// name. It returns nil when err holds no rule violations.
func Messages(err error) []string {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return nil
	}

	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	messages := make([]string, 0, len(keys))
	for _, k := range keys {
		messages = append(messages, errs[k].Error())
	}
	return messages
}
