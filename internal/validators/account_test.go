// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-bienes-raices/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Name:           "Ana",
		Email:          "ana@example.com",
		Password:       "secret1",
		RepeatPassword: "secret1",
	}
}

func TestNewAccountValidator(t *testing.T) {
	require.NotNil(t, NewAccountValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewAccountValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	err := NewAccountValidator().Validate(context.Background(), models.LoginRequest{}, FieldName)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidate_RegisterRequest(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(r *models.RegisterRequest)
		fields   []string
		wantMsgs []string
	}{
		{
			name:   "valid",
			mutate: func(r *models.RegisterRequest) {},
		},
		{
			name:     "empty name",
			mutate:   func(r *models.RegisterRequest) { r.Name = "" },
			wantMsgs: []string{MsgNameRequired},
		},
		{
			name:     "malformed email",
			mutate:   func(r *models.RegisterRequest) { r.Email = "not-an-email" },
			wantMsgs: []string{MsgEmailInvalid},
		},
		{
			name:     "five character password",
			mutate:   func(r *models.RegisterRequest) { r.Password = "12345" },
			wantMsgs: []string{MsgPasswordTooShort},
		},
		{
			name:   "six character password",
			mutate: func(r *models.RegisterRequest) { r.Password = "123456" },
		},
		{
			name:     "empty password",
			mutate:   func(r *models.RegisterRequest) { r.Password = "" },
			wantMsgs: []string{MsgPasswordTooShort},
		},
		{
			name:   "mismatch ignored by default",
			mutate: func(r *models.RegisterRequest) { r.RepeatPassword = "other" },
		},
		{
			name:     "mismatch checked on request",
			mutate:   func(r *models.RegisterRequest) { r.RepeatPassword = "other" },
			fields:   []string{FieldName, FieldEmail, FieldPassword, FieldRepeatPassword},
			wantMsgs: []string{MsgPasswordsMismatch},
		},
		{
			name: "several violations ordered by field",
			mutate: func(r *models.RegisterRequest) {
				r.Name = ""
				r.Email = ""
				r.Password = "1"
			},
			wantMsgs: []string{MsgEmailRequired, MsgNameRequired, MsgPasswordTooShort},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			err := NewAccountValidator().Validate(context.Background(), &req, tt.fields...)
			if tt.wantMsgs == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, tt.wantMsgs, Messages(err))
		})
	}
}

func TestValidate_LoginRequest(t *testing.T) {
	v := NewAccountValidator()

	assert.NoError(t, v.Validate(context.Background(), models.LoginRequest{Email: "ana@example.com", Password: "x"}))

	err := v.Validate(context.Background(), models.LoginRequest{Email: "ana@example.com"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, []string{MsgPasswordRequired}, Messages(err))
}

func TestValidate_ForgotPasswordRequest(t *testing.T) {
	err := NewAccountValidator().Validate(context.Background(), &models.ForgotPasswordRequest{Email: "nope"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, []string{MsgEmailInvalid}, Messages(err))
}

func TestValidate_NewPasswordRequest(t *testing.T) {
	v := NewAccountValidator()

	assert.NoError(t, v.Validate(context.Background(), models.NewPasswordRequest{Password: "ñandú!"}))

	err := v.Validate(context.Background(), models.NewPasswordRequest{Password: "short"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMessages_NonValidationError(t *testing.T) {
	assert.Nil(t, Messages(ErrUnknownField))
	assert.Nil(t, Messages(nil))
}
