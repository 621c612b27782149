// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidInput wraps every rule violation reported by the validator.
	// Use [Messages] to obtain the human-readable details.
	ErrInvalidInput = errors.New("invalid input")
)

// User-facing messages of the account forms.
const (
	MsgNameRequired      = "El Nombre no puede ir vacio"
	MsgEmailInvalid      = "Eso no parece un email"
	MsgEmailRequired     = "El Email es Obligatorio"
	MsgPasswordTooShort  = "El Password debe ser de al menos 6 caracteres"
	MsgPasswordRequired  = "El Password es Obligatorio"
	MsgPasswordsMismatch = "Los Passwords no son iguales"
)
