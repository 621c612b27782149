// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the account forms before they reach the
// account lifecycle.
//
// Rules are expressed with ozzo-validation. A [Validator] validates a whole
// form or, when field names are passed, only the named fields. Violations are
// reported as [ErrInvalidInput] wrapping the per-field errors; [Messages]
// turns them into the messages shown to the user.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
