// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// TokenGenerator produces the single-use tokens sent in confirmation and
// password reset links.
type TokenGenerator interface {
	Generate() string
}

// UUIDGenerator issues random (version 4) UUIDs: 122 bits from crypto/rand
// and nothing derived from the account.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}
