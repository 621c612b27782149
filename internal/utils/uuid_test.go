// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_GeneratesRandomV4(t *testing.T) {
	g := NewUUIDGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token := g.Generate()

		id, err := uuid.Parse(token)
		if err != nil {
			t.Fatalf("expected a UUID, got %q: %v", token, err)
		}
		if id.Version() != 4 {
			t.Fatalf("expected version 4, got %d", id.Version())
		}
		if _, dup := seen[token]; dup {
			t.Fatalf("duplicate token %q", token)
		}
		seen[token] = struct{}{}
	}
}
