// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestHashString(t *testing.T) {
	h := hmac.New(sha256.New, []byte("key"))
	h.Write([]byte("data"))
	expected := hex.EncodeToString(h.Sum(nil))

	if got := HashString("data", "key"); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestTokenFingerprint(t *testing.T) {
	fp := TokenFingerprint("1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed", "key")

	if len(fp) != fingerprintLength {
		t.Fatalf("expected %d characters, got %d", fingerprintLength, len(fp))
	}
	if fp != TokenFingerprint("1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed", "key") {
		t.Error("expected fingerprint to be deterministic")
	}
	if fp == TokenFingerprint("1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed", "other-key") {
		t.Error("expected fingerprint to depend on the key")
	}
}

func TestTokenFingerprint_Empty(t *testing.T) {
	if fp := TokenFingerprint("", "key"); fp != "" {
		t.Errorf("expected empty fingerprint, got %q", fp)
	}
}
