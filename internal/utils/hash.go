// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// fingerprintLength is the number of hex characters kept by TokenFingerprint.
const fingerprintLength = 16

// HashString computes an HMAC-SHA256 signature over data using hashKey and
// returns it hex-encoded.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}

// TokenFingerprint returns a short keyed digest of a pending token. Log
// entries carry the fingerprint so events of one token can be correlated
// without the token itself ever being written.
func TokenFingerprint(token, hashKey string) string {
	if token == "" {
		return ""
	}
	return HashString(token, hashKey)[:fingerprintLength]
}
