// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tokens

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// ByteLength is the entropy of every generated token, hex encoding doubles
// it in characters.
const ByteLength = 32

// Generate returns a random, URL safe token.
func Generate() (string, error) {
	b := make([]byte, ByteLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
