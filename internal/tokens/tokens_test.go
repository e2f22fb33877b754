// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tokens

import (
	"encoding/hex"
	"testing"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		tok, err := Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(tok) != ByteLength*2 {
			t.Fatalf("expected %d characters, got %d", ByteLength*2, len(tok))
		}

		if _, err := hex.DecodeString(tok); err != nil {
			t.Fatalf("expected hex token, got %q", tok)
		}

		if seen[tok] {
			t.Fatalf("duplicate token %q", tok)
		}
		seen[tok] = true
	}
}
