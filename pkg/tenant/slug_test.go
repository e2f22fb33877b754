// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Food Bank", "food-bank"},
		{"  Food   Bank #2 ", "food-bank-2"},
		{"Café Crème", "cafe-creme"},
		{"Ünïcode Fund", "unicode-fund"},
		{"snake_case_name", "snake-case-name"},
		{"---", ""},
		{strings.Repeat("ab-", 40), strings.TrimRight(strings.Repeat("ab-", 21), "-")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Slugify(tt.in)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if got != "" && !ValidSlug(got) {
				t.Errorf("Slugify(%q) produced invalid slug %q", tt.in, got)
			}
		})
	}
}

func TestSlugifyNonLatin(t *testing.T) {
	for _, name := range []string{"日本ボランティア", "Благотворительность"} {
		got := Slugify(name)
		if !ValidSlug(got) {
			t.Errorf("Slugify(%q) = %q, want a valid non-empty slug", name, got)
		}
	}
}

func TestValidSlug(t *testing.T) {
	tests := []struct {
		slug string
		want bool
	}{
		{"food-bank", true},
		{"fb2", true},
		{"Food", false},
		{"food--bank", false},
		{"-food", false},
		{"", false},
		{strings.Repeat("a", 64), false},
	}

	for _, tt := range tests {
		if got := ValidSlug(tt.slug); got != tt.want {
			t.Errorf("ValidSlug(%q) = %v, want %v", tt.slug, got, tt.want)
		}
	}
}
