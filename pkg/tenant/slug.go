// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

const maxSlugLength = 63

var (
	slugPattern   = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	slugSeparator = regexp.MustCompile(`[-_]+`)
)

// Slugify derives a URL-safe identifier from a display name, transliterating
// non-ASCII letters: "Café Crème #2" becomes "cafe-creme-2".
func Slugify(name string) string {
	s := slugSeparator.ReplaceAllString(slug.Make(name), "-")
	s = strings.Trim(s, "-")

	if len(s) > maxSlugLength {
		s = strings.TrimRight(s[:maxSlugLength], "-")
	}

	return s
}

func ValidSlug(s string) bool {
	return len(s) <= maxSlugLength && slugPattern.MatchString(s)
}
