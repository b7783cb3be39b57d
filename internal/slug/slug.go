// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation for published sites.
package slug

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const (
	// maxBaseLen is the rune limit for the title-derived part of the slug,
	// before the random suffix is appended.
	maxBaseLen = 50

	// suffixLen is the number of hex characters taken from a fresh UUID.
	suffixLen = 8
)

var (
	// disallowed matches anything that isn't a lowercase Latin letter, a
	// digit, a Cyrillic letter, whitespace, or a hyphen.
	disallowed = regexp.MustCompile(`[^a-z0-9а-я\s-]`)
	// whitespaceRun collapses consecutive whitespace into one hyphen.
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Generate creates a URL-friendly slug from a site title and appends an
// 8-character random hex suffix for collision resistance. Two calls with the
// same title produce different slugs.
// Example: "My Cool Site" → "my-cool-site-3f2a9c1b"
func Generate(title string) string {
	base := strings.ToLower(title)
	base = disallowed.ReplaceAllString(base, "")
	base = whitespaceRun.ReplaceAllString(base, "-")
	if runes := []rune(base); len(runes) > maxBaseLen {
		base = string(runes[:maxBaseLen])
	}
	return base + "-" + uuid.NewString()[:suffixLen]
}
