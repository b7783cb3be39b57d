package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for website fields.
const (
	maxTitleLen       = 300
	maxDescriptionLen = 10_000
	maxContentLen     = 500_000
	maxPages          = 50
)

// validateGenerate checks generation inputs and returns the first error found.
func validateGenerate(description string, pages []string) string {
	if strings.TrimSpace(description) == "" {
		return "Description is required."
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return "Description is too long (max 10,000 characters)."
	}
	if len(pages) > maxPages {
		return "Too many pages (max 50)."
	}
	return ""
}

// validatePublish checks publish inputs and returns the first error found.
func validatePublish(title, description, htmlContent, cssContent, jsContent string) string {
	if strings.TrimSpace(title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if strings.TrimSpace(description) == "" {
		return "Description is required."
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return "Description is too long (max 10,000 characters)."
	}
	if htmlContent == "" {
		return "HTML content is required."
	}
	if cssContent == "" {
		return "CSS content is required."
	}
	if jsContent == "" {
		return "JS content is required."
	}
	for _, field := range []string{htmlContent, cssContent, jsContent} {
		if utf8.RuneCountInString(field) > maxContentLen {
			return "Content is too long (max 500,000 characters)."
		}
	}
	return ""
}

// validateUpdate checks the credential fields of an update request.
// The mutable fields themselves are all optional.
func validateUpdate(ownerKey, slug string) string {
	if ownerKey == "" {
		return "Owner key is required."
	}
	if slug == "" {
		return "Slug is required."
	}
	return ""
}
