// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the persistent entities of the site publishing
// service.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Page is one named section of a multi-page site. Route is the anchor the
// navigation links to (e.g. "#about"). HTML is reserved for per-page markup
// and stays empty in generated drafts.
type Page struct {
	Name  string `json:"name"`
	HTML  string `json:"html"`
	Route string `json:"route"`
}

// Website is a published site record. The owner key is the bearer credential
// returned once at publish time; possession of it authorizes updates.
type Website struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Slug         string    `json:"slug"`
	OwnerKey     string    `json:"-"`
	CustomDomain *string   `json:"custom_domain,omitempty"`
	HTMLContent  string    `json:"html_content"`
	CSSContent   string    `json:"css_content"`
	JSContent    string    `json:"js_content"`
	Pages        []Page    `json:"pages"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicURL returns the address visitors use to reach the site: the custom
// domain when one is set, otherwise the platform render endpoint for the slug.
func (w *Website) PublicURL(baseURL string) string {
	if w.CustomDomain != nil && *w.CustomDomain != "" {
		return "https://" + *w.CustomDomain
	}
	return baseURL + "/site?slug=" + w.Slug
}
