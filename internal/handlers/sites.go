// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the site generation and
// publishing API.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"siteforge/internal/auth"
	"siteforge/internal/cache"
	"siteforge/internal/config"
	"siteforge/internal/generator"
	"siteforge/internal/models"
	"siteforge/internal/render"
	"siteforge/internal/slug"
	"siteforge/internal/store"
)

// slugAttempts bounds slug regeneration when an insert hits the unique
// constraint. The random suffix makes more than one attempt very unlikely.
const slugAttempts = 3

// Sites groups the handlers of the website lifecycle: generate draft
// assets, publish, update, list by owner, and render by slug.
type Sites struct {
	cfg        *config.Config
	websites   *store.WebsiteStore
	authorizer auth.Authorizer
	siteCache  *cache.SiteCache

	// newSlug produces the candidate slug for a title. Tests swap it out
	// to force collisions with prepared rows.
	newSlug func(title string) string
}

// NewSites creates the Sites handler group. siteCache may be nil when no
// cache backend is configured.
func NewSites(cfg *config.Config, websites *store.WebsiteStore, authorizer auth.Authorizer, siteCache *cache.SiteCache) *Sites {
	return &Sites{
		cfg:        cfg,
		websites:   websites,
		authorizer: authorizer,
		siteCache:  siteCache,
		newSlug:    slug.Generate,
	}
}

type generateRequest struct {
	Description string   `json:"description"`
	Pages       []string `json:"pages"`
}

// Generate produces draft site assets from a description and page list.
// Pure — nothing is persisted.
func (h *Sites) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if msg := validateGenerate(req.Description, req.Pages); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	writeJSON(w, http.StatusOK, generator.Generate(req.Description, req.Pages))
}

type publishRequest struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	HTMLContent  string        `json:"html_content"`
	CSSContent   string        `json:"css_content"`
	JSContent    string        `json:"js_content"`
	CustomDomain string        `json:"custom_domain"`
	Pages        []models.Page `json:"pages"`
}

type publishResponse struct {
	Success   bool   `json:"success"`
	WebsiteID string `json:"website_id"`
	Slug      string `json:"slug"`
	OwnerKey  string `json:"owner_key"`
	URL       string `json:"url"`
	Message   string `json:"message"`
}

// Publish persists generated assets as a new published website and returns
// its public URL. The owner key in the response is the caller's only
// credential for future updates and is never surfaced again.
func (h *Sites) Publish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if msg := validatePublish(req.Title, req.Description, req.HTMLContent, req.CSSContent, req.JSContent); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	ownerKey, err := auth.GenerateOwnerKey()
	if err != nil {
		slog.Error("owner key generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to publish website.")
		return
	}

	site := &models.Website{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		OwnerKey:    ownerKey,
		HTMLContent: req.HTMLContent,
		CSSContent:  req.CSSContent,
		JSContent:   req.JSContent,
		Pages:       req.Pages,
		Published:   true,
	}
	if req.CustomDomain != "" {
		site.CustomDomain = &req.CustomDomain
	}

	// The random suffix makes collisions negligible, but the unique index
	// is authoritative: regenerate and retry a bounded number of times.
	for attempt := 1; ; attempt++ {
		site.Slug = h.newSlug(req.Title)
		err = h.websites.Insert(site)
		if !errors.Is(err, store.ErrSlugTaken) || attempt == slugAttempts {
			break
		}
		slog.Warn("slug collision, regenerating", "slug", site.Slug, "attempt", attempt)
	}
	if err != nil {
		slog.Error("publish insert failed", "error", err, "title", req.Title)
		writeError(w, http.StatusInternalServerError, "Failed to publish website.")
		return
	}

	writeJSON(w, http.StatusOK, publishResponse{
		Success:   true,
		WebsiteID: site.ID.String(),
		Slug:      site.Slug,
		OwnerKey:  ownerKey,
		URL:       site.PublicURL(h.cfg.PublicBaseURL),
		Message:   "Сайт успешно опубликован!",
	})
}

type updateRequest struct {
	OwnerKey    string        `json:"owner_key"`
	Slug        string        `json:"slug"`
	Title       string        `json:"title"`
	HTMLContent string        `json:"html_content"`
	CSSContent  string        `json:"css_content"`
	JSContent   string        `json:"js_content"`
	Pages       []models.Page `json:"pages"`
}

type updateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Update applies an ownership-checked partial mutation: each supplied
// non-empty field overwrites the stored one, pages replace wholesale, and
// omitted fields are never cleared.
func (h *Sites) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if msg := validateUpdate(req.OwnerKey, req.Slug); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if _, err := h.authorizer.Authorize(req.Slug, req.OwnerKey); err != nil {
		if errors.Is(err, auth.ErrForbidden) {
			// Does not disclose whether the slug exists.
			writeError(w, http.StatusForbidden, "Access denied or website not found")
			return
		}
		slog.Error("update authorization failed", "error", err, "slug", req.Slug)
		writeError(w, http.StatusInternalServerError, "Failed to update website.")
		return
	}

	err := h.websites.UpdatePartial(req.Slug, req.OwnerKey, store.UpdateFields{
		Title:       req.Title,
		HTMLContent: req.HTMLContent,
		CSSContent:  req.CSSContent,
		JSContent:   req.JSContent,
		Pages:       req.Pages,
	})
	if err != nil {
		slog.Error("update failed", "error", err, "slug", req.Slug)
		writeError(w, http.StatusInternalServerError, "Failed to update website.")
		return
	}

	// Drop the cached rendered document so visitors see the new content.
	h.siteCache.Invalidate(r.Context(), req.Slug)

	writeJSON(w, http.StatusOK, updateResponse{
		Success: true,
		Message: "Сайт успешно обновлён!",
	})
}

type siteListItem struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Slug         string        `json:"slug"`
	CustomDomain *string       `json:"custom_domain"`
	CreatedAt    time.Time     `json:"created_at"`
	Pages        []models.Page `json:"pages"`
	URL          string        `json:"url"`
}

type siteListResponse struct {
	Websites []siteListItem `json:"websites"`
	Total    int            `json:"total"`
}

// MySites lists all websites owned by the key in the owner_key query
// parameter, newest first. Zero records is a valid, empty result.
func (h *Sites) MySites(w http.ResponseWriter, r *http.Request) {
	ownerKey := r.URL.Query().Get("owner_key")
	if ownerKey == "" {
		writeError(w, http.StatusBadRequest, "owner_key parameter required")
		return
	}

	sites, err := h.websites.ListByOwner(ownerKey)
	if err != nil {
		slog.Error("list websites failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list websites.")
		return
	}

	items := make([]siteListItem, 0, len(sites))
	for _, site := range sites {
		items = append(items, siteListItem{
			ID:           site.ID,
			Title:        site.Title,
			Slug:         site.Slug,
			CustomDomain: site.CustomDomain,
			CreatedAt:    site.CreatedAt,
			Pages:        site.Pages,
			URL:          site.PublicURL(h.cfg.PublicBaseURL),
		})
	}

	writeJSON(w, http.StatusOK, siteListResponse{Websites: items, Total: len(items)})
}

// Render serves the published site for the slug query parameter as a single
// self-contained HTML document, consulting the rendered-page cache first.
func (h *Sites) Render(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slugParam := r.URL.Query().Get("slug")
	if slugParam == "" {
		writeHTML(w, http.StatusBadRequest, "<h1>Slug parameter required</h1>")
		return
	}

	if cached, ok := h.siteCache.Get(ctx, slugParam); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	assets, err := h.websites.FindPublishedBySlug(slugParam)
	if errors.Is(err, store.ErrNotFound) {
		writeHTML(w, http.StatusNotFound, render.NotFoundPage)
		return
	}
	if err != nil {
		slog.Error("render lookup failed", "error", err, "slug", slugParam)
		writeHTML(w, http.StatusInternalServerError, "<h1>Internal Server Error</h1>")
		return
	}

	doc := render.Document(assets)
	h.siteCache.Set(ctx, slugParam, doc)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(doc)
}
