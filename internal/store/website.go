// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the database access layer. All queries are
// parameterized; caller-supplied text never reaches the SQL text itself.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"siteforge/internal/models"
)

var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("website not found")

	// ErrSlugTaken is returned when an insert collides with an existing
	// slug. The publish flow reacts by regenerating the slug.
	ErrSlugTaken = errors.New("slug already taken")
)

// uniqueViolation is the PostgreSQL error code for unique constraint failures.
const uniqueViolation = "23505"

// SiteAssets holds the three stored content bodies needed to render a site.
type SiteAssets struct {
	HTMLContent string
	CSSContent  string
	JSContent   string
}

// UpdateFields carries the optional fields of a partial update. Empty
// strings and an absent or empty Pages slice mean "leave unchanged".
type UpdateFields struct {
	Title       string
	HTMLContent string
	CSSContent  string
	JSContent   string
	Pages       []models.Page
}

// WebsiteStore handles all website-related database operations.
type WebsiteStore struct {
	db *sql.DB
}

// NewWebsiteStore creates a new WebsiteStore with the given database connection.
func NewWebsiteStore(db *sql.DB) *WebsiteStore {
	return &WebsiteStore{db: db}
}

// Insert writes a new website row. Returns ErrSlugTaken when the slug
// collides with an existing record.
func (s *WebsiteStore) Insert(w *models.Website) error {
	pages, err := marshalPages(w.Pages)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO websites (id, title, description, slug, owner_key,
		                      custom_domain, html_content, css_content,
		                      js_content, pages, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, w.ID, w.Title, w.Description, w.Slug, w.OwnerKey,
		w.CustomDomain, w.HTMLContent, w.CSSContent, w.JSContent,
		pages, w.Published,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrSlugTaken
		}
		return fmt.Errorf("insert website: %w", err)
	}
	return nil
}

// FindIDBySlugAndOwner returns the ID of the website matching both slug and
// owner key, or ErrNotFound. It fetches nothing else — the method exists
// purely as the ownership gate for mutations.
func (s *WebsiteStore) FindIDBySlugAndOwner(slug, ownerKey string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.db.QueryRow(`
		SELECT id FROM websites WHERE slug = $1 AND owner_key = $2
	`, slug, ownerKey).Scan(&id)
	if err == sql.ErrNoRows {
		return uuid.Nil, ErrNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("find website by slug and owner: %w", err)
	}
	return id, nil
}

// FindPublishedBySlug returns the stored content bodies for a published
// website, or ErrNotFound. Unpublished rows are invisible here.
func (s *WebsiteStore) FindPublishedBySlug(slug string) (*SiteAssets, error) {
	a := &SiteAssets{}
	err := s.db.QueryRow(`
		SELECT html_content, css_content, js_content
		FROM websites WHERE slug = $1 AND published = true
	`, slug).Scan(&a.HTMLContent, &a.CSSContent, &a.JSContent)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find published website: %w", err)
	}
	return a, nil
}

// ListByOwner returns all websites for an owner key, newest first. An owner
// with no records gets an empty slice, not an error.
func (s *WebsiteStore) ListByOwner(ownerKey string) ([]models.Website, error) {
	rows, err := s.db.Query(`
		SELECT id, title, slug, custom_domain, created_at, pages
		FROM websites
		WHERE owner_key = $1
		ORDER BY created_at DESC
	`, ownerKey)
	if err != nil {
		return nil, fmt.Errorf("list websites by owner: %w", err)
	}
	defer rows.Close()

	var items []models.Website
	for rows.Next() {
		var w models.Website
		var pages []byte
		if err := rows.Scan(&w.ID, &w.Title, &w.Slug, &w.CustomDomain, &w.CreatedAt, &pages); err != nil {
			return nil, fmt.Errorf("scan website: %w", err)
		}
		if err := unmarshalPages(pages, &w.Pages); err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, rows.Err()
}

// UpdatePartial applies the supplied fields to the website matching slug and
// owner key. Fields left at their zero value are not touched; when no field
// is supplied the call succeeds without issuing a statement. Pages, when
// non-empty, fully replace the stored sequence.
func (s *WebsiteStore) UpdatePartial(slug, ownerKey string, f UpdateFields) error {
	var sets []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if f.Title != "" {
		add("title", f.Title)
	}
	if f.HTMLContent != "" {
		add("html_content", f.HTMLContent)
	}
	if f.CSSContent != "" {
		add("css_content", f.CSSContent)
	}
	if f.JSContent != "" {
		add("js_content", f.JSContent)
	}
	// A JSON body with "pages": [] decodes to a non-nil empty slice; like
	// every other falsy field it must not clear the stored value.
	if len(f.Pages) > 0 {
		pages, err := marshalPages(f.Pages)
		if err != nil {
			return err
		}
		add("pages", pages)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, slug, ownerKey)
	query := fmt.Sprintf(
		"UPDATE websites SET %s WHERE slug = $%d AND owner_key = $%d",
		strings.Join(sets, ", "), len(args)-1, len(args),
	)
	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("update website: %w", err)
	}
	return nil
}

// marshalPages serializes a page list for the JSONB column. A nil slice is
// stored as an empty sequence. Returned as a string so the driver sends a
// text parameter the column type can absorb, not bytea.
func marshalPages(pages []models.Page) (string, error) {
	if pages == nil {
		pages = []models.Page{}
	}
	b, err := json.Marshal(pages)
	if err != nil {
		return "", fmt.Errorf("marshal pages: %w", err)
	}
	return string(b), nil
}

// unmarshalPages decodes the JSONB pages column, defaulting to an empty
// sequence for NULL or empty values.
func unmarshalPages(data []byte, dst *[]models.Page) error {
	if len(data) == 0 {
		*dst = []models.Page{}
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshal pages: %w", err)
	}
	if *dst == nil {
		*dst = []models.Page{}
	}
	return nil
}
