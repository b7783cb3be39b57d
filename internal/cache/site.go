// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// site.go provides a Valkey-backed cache for rendered site documents.
// Once a published site has been assembled into its final HTML, the result
// is stored under its slug so repeat visits skip the database round-trip.
// Updates invalidate the slug's entry.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// siteKeyPrefix namespaces rendered-site keys in Valkey.
	siteKeyPrefix = "site:"

	// DefaultSiteTTL is how long a rendered site stays cached.
	DefaultSiteTTL = 5 * time.Minute
)

// SiteCache manages rendered site documents in Valkey. A nil *SiteCache is
// valid and behaves as an always-miss cache, so callers need no guards when
// Valkey is not configured.
type SiteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSiteCache creates a site cache backed by the given Valkey client.
func NewSiteCache(client *redis.Client, ttl time.Duration) *SiteCache {
	if ttl == 0 {
		ttl = DefaultSiteTTL
	}
	return &SiteCache{client: client, ttl: ttl}
}

// Get retrieves the cached document for a slug. Returns false on miss.
func (c *SiteCache) Get(ctx context.Context, slug string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, siteKeyPrefix+slug).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("site cache get error", "slug", slug, "error", err)
		return nil, false
	}
	slog.Debug("site cache hit", "slug", slug)
	return val, true
}

// Set stores a rendered document for a slug with the configured TTL.
func (c *SiteCache) Set(ctx context.Context, slug string, doc []byte) {
	if c == nil {
		return
	}
	if err := c.client.Set(ctx, siteKeyPrefix+slug, doc, c.ttl).Err(); err != nil {
		slog.Warn("site cache set error", "slug", slug, "error", err)
	}
}

// Invalidate removes a slug's cached document. Called after every update so
// visitors never see stale content beyond the in-flight requests.
func (c *SiteCache) Invalidate(ctx context.Context, slug string) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, siteKeyPrefix+slug).Err(); err != nil {
		slog.Warn("site cache invalidate error", "slug", slug, "error", err)
	}
	slog.Debug("site cache invalidated", "slug", slug)
}
