// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Integration tests for the site cache. Skipped when Valkey is unavailable.
package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testCache connects to the test Valkey instance, skipping when unreachable.
func testCache(t *testing.T) *SiteCache {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	client, err := ConnectValkey(host, port, os.Getenv("VALKEY_PASSWORD"))
	if err != nil {
		t.Skipf("skipping integration test: valkey not reachable: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return NewSiteCache(client, time.Minute)
}

func TestSiteCache_RoundTrip(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	const slug = "cache-test-roundtrip"
	t.Cleanup(func() { c.Invalidate(ctx, slug) })

	if _, ok := c.Get(ctx, slug); ok {
		t.Fatal("unexpected cache hit before Set")
	}

	doc := []byte("<!DOCTYPE html><html></html>")
	c.Set(ctx, slug, doc)

	got, ok := c.Get(ctx, slug)
	if !ok {
		t.Fatal("cache miss after Set")
	}
	if string(got) != string(doc) {
		t.Errorf("cached doc = %q, want %q", got, doc)
	}

	c.Invalidate(ctx, slug)
	if _, ok := c.Get(ctx, slug); ok {
		t.Error("cache hit after Invalidate")
	}
}

// TestSiteCache_NilSafe verifies a nil cache behaves as an always-miss
// cache without panicking. No Valkey needed.
func TestSiteCache_NilSafe(t *testing.T) {
	var c *SiteCache
	ctx := context.Background()

	if _, ok := c.Get(ctx, "any"); ok {
		t.Error("nil cache reported a hit")
	}
	c.Set(ctx, "any", []byte("doc"))
	c.Invalidate(ctx, "any")
}
