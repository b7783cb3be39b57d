// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package auth isolates the ownership check behind an Authorizer capability.
// The current scheme is a bearer owner key: possession of the key returned
// at publish time equals ownership. A stronger scheme can replace this
// without touching the flows that depend on it.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"siteforge/internal/store"
)

// keyLength is the byte length of a generated owner key (32 bytes = 64 hex chars).
const keyLength = 32

// ErrForbidden is returned when the (slug, owner key) pair does not match
// any record. It deliberately does not distinguish a wrong key from a
// missing slug.
var ErrForbidden = errors.New("access denied")

// Authorizer grants or denies mutation rights on a website.
type Authorizer interface {
	// Authorize returns the website ID when the caller may mutate the
	// record identified by slug, or ErrForbidden.
	Authorize(slug, ownerKey string) (uuid.UUID, error)
}

// KeyAuthorizer is the owner-key Authorizer backed by the website store.
type KeyAuthorizer struct {
	websites *store.WebsiteStore
}

// NewKeyAuthorizer creates an Authorizer over the given website store.
func NewKeyAuthorizer(websites *store.WebsiteStore) *KeyAuthorizer {
	return &KeyAuthorizer{websites: websites}
}

// Authorize checks that a record exists for both slug and owner key. Any
// lookup miss collapses into ErrForbidden so callers cannot probe for slug
// existence; storage failures pass through unchanged.
func (a *KeyAuthorizer) Authorize(slug, ownerKey string) (uuid.UUID, error) {
	id, err := a.websites.FindIDBySlugAndOwner(slug, ownerKey)
	if errors.Is(err, store.ErrNotFound) {
		return uuid.Nil, ErrForbidden
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("authorize: %w", err)
	}
	return id, nil
}

// GenerateOwnerKey creates a cryptographically random owner key. It is
// surfaced exactly once, in the publish response; there is no recovery flow.
func GenerateOwnerKey() (string, error) {
	b := make([]byte, keyLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate owner key: %w", err)
	}
	return hex.EncodeToString(b), nil
}
