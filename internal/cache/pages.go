// Package cache keeps rendered personalized pages in Redis so repeat
// crawler hits skip the templating pass.
package cache

import (
	"log"
	"time"

	"github.com/gofiber/storage/redis/v3"
)

// Pages caches rendered page documents by slug. The zero value (and a
// constructor call without a Redis URL) is a disabled cache whose methods
// are all no-ops.
type Pages struct {
	store *redis.Storage
	ttl   time.Duration
}

// NewPages connects to Redis when url is non-empty. The storage driver
// panics on an unreachable endpoint, so connection failures are recovered
// here and degrade to a disabled cache with a logged warning.
func NewPages(url string, ttl time.Duration) (p *Pages) {
	p = &Pages{ttl: ttl}
	if url == "" {
		return p
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: page cache disabled, redis unavailable: %v", r)
			p = &Pages{ttl: ttl}
		}
	}()
	p.store = redis.New(redis.Config{URL: url})
	return p
}

// Enabled reports whether the cache is backed by a live Redis connection.
func (p *Pages) Enabled() bool {
	return p != nil && p.store != nil
}

// Get returns the cached document for slug, if present.
func (p *Pages) Get(slug string) ([]byte, bool) {
	if !p.Enabled() {
		return nil, false
	}
	raw, err := p.store.Get(key(slug))
	if err != nil || len(raw) == 0 {
		return nil, false
	}
	return raw, true
}

// Set stores the rendered document for slug. Failures are logged only; the
// page has already been rendered and will be served regardless.
func (p *Pages) Set(slug string, doc []byte) {
	if !p.Enabled() {
		return
	}
	if err := p.store.Set(key(slug), doc, p.ttl); err != nil {
		log.Printf("Failed to cache page %q: %v", slug, err)
	}
}

// Invalidate drops the cached document for slug. Called whenever the
// underlying link record changes or is deleted.
func (p *Pages) Invalidate(slug string) {
	if !p.Enabled() {
		return
	}
	if err := p.store.Delete(key(slug)); err != nil {
		log.Printf("Failed to invalidate cached page %q: %v", slug, err)
	}
}

// Close releases the Redis connection.
func (p *Pages) Close() {
	if p.Enabled() {
		_ = p.store.Close()
	}
}

func key(slug string) string {
	return "page:" + slug
}
