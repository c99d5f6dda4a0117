// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go provides a Valkey-backed full-page HTML cache keyed by request
// path. Rendered public pages are stored so subsequent requests skip the
// DB queries and template execution. Admin mutations invalidate the paths
// that display the changed content.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// pageKeyPrefix namespaces cached pages in Valkey.
	pageKeyPrefix = "page:"

	// DefaultPageTTL is how long a rendered page stays cached. Short on
	// purpose: invalidation is best-effort, TTL is the backstop.
	DefaultPageTTL = 5 * time.Minute
)

// PageCache manages full-page HTML caching in Valkey, keyed by the
// request path ("/", "/staff", "/projects/villa-aurea", ...).
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a page cache backed by the given Valkey client.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl == 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// Get retrieves cached HTML for a path. Returns false on miss or error;
// cache errors never fail a page render.
func (pc *PageCache) Get(ctx context.Context, path string) ([]byte, bool) {
	val, err := pc.client.Get(ctx, pageKeyPrefix+path).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "path", path, "error", err)
		return nil, false
	}
	return val, true
}

// Set stores rendered HTML for a path with the configured TTL.
func (pc *PageCache) Set(ctx context.Context, path string, html []byte) {
	if err := pc.client.Set(ctx, pageKeyPrefix+path, html, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "path", path, "error", err)
	}
}

// Invalidate removes the cached pages for the given paths. This is the
// "content changed, re-render affected pages" signal issued after every
// successful admin mutation. Failures are logged, never escalated.
func (pc *PageCache) Invalidate(ctx context.Context, paths ...string) {
	if len(paths) == 0 {
		return
	}
	keys := make([]string, len(paths))
	for i, p := range paths {
		keys[i] = pageKeyPrefix + p
	}
	if err := pc.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("page cache invalidate error", "paths", paths, "error", err)
		return
	}
	slog.Debug("page cache invalidated", "paths", paths)
}

// InvalidatePrefix removes every cached page whose path starts with the
// given prefix. Used for detail pages ("/projects/") where the slug of
// the affected page may have just changed.
func (pc *PageCache) InvalidatePrefix(ctx context.Context, prefix string) {
	pc.scanDelete(ctx, pageKeyPrefix+prefix+"*")
}

// InvalidateAll removes all cached pages. Used when the site theme
// changes, since every page embeds the theme CSS.
func (pc *PageCache) InvalidateAll(ctx context.Context) {
	pc.scanDelete(ctx, pageKeyPrefix+"*")
}

func (pc *PageCache) scanDelete(ctx context.Context, pattern string) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			slog.Warn("page cache scan error", "pattern", pattern, "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("page cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("page cache cleared", "pattern", pattern, "deleted", deleted)
	}
}
