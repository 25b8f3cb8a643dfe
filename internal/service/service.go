package service

import (
	"context"
	"log/slog"

	"github.com/TVAexe/ar-fe-admin/internal/cache"
)

// cached bundles the response cache with degrade-to-upstream semantics.
// Every service embeds it; cache failures are logged and never fail a
// request.
type cached struct {
	store  cache.Store
	logger *slog.Logger
}

// cacheGet loads key into out. Cache failures degrade to a miss.
func (c cached) cacheGet(ctx context.Context, key string, out any) bool {
	hit, err := c.store.Get(ctx, key, out)
	if err != nil {
		c.logger.WarnContext(ctx, "cache read failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return false
	}
	return hit
}

// cacheSet stores value at key. Cache failures are logged and swallowed.
func (c cached) cacheSet(ctx context.Context, key string, value any) {
	if err := c.store.Set(ctx, key, value); err != nil {
		c.logger.WarnContext(ctx, "cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// invalidate drops the given cache prefixes plus the dashboard stats, which
// derive from every entity.
func (c cached) invalidate(ctx context.Context, prefixes ...string) {
	prefixes = append(prefixes, statsEntity+":")
	if err := c.store.Invalidate(ctx, prefixes...); err != nil {
		c.logger.WarnContext(ctx, "cache invalidation failed",
			slog.String("error", err.Error()),
		)
	}
}
