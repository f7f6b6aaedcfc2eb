package cache

import (
	"context"
	"fmt"
	"log/slog"
)

// SafeInvalidatePattern safely invalidates cache pattern with logging
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// SafeDelete safely deletes cache keys with logging
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// InvalidateResourceCache drops the detail, list and stats entries for
// one resource row after a write.
func InvalidateResourceCache(ctx context.Context, cm *CacheManager, resource string, id uint) {
	helper := cm.Helper(resource)

	SafeDelete(ctx, helper, fmt.Sprintf("id:%d", id))
	SafeInvalidatePattern(ctx, helper, "list:*")
	SafeInvalidatePattern(ctx, cm.Stats, fmt.Sprintf("%s:*", resource))
}
