// Package toolutil provides shared helper functions for go_career MCP tools.
package toolutil

import (
	"context"

	"github.com/anatolykoptev/go_career/internal/engine"
)

// CacheLoadJSON tries to load a cached value of type T from the engine cache.
// Returns the decoded value and true on hit; zero value and false on miss or decode error.
func CacheLoadJSON[T any](ctx context.Context, key string) (T, bool) {
	return engine.CacheLoadJSON[T](ctx, key)
}

// CacheStoreJSON marshals v and stores it in the engine cache.
func CacheStoreJSON[T any](ctx context.Context, key string, v T) {
	engine.CacheStoreJSON(ctx, key, v)
}
