package shared

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"

	"teesheet/shared/cache"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the given parts into a single cache key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}

// BuildCacheKeyWithQuery builds a cache key from a prefix and one or more query
// objects. Each query is serialized and encoded so distinct parameter sets map
// to distinct keys under the same prefix.
func BuildCacheKeyWithQuery(prefix string, queries ...any) string {
	parts := make([]string, 0, len(queries)+1)
	parts = append(parts, prefix)

	for _, query := range queries {
		serialized, err := json.Marshal(query)
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal cache key query")

			continue
		}

		parts = append(parts, base64.RawURLEncoding.EncodeToString(serialized))
	}

	return BuildCacheKey(parts...)
}

// InvalidateCaches clears every cache entry sharing the given prefix.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+cacheKeySeparator+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
