package highlighter

import (
	"context"
	"strconv"
	"time"

	"github.com/bethropolis/tidejump/internal/highlighter/lang"
	"github.com/bethropolis/tidejump/internal/logger"
	"github.com/bethropolis/tidejump/internal/types"
	"github.com/cespare/xxhash/v2"
	gocache "github.com/patrickmn/go-cache"
)

const DefaultExpiration = 10 * time.Minute
const DefaultCleanupInterval = 30 * time.Minute

// Cache memoizes token streams by file path and content hash, so redraws
// of an unchanged buffer skip reparsing.
type Cache struct {
	tokenizer *Tokenizer
	cache     *gocache.Cache
}

// NewCache wraps tokenizer with an in-memory cache.
func NewCache(tokenizer *Tokenizer, defaultExpiration, cleanupInterval time.Duration) *Cache {
	return &Cache{
		tokenizer: tokenizer,
		cache:     gocache.New(defaultExpiration, cleanupInterval),
	}
}

func cacheKey(path string, src []byte) string {
	return path + "#" + strconv.FormatUint(xxhash.Sum64(src), 16)
}

// Tokens returns the cached stream for (path, src), tokenizing on a miss.
// The returned slice is shared; callers must not modify it.
func (c *Cache) Tokens(ctx context.Context, path string, src []byte, language *lang.Language) ([]types.Token, error) {
	key := cacheKey(path, src)
	if value, found := c.cache.Get(key); found {
		if tokens, ok := value.([]types.Token); ok {
			logger.DebugTagf("highlighter", "cache hit: %s", key)
			return tokens, nil
		}
		logger.Errorf("wrong type in token cache for key %s", key)
	}

	tokens, err := c.tokenizer.Tokenize(ctx, src, language)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, tokens, gocache.DefaultExpiration)
	return tokens, nil
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	return c.cache.ItemCount()
}

// Flush drops every entry.
func (c *Cache) Flush() {
	c.cache.Flush()
}
