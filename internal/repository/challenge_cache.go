package repository

import (
	"context"
	"strings"

	"github.com/alipala/mytacoai-mobile/internal/models"
)

const challengeCachePrefix = "challenge_cache:"

type ChallengeCacheR struct {
	kv *kvStore
}

func NewChallengeCacheRepository(kv *kvStore) *ChallengeCacheR {
	return &ChallengeCacheR{kv: kv}
}

func cacheKey(level string) string {
	return challengeCachePrefix + strings.ToLower(level)
}

func (c *ChallengeCacheR) ChallengeCache(ctx context.Context, level string) (models.ChallengeCacheEntry, bool, error) {
	var entry models.ChallengeCacheEntry
	ok, err := c.kv.get(ctx, cacheKey(level), &entry)
	if err != nil || !ok {
		return models.ChallengeCacheEntry{}, false, err
	}
	return entry, true, nil
}

func (c *ChallengeCacheR) SetChallengeCache(ctx context.Context, entry models.ChallengeCacheEntry) error {
	return c.kv.put(ctx, cacheKey(entry.Level), entry)
}

func (c *ChallengeCacheR) DeleteChallengeCache(ctx context.Context, level string) error {
	return c.kv.delete(ctx, cacheKey(level))
}

// CachedLevels lists the levels that currently hold a cache entry.
func (c *ChallengeCacheR) CachedLevels(ctx context.Context) ([]string, error) {
	keys, err := c.kv.keys(ctx, challengeCachePrefix)
	if err != nil {
		return nil, err
	}
	levels := make([]string, 0, len(keys))
	for _, k := range keys {
		levels = append(levels, strings.TrimPrefix(k, challengeCachePrefix))
	}
	return levels, nil
}
