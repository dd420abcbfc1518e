// Package cache keeps hot lookups out of the database. The settings cache
// fronts the system_settings table for the per-request business config reads
// done by order creation and the service-area check.
package cache

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"thali/internal/shared/logger"
)

// SettingsCache caches raw setting values keyed by category and key.
type SettingsCache interface {
	Get(ctx context.Context, category, key string) (string, bool, error)
	Set(ctx context.Context, category, key, value string) error
	Invalidate(ctx context.Context, category, key string) error
	InvalidateCategory(ctx context.Context, category string) error
}

const (
	settingKeyPrefix = "setting:"
	baseSettingTTL   = 10 * time.Minute
	settingTTLJitter = 5 * time.Minute // TTL range: 10-15 min (anti-stampede)
)

// RedisSettingsCache implements SettingsCache on redis strings.
type RedisSettingsCache struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisSettingsCache(client *redis.Client, log logger.Interface) SettingsCache {
	return &RedisSettingsCache{
		client: client,
		logger: log,
	}
}

func (c *RedisSettingsCache) key(category, key string) string {
	return fmt.Sprintf("%s%s:%s", settingKeyPrefix, category, key)
}

func (c *RedisSettingsCache) Get(ctx context.Context, category, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, c.key(category, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get setting from cache: %w", err)
	}

	return value, true, nil
}

func (c *RedisSettingsCache) Set(ctx context.Context, category, key, value string) error {
	ttl := baseSettingTTL + time.Duration(rand.Int64N(int64(settingTTLJitter)))

	if err := c.client.Set(ctx, c.key(category, key), value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set setting in cache: %w", err)
	}

	return nil
}

func (c *RedisSettingsCache) Invalidate(ctx context.Context, category, key string) error {
	if err := c.client.Del(ctx, c.key(category, key)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate setting: %w", err)
	}

	return nil
}

func (c *RedisSettingsCache) InvalidateCategory(ctx context.Context, category string) error {
	pattern := fmt.Sprintf("%s%s:*", settingKeyPrefix, category)

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan setting keys: %w", err)
	}

	c.logger.Debugw("settings cache category invalidated", "category", category)
	return nil
}
