// Package ratelimit throttles bursty endpoints, most importantly order
// creation, with a redis-backed sliding window.
package ratelimit

import "time"

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}
