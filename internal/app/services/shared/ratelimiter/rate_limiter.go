package ratelimiter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"care4u-service/internal/app/contracts"

	"go.uber.org/zap"
)

// ResourceLimiter is a fixed-window counter stored in Redis with a TTL equal
// to the window duration. Used to throttle login attempts per client IP.
type ResourceLimiter struct {
	redis     contracts.RedisRepository
	log       *zap.Logger
	windowSec int
	maxQuota  int
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger, windowSec, maxQuota int) contracts.ResourceLimiter {
	if windowSec <= 0 {
		windowSec = 60
	}
	return &ResourceLimiter{
		redis:     redis,
		log:       log,
		windowSec: windowSec,
		maxQuota:  maxQuota,
	}
}

func (l *ResourceLimiter) key(group, key string) string {
	resource := strings.ToLower(strings.TrimSpace(key))
	windowID := time.Now().UTC().Unix() / int64(l.windowSec)
	return fmt.Sprintf("%s:%s:%d", strings.ToUpper(group), resource, windowID)
}

// Allow reports whether the caller still has quota in the current window.
func (l *ResourceLimiter) Allow(ctx context.Context, group, key string) (bool, error) {
	if l.maxQuota <= 0 {
		return true, nil
	}

	limiterKey := l.key(group, key)
	ttl := time.Duration(l.windowSec)*time.Second + time.Second
	newCount, err := l.redis.IncrementWithTTL(ctx, limiterKey, ttl)
	if err != nil {
		l.log.Error("ResourceLimiter.Allow increment failed",
			zap.String("key", limiterKey),
			zap.Error(err))
		return false, err
	}

	return newCount <= int64(l.maxQuota), nil
}

// Reset clears the current window, used after a successful login.
func (l *ResourceLimiter) Reset(ctx context.Context, group, key string) error {
	return l.redis.Delete(ctx, l.key(group, key))
}
