// Package ratelimit implements the per-(principal, form) sliding-window
// quota applied to draft saves. The window state lives in the same
// ephemeral backend as the drafts themselves, under its own namespace and
// with its own TTL, so the two never contaminate each other. Exceeding the
// quota only blocks new writes; it never touches stored drafts.
package ratelimit

import (
	"context"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/common"
	"github.com/dmitrijs2005/draftkeeper/internal/server/repositories/ephemeral"
)

const keyPrefix = "ratelimit" + common.KeySeparator

// Limiter is a sliding-window counter: at most Max requests within Window
// per (principal, formSlug) pair.
type Limiter struct {
	cache  *ephemeral.Cache
	max    int
	window time.Duration
	now    func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// NewLimiter builds a limiter storing its windows in the given cache.
func NewLimiter(cache *ephemeral.Cache, max int, window time.Duration, opts ...Option) *Limiter {
	l := &Limiter{cache: cache, max: max, window: window, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow records one request for (principal, formSlug) and reports whether it
// fits the window. When the quota is exceeded it returns
// common.ErrRateLimited and does not record the request, so a blocked caller
// does not extend its own penalty.
func (l *Limiter) Allow(ctx context.Context, principal, formSlug string) error {
	key := keyPrefix + principal + common.KeySeparator + formSlug
	now := l.now()
	cutoff := now.Add(-l.window)

	allowed := false
	l.cache.Update(key, l.window, func(current any) (any, bool) {
		stamps, _ := current.([]time.Time)

		live := stamps[:0]
		for _, ts := range stamps {
			if ts.After(cutoff) {
				live = append(live, ts)
			}
		}

		if len(live) >= l.max {
			return live, len(live) > 0
		}

		allowed = true
		return append(live, now), true
	})

	if !allowed {
		return common.ErrRateLimited
	}
	return nil
}
