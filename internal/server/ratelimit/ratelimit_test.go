package ratelimit

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucket_Take(t *testing.T) {
	now := time.Unix(1000, 0)
	b := newBucket(3, 1.0, now)

	for i := 2; i >= 0; i-- {
		allowed, remaining, _ := b.take(now)
		require.True(t, allowed)
		assert.Equal(t, i, remaining)
	}

	allowed, _, reset := b.take(now)
	assert.False(t, allowed)
	assert.Equal(t, now.Add(3*time.Second), reset)

	allowed, remaining, _ := b.take(now.Add(1500 * time.Millisecond))
	assert.True(t, allowed)
	assert.Equal(t, 0, remaining)
}

func TestBucket_RefillCapped(t *testing.T) {
	now := time.Unix(1000, 0)
	b := newBucket(2, 10, now)

	_, remaining, reset := b.take(now.Add(time.Hour))
	assert.Equal(t, 1, remaining)
	assert.True(t, reset.After(now.Add(time.Hour)))
}

func newTestLimiter(cfg *Config) (*Limiter, *time.Time) {
	clock := time.Unix(5000, 0)
	l := NewLimiter(cfg)
	l.now = func() time.Time { return clock }
	return l, &clock
}

func TestLimiter_Allow(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute})
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := l.Allow("127.0.0.1", "/other", "GET")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := l.Allow("127.0.0.1", "/other", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Equal(t, 6*time.Second, info.RetryAfter)
}

func TestLimiter_Refill(t *testing.T) {
	l, clock := newTestLimiter(&Config{Enabled: true, DefaultLimit: 60, DefaultWindow: time.Minute})
	defer l.Stop()

	for i := 0; i < 60; i++ {
		l.Allow("c", "/x", "GET")
	}
	allowed, _ := l.Allow("c", "/x", "GET")
	require.False(t, allowed)

	*clock = clock.Add(time.Second)
	allowed, _ = l.Allow("c", "/x", "GET")
	assert.True(t, allowed)
}

func TestLimiter_Lists(t *testing.T) {
	cfg := &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"10.0.0.1": true},
		Blacklist:     map[string]bool{"10.0.0.2": true},
	}
	l, _ := newTestLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 20; i++ {
		allowed, info := l.Allow("10.0.0.1", "/x", "GET")
		assert.True(t, allowed)
		assert.Zero(t, info.Limit)
	}

	allowed, _ := l.Allow("10.0.0.2", "/x", "GET")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, info := l.Allow("127.0.0.1", "/analyze", "POST")
		assert.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
	assert.Zero(t, l.Len())
}

func TestLimiter_EndpointTiers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CleanupInterval = 0
	l, _ := newTestLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := l.Allow("c", "/analyze", "POST")
		require.True(t, allowed)
		assert.Equal(t, 30, info.Limit)
	}
	allowed, _ := l.Allow("c", "/analyze", "POST")
	assert.False(t, allowed, "burst exhausted")

	allowed, info := l.Allow("c", "/ats_check", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 120, info.Limit)

	allowed, info = l.Allow("c", "/health", "GET")
	assert.True(t, allowed)
	assert.Zero(t, info.Limit)

	_, info = l.Allow("c", "/unknown", "GET")
	assert.Equal(t, defaultLimit, info.Limit)
}

func TestLimiter_Concurrent(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: true, DefaultLimit: 100, DefaultWindow: time.Hour})
	defer l.Stop()

	var allowed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Allow("c", "/x", "GET"); ok {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), allowed.Load())
}

func TestLimiter_EvictIdle(t *testing.T) {
	l, clock := newTestLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute})
	defer l.Stop()

	l.Allow("a", "/x", "GET")
	*clock = clock.Add(2 * time.Hour)
	l.Allow("b", "/x", "GET")
	require.Equal(t, 2, l.Len())

	l.evictIdle(clock.Add(-time.Hour))
	assert.Equal(t, 1, l.Len())
}

func TestLimiter_StopTwice(t *testing.T) {
	l := NewLimiter(nil)
	l.Stop()
	assert.NotPanics(t, l.Stop)
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/analyses/", Method: "GET", Limit: 5, Window: time.Minute},
		{Path: "/analyses/latest", Method: "GET", Limit: 9, Window: time.Minute},
	}

	assert.Equal(t, 9, MatchEndpoint("/analyses/latest", "GET", configs).Limit)
	assert.Equal(t, 5, MatchEndpoint("/analyses/123", "GET", configs).Limit)
	assert.Nil(t, MatchEndpoint("/analyses/123", "POST", configs))
	assert.Zero(t, MatchEndpoint("/health", "GET", configs).Limit)

	deleteTier := MatchEndpoint("/analyses/123", "DELETE", DefaultEndpointConfigs())
	require.NotNil(t, deleteTier)
	assert.Equal(t, 30, deleteTier.Limit)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_WHITELIST", "1.1.1.1, 2.2.2.2,")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
	assert.Equal(t, 30*time.Second, cfg.DefaultWindow)
	assert.Equal(t, map[string]bool{"1.1.1.1": true, "2.2.2.2": true}, cfg.Whitelist)
	assert.NotEmpty(t, cfg.EndpointConfigs)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	assert.False(t, LoadConfig().Enabled)
}
