package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"setback-area-service/internal/domain"
)

func newTestCache(t *testing.T) *RedisResultCache {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	return NewRedisResultCache(client, time.Hour)
}

func TestRedisResultCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	res := &domain.BuildableAreaResult{
		BuildablePolygon: []domain.Coordinates{
			{Lon: -112.07, Lat: 33.45},
			{Lon: -112.0699, Lat: 33.45},
			{Lon: -112.0699, Lat: 33.4501},
		},
		BuildableAreaM2: 51,
		SiteAreaM2:      200,
		CoverageRatio:   0.255,
		Method:          domain.DirectionalMethod(domain.FrontageSouth),
		Details: domain.SetbackDetails{
			Requirements: domain.SetbackRequirements{FrontM: 4, SideM: 1.5, RearM: 3},
			Frontage:     domain.FrontageSouth,
		},
	}

	if err := c.Put(ctx, "abc123", res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.Method != res.Method {
		t.Fatalf("method = %q, want %q", got.Method, res.Method)
	}
	if got.BuildableAreaM2 != res.BuildableAreaM2 || got.SiteAreaM2 != res.SiteAreaM2 {
		t.Fatalf("areas = %v/%v, want %v/%v", got.BuildableAreaM2, got.SiteAreaM2, res.BuildableAreaM2, res.SiteAreaM2)
	}
	if len(got.BuildablePolygon) != len(res.BuildablePolygon) {
		t.Fatalf("polygon length = %d, want %d", len(got.BuildablePolygon), len(res.BuildablePolygon))
	}
}

func TestRedisResultCacheMiss(t *testing.T) {
	c := newTestCache(t)

	_, ok, err := c.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected cache miss")
	}
}

func TestRedisResultCacheRejectsEmptyKey(t *testing.T) {
	c := newTestCache(t)

	if _, _, err := c.Get(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty key on Get")
	}
	if err := c.Put(context.Background(), "", &domain.BuildableAreaResult{}); err == nil {
		t.Fatal("expected error for empty key on Put")
	}
}
