package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestTokenLog_RecordAndLookup(t *testing.T) {
	log := NewTokenLog(newTestRedis(t))
	ctx := context.Background()

	expires := time.Now().Add(time.Hour)
	if err := log.RecordIssued(ctx, "jti-1", 42, expires); err != nil {
		t.Fatalf("RecordIssued returned error: %v", err)
	}

	issued, err := log.WasIssued(ctx, "jti-1")
	if err != nil {
		t.Fatalf("WasIssued returned error: %v", err)
	}
	if !issued {
		t.Fatalf("expected jti-1 to be logged")
	}

	unknown, err := log.WasIssued(ctx, "jti-unknown")
	if err != nil {
		t.Fatalf("WasIssued returned error: %v", err)
	}
	if unknown {
		t.Fatalf("unknown jti reported as issued")
	}
}

func TestTokenLog_SkipsExpiredTokens(t *testing.T) {
	log := NewTokenLog(newTestRedis(t))
	ctx := context.Background()

	// Nothing to record for a token already past its expiry.
	if err := log.RecordIssued(ctx, "jti-old", 1, time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("RecordIssued returned error: %v", err)
	}
	issued, err := log.WasIssued(ctx, "jti-old")
	if err != nil {
		t.Fatalf("WasIssued returned error: %v", err)
	}
	if issued {
		t.Fatalf("expired token should not be logged")
	}
}
