package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenLog records issued token ids (jti) in Redis for replay analysis.
// Entries expire together with the token they describe; there is no
// revocation path, only the log.
// Key format: token:issued:<jti>
type TokenLog struct {
	client *redis.Client
}

// NewTokenLog creates a TokenLog wrapping the given Redis client.
func NewTokenLog(client *redis.Client) *TokenLog {
	return &TokenLog{client: client}
}

// RecordIssued stores jti → account id, expiring when the token does.
func (l *TokenLog) RecordIssued(ctx context.Context, tokenID string, accountID int64, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := l.client.Set(ctx, l.key(tokenID), strconv.FormatInt(accountID, 10), ttl).Err(); err != nil {
		return fmt.Errorf("record issued token: %w", err)
	}
	return nil
}

// WasIssued reports whether a jti is present in the log.
func (l *TokenLog) WasIssued(ctx context.Context, tokenID string) (bool, error) {
	n, err := l.client.Exists(ctx, l.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("token log lookup: %w", err)
	}
	return n > 0, nil
}

func (l *TokenLog) key(tokenID string) string {
	return "token:issued:" + tokenID
}
