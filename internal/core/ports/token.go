package ports

import (
	"context"
	"time"
)

// IssuedToken is a freshly signed bearer token together with the claims the
// engine needs to report back to the caller.
type IssuedToken struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
}

// TokenIssuer signs time-limited identity tokens. The same key, issuer, and
// audience used to sign must later validate, or every outstanding token is
// invalidated at once.
type TokenIssuer interface {
	Issue(accountID int64, email, roleName string) (*IssuedToken, error)
}

// TokenRecorder keeps a log of issued token ids for replay analysis. It is
// best-effort: recording failures never fail the auth operation, and there
// is no revocation path.
type TokenRecorder interface {
	RecordIssued(ctx context.Context, tokenID string, accountID int64, expiresAt time.Time) error
}
