package ports

import (
	"context"
	"time"

	"github.com/segurosapi/auth-service/internal/core/domain"
)

// RegisterInput carries an already-parsed, syntactically valid registration
// request into the engine. Semantic checks (role set membership, email
// uniqueness) belong to the engine.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	RoleName  string
}

// AuthResult is the success outcome of registration and login: a signed
// bearer token plus the profile fields a client needs to render a session.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	Email     string
	RoleName  string
	FirstName string
	LastName  string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// WhoAmI resolves the current account and role for a token subject from
	// the store, not from token claims. Returns domain.ErrUnauthenticated
	// when the subject no longer exists.
	WhoAmI(ctx context.Context, accountID int64) (*domain.Account, error)
}
