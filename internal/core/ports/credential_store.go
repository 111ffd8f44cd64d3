package ports

import (
	"context"

	"github.com/segurosapi/auth-service/internal/core/domain"
)

// CredentialStore is the narrow read/write contract the engine consumes.
// The store owns all persisted Account and Role records and is the source
// of truth for email uniqueness: a race lost on insert surfaces as
// domain.ErrEmailTaken regardless of any pre-check.
type CredentialStore interface {
	// FindAccountByEmail looks up an account by its normalized email.
	// Returns domain.ErrAccountNotFound when no account matches.
	FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error)

	// FindAccountByID resolves an account (with its role name) by id.
	// Returns domain.ErrAccountNotFound when the id no longer exists.
	FindAccountByID(ctx context.Context, id int64) (*domain.Account, error)

	// FindRoleByName matches a role case-insensitively.
	// Returns domain.ErrRoleNotFound when the seed row is missing.
	FindRoleByName(ctx context.Context, name string) (*domain.Role, error)

	// CreateAccount inserts a new account and returns it with the assigned
	// id. A unique-constraint violation on email maps to domain.ErrEmailTaken.
	CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
