package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/segurosapi/auth-service/internal/core/domain"
)

// CredentialStore persists accounts and roles in PostgreSQL. It is the
// authoritative side of the email-uniqueness contract: the unique index on
// LOWER(email) turns a lost registration race into domain.ErrEmailTaken.
type CredentialStore struct {
	pool *pgxpool.Pool
}

func NewCredentialStore(pool *pgxpool.Pool) *CredentialStore {
	return &CredentialStore{pool: pool}
}

const accountColumns = `a.account_id, a.email, a.password_hash, a.first_name, a.last_name, a.role_id, r.role_name, a.created_at`

func (s *CredentialStore) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
SELECT ` + accountColumns + `
FROM accounts a JOIN roles r ON r.role_id = a.role_id
WHERE LOWER(a.email) = LOWER($1)
`
	account, err := scanAccount(s.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	return account, nil
}

func (s *CredentialStore) FindAccountByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `
SELECT ` + accountColumns + `
FROM accounts a JOIN roles r ON r.role_id = a.role_id
WHERE a.account_id = $1
`
	account, err := scanAccount(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by id: %w", err)
	}
	return account, nil
}

func (s *CredentialStore) FindRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	const query = `
SELECT role_id, role_name
FROM roles
WHERE LOWER(role_name) = LOWER($1)
`
	var role domain.Role
	if err := s.pool.QueryRow(ctx, query, name).Scan(&role.ID, &role.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &role, nil
}

func (s *CredentialStore) CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	const query = `
INSERT INTO accounts (email, password_hash, first_name, last_name, role_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING account_id
`
	created := *account
	err := s.pool.QueryRow(ctx, query,
		account.Email,
		account.PasswordHash,
		account.FirstName,
		account.LastName,
		account.RoleID,
		account.CreatedAt,
	).Scan(&created.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}
	return &created, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID,
		&a.Email,
		&a.PasswordHash,
		&a.FirstName,
		&a.LastName,
		&a.RoleID,
		&a.RoleName,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
