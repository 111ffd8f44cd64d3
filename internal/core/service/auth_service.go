package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/segurosapi/auth-service/internal/core/domain"
	"github.com/segurosapi/auth-service/internal/core/ports"
)

// AuthService implements registration, login, and identity resolution. It
// holds no state across calls: every operation is a function of its inputs
// and the store's current contents.
type AuthService struct {
	store    ports.CredentialStore
	issuer   ports.TokenIssuer
	recorder ports.TokenRecorder
	log      zerolog.Logger
}

func NewAuthService(store ports.CredentialStore, issuer ports.TokenIssuer, recorder ports.TokenRecorder, log zerolog.Logger) *AuthService {
	return &AuthService{store: store, issuer: issuer, recorder: recorder, log: log}
}

// Register creates an account and issues its first token.
//
// Role and email are normalized before any store access. The store's unique
// constraint on normalized email is authoritative for the concurrent
// registration race; the pre-check only exists to fail fast.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	roleName, ok := domain.CanonicalRole(in.RoleName)
	if !ok {
		return nil, domain.ErrInvalidRole
	}

	email := domain.NormalizeEmail(in.Email)

	if _, err := s.store.FindAccountByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	role, err := s.store.FindRoleByName(ctx, roleName)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			// Missing seed row. Reported as an invalid role so callers
			// cannot distinguish internal states.
			s.log.Error().Str("role", roleName).Msg("role seed row missing")
			return nil, domain.ErrInvalidRole
		}
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		RoleID:       role.ID,
		RoleName:     role.Name,
		CreatedAt:    time.Now().UTC(),
	}

	// The store maps its unique-constraint violation to ErrEmailTaken, so a
	// registration that loses the race fails the same way the pre-check does.
	created, err := s.store.CreateAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	return s.authResult(ctx, created)
}

// Login verifies credentials and issues a token. A missing account and a
// wrong password return the identical error value so the two cases are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	account, err := s.store.FindAccountByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.authResult(ctx, account)
}

// WhoAmI projects the current account and role for a token subject. The
// store is consulted on every call so a role change would reflect
// immediately rather than at token renewal.
func (s *AuthService) WhoAmI(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.store.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return account, nil
}

func (s *AuthService) authResult(ctx context.Context, account *domain.Account) (*ports.AuthResult, error) {
	issued, err := s.issuer.Issue(account.ID, account.Email, account.RoleName)
	if err != nil {
		return nil, err
	}

	if s.recorder != nil {
		// Best effort. A failed log write never fails the auth operation.
		if err := s.recorder.RecordIssued(ctx, issued.TokenID, account.ID, issued.ExpiresAt); err != nil {
			s.log.Warn().Err(err).Str("jti", issued.TokenID).Msg("token log write failed")
		}
	}

	return &ports.AuthResult{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		Email:     account.Email,
		RoleName:  account.RoleName,
		FirstName: account.FirstName,
		LastName:  account.LastName,
	}, nil
}
