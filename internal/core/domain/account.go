package domain

import (
	"strings"
	"time"
)

// Canonical role names. The set is closed: roles are seeded once at
// migration time and never created or removed at runtime.
const (
	RoleAdmin  = "Admin"
	RoleClient = "Client"
	RoleAgent  = "Agent"
)

// Role is one of the three fixed authorization tiers.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Account models a registered user.
type Account struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	RoleID       int64     `json:"-"`
	RoleName     string    `json:"role_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// Emails are stored and compared only in this form, so registrations that
// differ by case or padding collide.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CanonicalRole trims the input and matches it case-insensitively against
// the closed role set, returning the canonical spelling. ok is false when
// the name is not one of the three roles.
func CanonicalRole(name string) (string, bool) {
	switch trimmed := strings.TrimSpace(name); {
	case strings.EqualFold(trimmed, RoleAdmin):
		return RoleAdmin, true
	case strings.EqualFold(trimmed, RoleClient):
		return RoleClient, true
	case strings.EqualFold(trimmed, RoleAgent):
		return RoleAgent, true
	default:
		return "", false
	}
}
