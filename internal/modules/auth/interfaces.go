package auth

import (
	"context"
	"time"

	"publicapi/internal/domain"
)

// UserReader — only the lookup the auth service needs.
type UserReader interface {
	GetByAPIID(ctx context.Context, apiID string) (*domain.ApiUser, error)
}

// BlacklistStore — revocation record for refresh-token jtis. An error from
// IsRevoked must be treated as "deny", never as "not revoked".
type BlacklistStore interface {
	Revoke(ctx context.Context, jti string, expires time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
