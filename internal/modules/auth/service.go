package auth

import (
	"context"
	"errors"
	"strings"

	jwtsvc "publicapi/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type tokenCodec interface {
	IssueRefresh(subject string) (string, error)
	IssueAccess(subject string) (string, error)
	Validate(token string) (*jwtsvc.Claims, error)
}

// Service orchestrates the two token exchanges: Basic credentials for a
// refresh token, and a refresh token for an access token.
type Service struct {
	users     UserReader
	blacklist BlacklistStore
	tokens    tokenCodec
}

func NewService(users UserReader, blacklist BlacklistStore, tokens tokenCodec) *Service {
	return &Service{
		users:     users,
		blacklist: blacklist,
		tokens:    tokens,
	}
}

// Login verifies the presented key against the stored bcrypt hash and issues
// a refresh token. Every failure mode an attacker could probe (unknown
// api_id, wrong key, disabled account) collapses into ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, apiID, key string) (string, error) {
	user, err := s.users.GetByAPIID(ctx, strings.TrimSpace(apiID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if user.Disabled {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Key), []byte(key)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.IssueRefresh(user.APIID)
}

// Refresh exchanges a refresh token for a short-lived access token. The
// refresh token itself stays valid: no rotation, no blacklisting on use.
func (s *Service) Refresh(ctx context.Context, refreshRaw string) (string, error) {
	claims, err := s.validateRefresh(refreshRaw)
	if err != nil {
		return "", err
	}

	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		// Store unavailable: deny, never fail open.
		return "", err
	}
	if revoked {
		return "", ErrTokenRevoked
	}

	return s.tokens.IssueAccess(claims.Subject)
}

// Revoke blacklists the presented refresh token's jti until the token's own
// expiry, after which the entry is harmless to drop.
func (s *Service) Revoke(ctx context.Context, refreshRaw string) error {
	claims, err := s.validateRefresh(refreshRaw)
	if err != nil {
		return err
	}
	return s.blacklist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

func (s *Service) validateRefresh(refreshRaw string) (*jwtsvc.Claims, error) {
	claims, err := s.tokens.Validate(refreshRaw)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if !claims.IsRefresh() || claims.Scopes.Access != jwtsvc.ScopePublic {
		return nil, ErrInvalidRefreshToken
	}
	return claims, nil
}
