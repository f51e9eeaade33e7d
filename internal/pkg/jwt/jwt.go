package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ScopePublic is the only scope issued today. Consumers check it explicitly;
// the codec itself only guarantees authenticity and freshness.
const ScopePublic = "public"

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

type Scopes struct {
	Access string `json:"access"`
}

type Claims struct {
	Scopes Scopes `json:"scopes"`
	jwtlib.RegisteredClaims
}

// IsRefresh reports whether the claims belong to a refresh token. Refresh
// tokens are the only ones issued with a jti, which is what makes them
// revocable through the blacklist.
func (c *Claims) IsRefresh() bool { return c.ID != "" }

type Service struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func New(secret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueRefresh signs a long-lived token for the given subject with a freshly
// generated jti and the public scope.
func (s *Service) IssueRefresh(subject string) (string, error) {
	now := time.Now()
	claims := Claims{
		Scopes: Scopes{Access: ScopePublic},
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.refreshTTL)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// IssueAccess signs a short-lived token for the given subject. Access tokens
// carry no jti and cannot be revoked; they simply age out.
func (s *Service) IssueAccess(subject string) (string, error) {
	now := time.Now()
	claims := Claims{
		Scopes: Scopes{Access: ScopePublic},
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.accessTTL)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifies signature and expiry. Expired tokens come back as
// ErrTokenExpired, everything else (bad signature, malformed input, wrong
// algorithm) as ErrTokenInvalid.
func (s *Service) Validate(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	if claims.ExpiresAt == nil {
		// Expiry is mandatory on every token this service has ever issued.
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
