package auth

import "errors"

var (
	// ErrInvalidCredentials covers unknown api_id and wrong key alike, so
	// responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRefreshToken covers malformed, expired, wrong-signature and
	// wrong-type (no jti) tokens presented to the refresh exchange.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrTokenRevoked means the refresh token's jti is blacklisted.
	ErrTokenRevoked = errors.New("refresh token revoked")
)
