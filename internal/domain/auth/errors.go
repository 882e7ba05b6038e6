package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrOAuthDisabled       = errors.New("google sign-in is not configured")
	ErrInvalidOAuthState   = errors.New("invalid oauth state")
)
