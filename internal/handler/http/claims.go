package http

import (
	"net/http"

	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
)

// userIDFromRequest extracts the authenticated user's id from the verified
// token claims. Routes using it sit behind the Verifier and AuthRequired
// middleware, so a missing claim means a malformed token, not a bug here.
func userIDFromRequest(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}
