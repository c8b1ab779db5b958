// Package auth provides bearer token authentication middleware.
// Protected endpoints share a single fixed token loaded from configuration
// at process start.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"profeed/internal/handler/http/respond"
)

// RequireToken wraps next with bearer token authentication.
//
// A missing or malformed Authorization header yields 401 UNAUTHORIZED.
// A well-formed header carrying the wrong token yields 403 FORBIDDEN.
// The comparison is constant-time.
func RequireToken(token string, next http.Handler) http.Handler {
	expected := []byte(token)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const prefix = "Bearer "
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, prefix) {
			respond.Error(w, http.StatusUnauthorized, respond.CodeUnauthorized,
				"missing or malformed Authorization header")
			return
		}

		presented := []byte(strings.TrimPrefix(authz, prefix))
		if subtle.ConstantTimeCompare(presented, expected) != 1 {
			respond.Error(w, http.StatusForbidden, respond.CodeForbidden,
				"invalid token")
			return
		}

		next.ServeHTTP(w, r)
	})
}
