package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/havenstay/backend/internal/utils"
)

type contextKey string

const (
	ContextKeyUserID   = contextKey("userID")
	ContextKeyUserRole = contextKey("userRole")
)

// AuthMiddleware guards protected endpoints. The JWT is read from
// Authorization: Bearer ...; a missing or invalid token returns 401.
func AuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractBearerToken(r)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, err.Error(), nil,
				)
				return
			}

			claims, vErr := ValidateToken(tokenStr, secret)
			if vErr != nil {
				if errors.Is(vErr, jwt.ErrTokenExpired) {
					utils.RespondErrorWithCode(
						w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token expired", nil, vErr,
					)
					return
				}
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, vErr,
				)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, claims.UserID)
			ctx = context.WithValue(ctx, ContextKeyUserRole, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errors.New("missing Authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("malformed Authorization header")
	}
	return parts[1], nil
}
