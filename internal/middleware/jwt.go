package middleware

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/havenstay/backend/internal/models"
)

// TokenIssuer identifies the service that issues all session tokens.
const TokenIssuer = "HavenStay"

// TokenClaims is the identity material carried by a validated token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
	Name   string
	Role   models.RoleType
}

// ValidateToken checks the token's signature and standard claims and
// extracts the identity. Any deviation returns a descriptive error.
func ValidateToken(tokenString string, secret []byte) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, errors.New("missing expiration claim")
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, jwt.ErrTokenExpired
	}

	iss, ok := claims["iss"].(string)
	if !ok {
		return nil, errors.New("missing issuer claim")
	}
	if iss != TokenIssuer {
		return nil, errors.New("invalid token issuer")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("missing subject claim")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("malformed subject claim")
	}

	role, _ := claims["role"].(string)
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)

	return &TokenClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		Role:   models.RoleType(role),
	}, nil
}
