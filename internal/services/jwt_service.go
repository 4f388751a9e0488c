package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/havenstay/backend/internal/config"
	"github.com/havenstay/backend/internal/middleware"
	"github.com/havenstay/backend/internal/models"
)

// ---------------------------------------------------------------------
// JWTService interface
// ---------------------------------------------------------------------

type JWTService interface {
	GenerateToken(user *models.User) (string, error)
}

type jwtService struct {
	secret []byte
	expiry time.Duration
}

func NewJWTService(cfg *config.Config) JWTService {
	return &jwtService{secret: cfg.JWTSecret, expiry: cfg.TokenExpiry}
}

// GenerateToken issues the session credential: an HS256 token carrying the
// identity's id, email, name and role.
func (j *jwtService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"name":  user.Name,
		"role":  string(user.Role),
		"iss":   middleware.TokenIssuer,
		"iat":   now.Unix(),
		"exp":   now.Add(j.expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}
