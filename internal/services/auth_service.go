package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/havenstay/backend/internal/config"
	"github.com/havenstay/backend/internal/middleware"
	"github.com/havenstay/backend/internal/models"
	"github.com/havenstay/backend/internal/session"
	"github.com/havenstay/backend/internal/store"
	"github.com/havenstay/backend/internal/utils"
)

// ---------------------------------------------------------------------
// AuthService interface
// ---------------------------------------------------------------------

type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Register(ctx context.Context, name, email, password string, role models.RoleType) (*models.User, string, error)
	Logout(ctx context.Context) error
	Restore() *models.User
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type authService struct {
	st   store.Store
	sess *session.Manager
	cfg  *config.Config
	jwt  JWTService
}

func NewAuthService(st store.Store, sess *session.Manager, cfg *config.Config) AuthService {
	return &authService{
		st:   st,
		sess: sess,
		cfg:  cfg,
		jwt:  NewJWTService(cfg),
	}
}

// Login matches the email against the persisted identities and checks the
// password against the stored bcrypt hash. Success persists the credential
// token and identity record and activates the session.
func (s *authService) Login(_ context.Context, email, password string) (*models.User, string, error) {
	simulate(s.cfg.AuthDelay)

	users, _ := store.LoadSlice[models.User](s.st, store.KeyUsers)
	var found *models.User
	for i := range users {
		if users[i].Email == email {
			found = &users[i]
			break
		}
	}
	if found == nil || !utils.CheckPasswordHash(password, found.PasswordHash) {
		utils.Logger.Warnf("Login failed for %s", email)
		return nil, "", fmt.Errorf("login: %w", utils.ErrInvalidCredentials)
	}

	token, err := s.jwt.GenerateToken(found)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	public := found.Public()
	if err := s.persistSession(token, public); err != nil {
		return nil, "", err
	}
	s.sess.Set(&public)

	utils.Logger.Infof("Login successful: welcome back, %s", public.Name)
	return &public, token, nil
}

// Register always succeeds for a well-formed owner or renter request; there
// is no uniqueness check against existing emails. Owners start unapproved
// and wait for an admin before they may list properties.
func (s *authService) Register(_ context.Context, name, email, password string, role models.RoleType) (*models.User, string, error) {
	if role != models.RoleOwner && role != models.RoleRenter {
		return nil, "", fmt.Errorf("register with role %q: %w", role, utils.ErrInvalidRole)
	}

	simulate(s.cfg.AuthDelay)

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		Role:         role,
		IsApproved:   role == models.RoleRenter,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	users, _ := store.LoadSlice[models.User](s.st, store.KeyUsers)
	if err := store.SaveSlice(s.st, store.KeyUsers, append(users, user)); err != nil {
		return nil, "", fmt.Errorf("persist users: %w", err)
	}

	token, err := s.jwt.GenerateToken(&user)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	public := user.Public()
	if err := s.persistSession(token, public); err != nil {
		return nil, "", err
	}
	s.sess.Set(&public)

	utils.Logger.Infof("Registration successful: %s (%s)", public.Email, public.Role)
	return &public, token, nil
}

// Logout clears the persisted credential and identity and the session.
func (s *authService) Logout(_ context.Context) error {
	if err := s.st.Delete(store.KeyToken); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	if err := s.st.Delete(store.KeyUser); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}
	s.sess.Set(nil)
	utils.Logger.Info("Logged out")
	return nil
}

// Restore re-activates a persisted session on startup if the stored
// credential still validates; otherwise both keys are dropped.
func (s *authService) Restore() *models.User {
	var token string
	var user models.User
	if !store.LoadValue(s.st, store.KeyToken, &token) ||
		!store.LoadValue(s.st, store.KeyUser, &user) {
		return nil
	}
	if _, err := middleware.ValidateToken(token, s.cfg.JWTSecret); err != nil {
		utils.Logger.WithError(err).Warn("Dropping stale persisted session")
		_ = s.st.Delete(store.KeyToken)
		_ = s.st.Delete(store.KeyUser)
		return nil
	}
	s.sess.Set(&user)
	return &user
}

func (s *authService) persistSession(token string, user models.User) error {
	if err := store.SaveValue(s.st, store.KeyToken, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err := store.SaveValue(s.st, store.KeyUser, user); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	return nil
}

// simulate mirrors the repository-layer latency model for auth round trips.
func simulate(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
