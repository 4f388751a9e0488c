package controllers

import (
	"net/http"

	"github.com/havenstay/backend/internal/dtos"
	"github.com/havenstay/backend/internal/models"
	"github.com/havenstay/backend/internal/services"
	"github.com/havenstay/backend/internal/utils"
)

type AuthController struct {
	svc services.AuthService
}

func NewAuthController(svc services.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

// -----------------------------------------------------------------------------
// POST /auth/login
// -----------------------------------------------------------------------------
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, token, err := c.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.AuthResponse{Token: token, User: *user})
}

// -----------------------------------------------------------------------------
// POST /auth/register
// -----------------------------------------------------------------------------
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, token, err := c.svc.Register(r.Context(), req.Name, req.Email, req.Password, models.RoleType(req.Role))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.AuthResponse{Token: token, User: *user})
}

// -----------------------------------------------------------------------------
// POST /auth/logout
// -----------------------------------------------------------------------------
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.svc.Logout(r.Context()); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Logged out successfully"})
}
