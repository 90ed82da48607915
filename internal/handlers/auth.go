package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dcastillo/connector/internal/models"
	pkghttp "github.com/dcastillo/connector/pkg/http"
)

// AuthService defines the interface for login and registration logic
type AuthService interface {
	Login(ctx context.Context, username, email, password string) (string, error)
	Register(ctx context.Context, user *models.User, password string) (*models.User, error)
}

// AuthHandler handles login and registration HTTP requests
type AuthHandler struct {
	service AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

// Request/Response DTOs

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username" validate:"omitempty,max=50"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the bearer token issued on successful login
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	Username       string  `json:"username" validate:"required,max=50,username"`
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required"`
	FirstName      string  `json:"first_name" validate:"required,max=20"`
	LastName       string  `json:"last_name" validate:"required,max=50"`
	SecondLastName *string `json:"second_last_name" validate:"omitempty,max=50"`
}

// Login handles POST /login/
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "invalid request body")
		return
	}

	if req.Username == "" && req.Email == "" {
		writeServiceError(w, models.ErrMissingCredentials)
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, LoginResponse{Token: token})
}

// Register handles POST /registration/
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	user := &models.User{
		Username:       req.Username,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		SecondLastName: req.SecondLastName,
	}

	createdUser, err := h.service.Register(r.Context(), user, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusCreated, userModelToResponse(createdUser))
}
