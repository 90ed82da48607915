package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dcastillo/connector/internal/auth"
	"github.com/dcastillo/connector/internal/models"
	pkghttp "github.com/dcastillo/connector/pkg/http"
)

// UserService defines the interface for profile business logic
type UserService interface {
	GetUser(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, username string, update *models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, username string) error
}

// UserHandler handles profile HTTP requests. All operations act on the
// authenticated user resolved from the bearer token.
type UserHandler struct {
	service UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// UpdateUserRequest represents the request body for a partial profile update
type UpdateUserRequest struct {
	Email          *string `json:"email" validate:"omitempty,email"`
	FirstName      *string `json:"first_name" validate:"omitempty,max=20"`
	LastName       *string `json:"last_name" validate:"omitempty,max=50"`
	SecondLastName *string `json:"second_last_name" validate:"omitempty,max=50"`
}

// UserResponse represents a user profile in the HTTP response. The password
// hash and permission flags never appear here.
type UserResponse struct {
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	SecondLastName *string `json:"second_last_name,omitempty"`
	EmailVerified  bool    `json:"email_verified"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// MessageResponse is a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// userModelToResponse converts a user model to a response DTO
func userModelToResponse(user *models.User) *UserResponse {
	return &UserResponse{
		Username:       user.Username,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		SecondLastName: user.SecondLastName,
		EmailVerified:  user.EmailVerified,
		CreatedAt:      user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      user.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// GetUser handles GET /user/
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	username := auth.UsernameFromContext(r.Context())

	user, err := h.service.GetUser(r.Context(), username)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, userModelToResponse(user))
}

// UpdateUser handles PUT /user/
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	username := auth.UsernameFromContext(r.Context())

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	update := &models.UserUpdate{
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		SecondLastName: req.SecondLastName,
	}

	if _, err := h.service.UpdateUser(r.Context(), username, update); err != nil {
		writeServiceError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusCreated, MessageResponse{
		Message: "User information updated successfully",
	})
}

// DeleteUser handles DELETE /user/
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	username := auth.UsernameFromContext(r.Context())

	if err := h.service.DeleteUser(r.Context(), username); err != nil {
		writeServiceError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("User %s was successfully deleted", username),
	})
}
