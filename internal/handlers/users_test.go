package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastillo/connector/internal/auth"
	"github.com/dcastillo/connector/internal/models"
)

// authedRequest builds a request carrying an authenticated username, the way
// the bearer middleware would have left it.
func authedRequest(t *testing.T, method, username, body string) *http.Request {
	t.Helper()

	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBufferString("{}")
	} else {
		reader = bytes.NewBufferString(body)
	}

	req := httptest.NewRequest(method, "/user/", reader)
	req.Header.Set("Content-Type", "application/json")
	ctx := context.WithValue(req.Context(), auth.UsernameContextKey, username)
	return req.WithContext(ctx)
}

func TestUserHandler_GetUser_Success(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	second := "Smith"
	service := &MockUserService{
		GetUserFunc: func(ctx context.Context, username string) (*models.User, error) {
			assert.Equal(t, "johndoe", username)
			return &models.User{
				Username:       "johndoe",
				Email:          "john@example.com",
				PasswordHash:   "$2a$12$notexposed",
				FirstName:      "John",
				LastName:       "Doe",
				SecondLastName: &second,
				EmailVerified:  true,
				CreatedAt:      now,
				UpdatedAt:      now,
			}, nil
		},
	}
	handler := NewUserHandler(service)

	rec := httptest.NewRecorder()
	handler.GetUser(rec, authedRequest(t, http.MethodGet, "johndoe", ""))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "johndoe", resp.Username)
	assert.Equal(t, "john@example.com", resp.Email)
	require.NotNil(t, resp.SecondLastName)
	assert.Equal(t, "Smith", *resp.SecondLastName)
	assert.True(t, resp.EmailVerified)
	assert.NotContains(t, rec.Body.String(), "notexposed")
	assert.NotContains(t, rec.Body.String(), "is_admin")
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	service := &MockUserService{
		GetUserFunc: func(ctx context.Context, username string) (*models.User, error) {
			return nil, models.ErrNotFound
		},
	}
	handler := NewUserHandler(service)

	rec := httptest.NewRecorder()
	handler.GetUser(rec, authedRequest(t, http.MethodGet, "ghost", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec)["error"])
}

func TestUserHandler_UpdateUser_Success(t *testing.T) {
	var captured *models.UserUpdate
	service := &MockUserService{
		UpdateUserFunc: func(ctx context.Context, username string, update *models.UserUpdate) (*models.User, error) {
			captured = update
			return &models.User{Username: username}, nil
		},
	}
	handler := NewUserHandler(service)

	rec := httptest.NewRecorder()
	handler.UpdateUser(rec, authedRequest(t, http.MethodPut, "johndoe", `{"first_name": "Johnny"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User information updated successfully", resp.Message)

	require.NotNil(t, captured)
	require.NotNil(t, captured.FirstName)
	assert.Equal(t, "Johnny", *captured.FirstName)
	assert.Nil(t, captured.Email)
	assert.Nil(t, captured.LastName)
}

func TestUserHandler_UpdateUser_InvalidEmail(t *testing.T) {
	handler := NewUserHandler(&MockUserService{
		UpdateUserFunc: func(ctx context.Context, username string, update *models.UserUpdate) (*models.User, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	})

	rec := httptest.NewRecorder()
	handler.UpdateUser(rec, authedRequest(t, http.MethodPut, "johndoe", `{"email": "not-an-email"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_UpdateUser_FirstNameTooLong(t *testing.T) {
	handler := NewUserHandler(&MockUserService{})

	rec := httptest.NewRecorder()
	handler.UpdateUser(rec, authedRequest(t, http.MethodPut, "johndoe",
		`{"first_name": "abcdefghijklmnopqrstu"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_UpdateUser_DuplicateEmail(t *testing.T) {
	service := &MockUserService{
		UpdateUserFunc: func(ctx context.Context, username string, update *models.UserUpdate) (*models.User, error) {
			return nil, models.ErrValidation
		},
	}
	handler := NewUserHandler(service)

	rec := httptest.NewRecorder()
	handler.UpdateUser(rec, authedRequest(t, http.MethodPut, "johndoe", `{"email": "taken@example.com"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", decodeError(t, rec)["error"])
}

func TestUserHandler_DeleteUser_Success(t *testing.T) {
	service := &MockUserService{
		DeleteUserFunc: func(ctx context.Context, username string) error {
			assert.Equal(t, "johndoe", username)
			return nil
		},
	}
	handler := NewUserHandler(service)

	rec := httptest.NewRecorder()
	handler.DeleteUser(rec, authedRequest(t, http.MethodDelete, "johndoe", ""))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User johndoe was successfully deleted", resp.Message)
}

func TestUserHandler_DeleteUser_NotFound(t *testing.T) {
	service := &MockUserService{
		DeleteUserFunc: func(ctx context.Context, username string) error {
			return models.ErrNotFound
		},
	}
	handler := NewUserHandler(service)

	rec := httptest.NewRecorder()
	handler.DeleteUser(rec, authedRequest(t, http.MethodDelete, "ghost", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
