package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dcastillo/connector/internal/auth"
	pkghttp "github.com/dcastillo/connector/pkg/http"
)

// VerificationService defines the interface for the email OTP flow
type VerificationService interface {
	SendOTP(ctx context.Context, username string) (string, error)
	VerifyOTP(ctx context.Context, username, submitted string) error
}

// VerificationHandler handles the send/verify OTP HTTP requests
type VerificationHandler struct {
	service VerificationService
}

// NewVerificationHandler creates a new VerificationHandler
func NewVerificationHandler(service VerificationService) *VerificationHandler {
	return &VerificationHandler{
		service: service,
	}
}

// VerifyOTPRequest represents the request body for OTP verification
type VerifyOTPRequest struct {
	OTP string `json:"otp"`
}

// SendOTP handles POST /send-otp/
func (h *VerificationHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	username := auth.UsernameFromContext(r.Context())

	email, err := h.service.SendOTP(r.Context(), username)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("OTP sent to your email %s successfully", email),
	})
}

// VerifyOTP handles POST /verify-otp/
func (h *VerificationHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	username := auth.UsernameFromContext(r.Context())

	var req VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		pkghttp.WriteBadRequest(w, "invalid request body")
		return
	}

	if err := h.service.VerifyOTP(r.Context(), username, req.OTP); err != nil {
		writeServiceError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, MessageResponse{
		Message: "Email verification successful",
	})
}
