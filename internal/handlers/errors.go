package handlers

import (
	"errors"
	"net/http"

	"github.com/dcastillo/connector/internal/models"
	pkghttp "github.com/dcastillo/connector/pkg/http"
)

// writeServiceError maps service-layer sentinel errors onto the HTTP error
// envelope. Every taxonomy member is a 4xx except the storage/transport
// catch-all, which is the only 5xx callers should ever see.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		pkghttp.WriteNotFound(w, "resource not found")
	case errors.Is(err, models.ErrValidation):
		pkghttp.WriteError(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, models.ErrMissingCredentials):
		pkghttp.WriteError(w, http.StatusBadRequest, "missing_credentials", "must include username or email and password")
	case errors.Is(err, models.ErrInvalidCredentials):
		pkghttp.WriteError(w, http.StatusBadRequest, "invalid_credentials", "invalid credentials")
	case errors.Is(err, models.ErrEmailNotVerified):
		pkghttp.WriteError(w, http.StatusForbidden, "email_not_verified", "email address not verified")
	case errors.Is(err, models.ErrMissingEmail):
		pkghttp.WriteError(w, http.StatusBadRequest, "missing_email", "email not provided")
	case errors.Is(err, models.ErrOTPMissing):
		pkghttp.WriteError(w, http.StatusBadRequest, "otp_missing", "OTP not provided")
	case errors.Is(err, models.ErrOTPMismatch):
		pkghttp.WriteError(w, http.StatusBadRequest, "otp_mismatch", "invalid OTP")
	case errors.Is(err, models.ErrNoChallengePending):
		pkghttp.WriteError(w, http.StatusBadRequest, "no_challenge_pending", "no OTP was sent for this session")
	case errors.Is(err, models.ErrUnauthorized):
		pkghttp.WriteUnauthorized(w, "unauthorized")
	default:
		pkghttp.WriteInternalError(w, "internal server error")
	}
}
