package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"github.com/dcastillo/connector/internal/models"
	"github.com/dcastillo/connector/internal/otp"
	"github.com/dcastillo/connector/internal/verification"
	pkglogger "github.com/dcastillo/connector/pkg/logger"
	"github.com/google/uuid"
)

// VerificationService drives the email OTP flow: send stores an ephemeral
// challenge and emails the code; verify consumes the challenge and flips the
// user's verified flag on a match.
type VerificationService struct {
	repo        UserRepository
	store       verification.ChallengeStore
	sender      EmailSender
	logger      *slog.Logger
	auditLogger *pkglogger.AuditLogger
	otpLength   int
	challengeTTL time.Duration
}

// NewVerificationService creates a new VerificationService
func NewVerificationService(
	repo UserRepository,
	store verification.ChallengeStore,
	sender EmailSender,
	logger *slog.Logger,
	auditLogger *pkglogger.AuditLogger,
	otpLength int,
	challengeTTL time.Duration,
) *VerificationService {
	return &VerificationService{
		repo:         repo,
		store:        store,
		sender:       sender,
		logger:       logger,
		auditLogger:  auditLogger,
		otpLength:    otpLength,
		challengeTTL: challengeTTL,
	}
}

// SendOTP generates a code for the user, stores it as a pending challenge
// and emails it. Returns the destination address. A send replaces any
// previously pending challenge for the user.
func (s *VerificationService) SendOTP(ctx context.Context, username string) (string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", err
		}
		s.logger.Error("failed to get user for otp send", slog.String("username", username), slog.Any("error", err))
		return "", models.ErrOperation
	}

	if user.Email == "" {
		s.logger.Info("otp send rejected: no email on account", slog.String("username", username))
		return "", models.ErrMissingEmail
	}

	code, err := otp.Generate(s.otpLength)
	if err != nil {
		s.logger.Error("failed to generate otp", slog.Any("error", err))
		return "", models.ErrOperation
	}

	challenge := &models.OTPChallenge{
		ID:        uuid.New().String(),
		Code:      code,
		Email:     user.Email,
		CreatedAt: time.Now(),
	}

	if err := s.store.Put(ctx, username, challenge, s.challengeTTL); err != nil {
		s.logger.Error("failed to store otp challenge", slog.String("username", username), slog.Any("error", err))
		return "", models.ErrOperation
	}

	if err := s.sender.SendOTP(ctx, user.Email, code); err != nil {
		// Do not leave a challenge the user never received
		_ = s.store.Delete(ctx, username)
		s.logger.Error("failed to send otp email",
			slog.String("username", username),
			slog.String("email", pkglogger.SanitizedEmail(user.Email)),
			slog.Any("error", err))
		return "", models.ErrOperation
	}

	s.logger.Info("otp challenge created",
		slog.String("username", username),
		slog.String("challenge_id", challenge.ID),
		slog.String("email", pkglogger.SanitizedEmail(user.Email)))
	s.auditLogger.Log(pkglogger.AuditEvent{
		EventType: "otp_sent",
		Username:  username,
		Success:   true,
	})

	return user.Email, nil
}

// VerifyOTP compares the submitted code against the pending challenge. The
// challenge is consumed by the attempt whatever the outcome: a mismatch
// requires a fresh send.
func (s *VerificationService) VerifyOTP(ctx context.Context, username, submitted string) error {
	if submitted == "" {
		return models.ErrOTPMissing
	}

	challenge, err := s.store.Consume(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNoChallengePending) {
			s.logger.Info("otp verify without pending challenge", slog.String("username", username))
			return err
		}
		s.logger.Error("failed to read otp challenge", slog.String("username", username), slog.Any("error", err))
		return models.ErrOperation
	}

	if subtle.ConstantTimeCompare([]byte(submitted), []byte(challenge.Code)) != 1 {
		s.auditLogger.Log(pkglogger.AuditEvent{
			EventType:     "otp_verify_failed",
			Username:      username,
			FailureReason: "otp_mismatch",
			Success:       false,
		})
		return models.ErrOTPMismatch
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return err
		}
		s.logger.Error("failed to get user for otp verify", slog.String("username", username), slog.Any("error", err))
		return models.ErrOperation
	}

	user.EmailVerified = true
	if _, err := s.repo.Update(ctx, username, user); err != nil {
		s.logger.Error("failed to persist verified flag", slog.String("username", username), slog.Any("error", err))
		return models.ErrOperation
	}

	s.logger.Info("email verified", slog.String("username", username))
	s.auditLogger.Log(pkglogger.AuditEvent{
		EventType: "otp_verified",
		Username:  username,
		Success:   true,
	})

	return nil
}
