package routes

import (
	"github.com/dcastillo/connector/internal/auth"
	"github.com/dcastillo/connector/internal/handlers"
	"github.com/dcastillo/connector/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(
	router chi.Router,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	verificationHandler *handlers.VerificationHandler,
	tokenManager *auth.TokenManager,
) {
	rateLimitConfig := middleware.DefaultAuthRateLimit()

	// Public routes - no authentication required
	router.With(middleware.RateLimitByIP(rateLimitConfig)).Post("/login/", authHandler.Login)
	router.With(middleware.RateLimitByIP(rateLimitConfig)).Post("/registration/", authHandler.Register)

	// Protected routes - bearer token required
	router.Group(func(r chi.Router) {
		r.Use(auth.Middleware(tokenManager))

		r.With(middleware.RateLimitByIP(rateLimitConfig)).Post("/send-otp/", verificationHandler.SendOTP)
		r.Post("/verify-otp/", verificationHandler.VerifyOTP)

		r.Get("/user/", userHandler.GetUser)
		r.Put("/user/", userHandler.UpdateUser)
		r.Delete("/user/", userHandler.DeleteUser)
	})
}
