package wire

import (
	"movie-mates/internal/adaptor"
	"movie-mates/pkg/middleware"
	"movie-mates/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAuth configures signup, login and password reset routes
func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/users/signup", authHandler.Signup)
	r.Post("/users/login", authHandler.Login)
	r.Put("/users/reset", authHandler.ResetPassword)

	// ==================== PROTECTED ROUTES ====================
	// Role tag of the logged-in account
	r.With(middleware.AuthJWT(config.JWT, log)).Get("/userType", authHandler.GetUserType)
}
