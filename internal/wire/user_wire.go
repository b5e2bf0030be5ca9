package wire

import (
	"movie-mates/internal/adaptor"
	"movie-mates/pkg/middleware"
	"movie-mates/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures account management routes
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	// The authenticated account; registered before /users/{email} so
	// "me" is not swallowed by the wildcard
	r.With(middleware.AuthJWT(config.JWT, log)).Get("/users/me", userHandler.GetMe)
	r.With(middleware.AuthJWT(config.JWT, log)).Post("/users/me/update", userHandler.UpdateProfile)

	// ==================== ACCOUNT CRUD ====================
	r.Get("/users", userHandler.GetAllUsers)
	r.Post("/users", userHandler.CreateUser)
	r.Get("/users/{email}", userHandler.GetUserByEmail)
	r.Patch("/users/{email}", userHandler.PatchUser)
	r.Delete("/users/{email}", userHandler.DeleteUser)
}
