package wire

import (
	"net/http"

	"movie-mates/internal/adaptor"
	"movie-mates/internal/data/repository"
	"movie-mates/internal/usecase"
	"movie-mates/pkg/mailer"
	"movie-mates/pkg/middleware"
	"movie-mates/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, mail mailer.Mailer, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, mail, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Routes
	wireAuth(r, handler.Auth, config, logger)
	wireUser(r, handler.User, config, logger)
	wireCatalog(r, handler.Catalog)
	wireBooking(r, handler.Booking)
	wirePayment(r, handler.Payment, config, logger)
	wirePromo(r, handler.Promo)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
