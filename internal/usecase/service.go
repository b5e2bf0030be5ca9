package usecase

import (
	"movie-mates/internal/data/repository"
	"movie-mates/pkg/mailer"
	"movie-mates/pkg/utils"

	"go.uber.org/zap"
)

// Service bundles every use case behind one injection point
type Service struct {
	Auth    AuthService
	User    UserService
	Booking BookingService
	Payment PaymentService
	Promo   PromoService
	Catalog CatalogService
}

func NewService(repo *repository.Repository, mail mailer.Mailer, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo, log),
		Booking: NewBookingService(repo, mail, log),
		Payment: NewPaymentService(repo, log),
		Promo:   NewPromoService(repo, mail, log),
		Catalog: NewCatalogService(repo, log),
	}
}
