package repository

import (
	"movie-mates/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User          UserRepository
	PaymentMethod PaymentMethodRepository
	Booking       BookingRepository
	Payment       PaymentRepository
	Promo         PromoRepository
	Catalog       CatalogRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:          NewUserRepository(db, log),
		PaymentMethod: NewPaymentMethodRepository(db, log),
		Booking:       NewBookingRepository(db, log),
		Payment:       NewPaymentRepository(db, log),
		Promo:         NewPromoRepository(db, log),
		Catalog:       NewCatalogRepository(db, log),
	}
}
