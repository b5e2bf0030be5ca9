package wire

import (
	"movie-mates/internal/adaptor"
	"movie-mates/pkg/middleware"
	"movie-mates/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wirePayment configures saved payment methods and payment transactions
func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	// Saved card records of the logged-in account
	r.With(middleware.AuthJWT(config.JWT, log)).Route("/payment", func(r chi.Router) {
		r.Get("/", paymentHandler.GetMethods)
		r.Post("/", paymentHandler.AddMethod)
		r.Delete("/", paymentHandler.RemoveMethod)
	})

	// ==================== TRANSACTION ROUTES ====================
	r.Get("/paymentInfo", paymentHandler.GetAllPayments)
	r.Post("/paymentInfo", paymentHandler.CreatePayment)
	r.Get("/paymentInfoByEmail/{email}", paymentHandler.GetPaymentsByEmail)
	r.Get("/paymentInfoByID/{ID}", paymentHandler.GetPaymentsByID)
}
