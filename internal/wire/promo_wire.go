package wire

import (
	"movie-mates/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wirePromo configures promotional offer and notification routes
func wirePromo(r chi.Router, promoHandler *adaptor.PromoHandler) {
	r.Get("/allPromos", promoHandler.GetAllPromos)
	r.Post("/offerPromo", promoHandler.CreatePromo)
	r.Get("/findPromo", promoHandler.FindPromo)
	r.Delete("/removePromo/{id}", promoHandler.RemovePromo)

	// broadcast: offer record + per-user append + email fan-out
	r.Post("/promotionalOffers", promoHandler.Broadcast)
	r.Post("/notifications/send", promoHandler.SendNotification)
}
