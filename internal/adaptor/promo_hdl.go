package adaptor

import (
	"net/http"

	"movie-mates/internal/dto/request"
	"movie-mates/internal/usecase"
	"movie-mates/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PromoHandler struct {
	service usecase.PromoService
	log     *zap.Logger
}

func NewPromoHandler(service usecase.PromoService, log *zap.Logger) *PromoHandler {
	return &PromoHandler{
		service: service,
		log:     log,
	}
}

// Broadcast handles POST /promotionalOffers: creates the offer, appends
// it to every user and mails the registered addresses
func (h *PromoHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOfferRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	resp, err := h.service.Broadcast(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "broadcast offer")
		return
	}

	utils.ResponseCreated(w, "Promotional offer broadcast successfully", resp)
}

// SendNotification handles POST /notifications/send
func (h *PromoHandler) SendNotification(w http.ResponseWriter, r *http.Request) {
	var req request.SendNotificationRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	resp, err := h.service.SendNotification(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "send notification")
		return
	}

	utils.ResponseSuccess(w, "Notifications sent successfully", resp)
}

// CreatePromo handles POST /offerPromo
func (h *PromoHandler) CreatePromo(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOfferRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	promo, err := h.service.CreatePromo(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create promo")
		return
	}

	utils.ResponseCreated(w, "Promo created successfully", promo)
}

// GetAllPromos handles GET /allPromos
func (h *PromoHandler) GetAllPromos(w http.ResponseWriter, r *http.Request) {
	promos, err := h.service.ListPromos(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get all promos")
		return
	}

	utils.ResponseSuccess(w, "Promos retrieved successfully", promos)
}

// FindPromo handles GET /findPromo?code=..
func (h *PromoHandler) FindPromo(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")

	promo, err := h.service.FindPromoByCode(r.Context(), code)
	if err != nil {
		handleServiceError(w, h.log, err, "find promo")
		return
	}

	utils.ResponseSuccess(w, "Promo retrieved successfully", promo)
}

// RemovePromo handles DELETE /removePromo/{id}
func (h *PromoHandler) RemovePromo(w http.ResponseWriter, r *http.Request) {
	promoID := chi.URLParam(r, "id")
	if promoID == "" {
		utils.ResponseBadRequest(w, "Promo ID is required", nil)
		return
	}

	if err := h.service.RemovePromo(r.Context(), promoID); err != nil {
		handleServiceError(w, h.log, err, "remove promo")
		return
	}

	utils.ResponseSuccess(w, "Promo deleted successfully", nil)
}
