package adaptor

import (
	"net/http"

	"movie-mates/internal/dto/request"
	"movie-mates/internal/usecase"
	"movie-mates/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// CreateBooking handles POST /bookingInfo
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	resp, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseSuccess(w, "Booking created successfully", resp)
}

// GetAllBookings handles GET /bookingInfo
func (h *BookingHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListBookings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get all bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved successfully", bookings)
}

// FindBookings handles GET /specificBookingInfo?title=..&time=..&date=..&theatre=..
func (h *BookingHandler) FindBookings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := &request.BookingQuery{
		Title:   q.Get("title"),
		Time:    q.Get("time"),
		Date:    q.Get("date"),
		Theatre: q.Get("theatre"),
	}

	bookings, err := h.service.FindBookings(r.Context(), query)
	if err != nil {
		handleServiceError(w, h.log, err, "find bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved successfully", bookings)
}

// UpdateBooking handles PUT /bookingInfo/{id}
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.UpdateBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	if err := h.service.UpdateBooking(r.Context(), bookingID, &req); err != nil {
		handleServiceError(w, h.log, err, "update booking")
		return
	}

	utils.ResponseSuccess(w, "Booking updated successfully", nil)
}

// DeleteBooking handles DELETE /bookingInfo/{id}
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := h.service.DeleteBooking(r.Context(), bookingID); err != nil {
		handleServiceError(w, h.log, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, "Booking deleted successfully", nil)
}

// SendConfirmation handles POST /send-email
func (h *BookingHandler) SendConfirmation(w http.ResponseWriter, r *http.Request) {
	var req request.SendConfirmationRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	if err := h.service.SendConfirmation(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "send booking confirmation")
		return
	}

	utils.ResponseSuccess(w, "Confirmation email sent successfully", nil)
}
