package wire

import (
	"movie-mates/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireBooking configures the booking workflow routes
func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Get("/bookingInfo", bookingHandler.GetAllBookings)
	r.Post("/bookingInfo", bookingHandler.CreateBooking)
	r.Put("/bookingInfo/{id}", bookingHandler.UpdateBooking)
	r.Delete("/bookingInfo/{id}", bookingHandler.DeleteBooking)

	// show lookup by title, time, date and theatre query params
	r.Get("/specificBookingInfo", bookingHandler.FindBookings)

	// confirmation email with the embedded QR code
	r.Post("/send-email", bookingHandler.SendConfirmation)
}
