package response

import (
	"time"

	"movie-mates/internal/data/entity"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	Movie         string    `json:"movie"`
	Time          string    `json:"time"`
	Date          string    `json:"date"`
	Theatre       string    `json:"theatre"`
	Seats         []string  `json:"seats"`
	FoodItems     []string  `json:"foodItems,omitempty"`
	TotalCost     float64   `json:"totalCost"`
	TransactionID string    `json:"transactionID,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CreateBookingResponse struct {
	InsertedID    string `json:"insertedId"`
	TransactionID string `json:"transactionID,omitempty"`
}

func BookingToResponse(b *entity.BookingRecord) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID.String(),
		Movie:         b.Movie,
		Time:          b.ShowTime,
		Date:          b.ShowDate,
		Theatre:       b.Theatre,
		Seats:         b.Seats,
		FoodItems:     b.FoodItems,
		TotalCost:     b.TotalCost,
		TransactionID: b.TransactionID,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func BookingsToResponse(bookings []*entity.BookingRecord) []*BookingResponse {
	out := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = BookingToResponse(b)
	}
	return out
}
