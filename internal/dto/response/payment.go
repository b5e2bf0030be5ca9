package response

import (
	"time"

	"movie-mates/internal/data/entity"
)

type PaymentMethodResponse struct {
	ID         string `json:"id"`
	CardType   string `json:"cardType"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	Zip        string `json:"zip"`
}

type PaymentResponse struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transactionID"`
	Email         string    `json:"email"`
	Amount        float64   `json:"amount"`
	CardType      string    `json:"cardType,omitempty"`
	CardNumber    string    `json:"cardNumber,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type PaymentWithBookingResponse struct {
	PaymentResponse
	Booking *BookingResponse `json:"bookingInfo,omitempty"`
}

// PaymentMethodToResponse omits the CVV; it is accepted on write but
// never echoed back.
func PaymentMethodToResponse(pm *entity.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:         pm.ID.String(),
		CardType:   pm.CardType,
		FirstName:  pm.FirstName,
		LastName:   pm.LastName,
		CardNumber: pm.CardNumber,
		Expiry:     pm.Expiry,
		Zip:        pm.Zip,
	}
}

func PaymentToResponse(p *entity.PaymentTransaction) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID.String(),
		TransactionID: p.TransactionID,
		Email:         p.Email,
		Amount:        p.Amount,
		CardType:      p.CardType,
		CardNumber:    p.CardNumber,
		CreatedAt:     p.CreatedAt,
	}
}

func PaymentWithBookingToResponse(p *entity.PaymentWithBooking) *PaymentWithBookingResponse {
	resp := &PaymentWithBookingResponse{
		PaymentResponse: PaymentToResponse(&p.PaymentTransaction),
	}
	if p.Booking != nil {
		resp.Booking = BookingToResponse(p.Booking)
	}
	return resp
}
