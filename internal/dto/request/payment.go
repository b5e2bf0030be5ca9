package request

type AddPaymentMethodRequest struct {
	CardType   string `json:"cardType" validate:"required"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName"`
	CardNumber string `json:"cardNumber" validate:"required,min=12,max=19"`
	Expiry     string `json:"expiry" validate:"required"`
	CVV        string `json:"cvv" validate:"required,min=3,max=4"`
	Zip        string `json:"zip"`
}

// RemovePaymentMethodRequest removes by the stable sub-identifier when
// ID is set; otherwise the submitted record must equal a stored one on
// every card field.
type RemovePaymentMethodRequest struct {
	ID         *string `json:"id,omitempty" validate:"omitempty,uuid"`
	CardType   string  `json:"cardType,omitempty"`
	FirstName  string  `json:"firstName,omitempty"`
	LastName   string  `json:"lastName,omitempty"`
	CardNumber string  `json:"cardNumber,omitempty"`
	Expiry     string  `json:"expiry,omitempty"`
	CVV        string  `json:"cvv,omitempty"`
	Zip        string  `json:"zip,omitempty"`
}

type CreatePaymentRequest struct {
	TransactionID string  `json:"transactionID" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Amount        float64 `json:"amount" validate:"gte=0"`
	CardType      string  `json:"cardType,omitempty"`
	CardNumber    string  `json:"cardNumber,omitempty"`
}

type BookingDetailsPayload struct {
	TransactionID string   `json:"transactionID" validate:"required"`
	Movie         string   `json:"movie" validate:"required"`
	Time          string   `json:"time" validate:"required"`
	Date          string   `json:"date" validate:"required"`
	Theatre       string   `json:"theatre"`
	Seats         []string `json:"seats"`
	FoodItems     []string `json:"foodItems"`
	TotalCost     float64  `json:"totalCost" validate:"gte=0"`
}

type SendConfirmationRequest struct {
	BookingDetails BookingDetailsPayload `json:"bookingDetails" validate:"required"`
	UserEmail      string                `json:"userEmail" validate:"required,email"`
	FirstName      string                `json:"firstname"`
}
