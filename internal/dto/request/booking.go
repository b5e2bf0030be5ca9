package request

type CreateBookingRequest struct {
	Movie         string   `json:"movie" validate:"required"`
	Time          string   `json:"time" validate:"required"`
	Date          string   `json:"date" validate:"required"`
	Theatre       string   `json:"theatre" validate:"required"`
	Seats         []string `json:"seats" validate:"required,min=1"`
	FoodItems     []string `json:"foodItems,omitempty"`
	TotalCost     float64  `json:"totalCost" validate:"gte=0"`
	TransactionID string   `json:"transactionID,omitempty"`
	Email         string   `json:"email,omitempty" validate:"omitempty,email"`
	FirstName     string   `json:"firstname,omitempty"`
}

// UpdateBookingRequest is a partial field set. Email and FirstName are
// transport-only: they address the notification and are stripped before
// persistence. TransactionID is accepted on the wire but never applied;
// the stored value is immutable.
type UpdateBookingRequest struct {
	Movie         *string  `json:"movie,omitempty"`
	Time          *string  `json:"time,omitempty"`
	Date          *string  `json:"date,omitempty"`
	Theatre       *string  `json:"theatre,omitempty"`
	Seats         []string `json:"seats,omitempty"`
	FoodItems     []string `json:"foodItems,omitempty"`
	TotalCost     *float64 `json:"totalCost,omitempty" validate:"omitempty,gte=0"`
	TransactionID *string  `json:"transactionID,omitempty"`
	Email         *string  `json:"email,omitempty" validate:"omitempty,email"`
	FirstName     *string  `json:"firstname,omitempty"`
}

// BookingQuery carries the raw query parameters of a show lookup.
// Values are percent-decoded and trimmed by the service before matching.
type BookingQuery struct {
	Title   string `validate:"required"`
	Time    string `validate:"required"`
	Date    string `validate:"required"`
	Theatre string `validate:"required"`
}
