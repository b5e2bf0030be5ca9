package entity

// PaymentTransaction is a payment record, joined to a BookingRecord
// by TransactionID.
type PaymentTransaction struct {
	BaseSimple
	TransactionID string  `db:"transaction_id"`
	Email         string  `db:"email"`
	Amount        float64 `db:"amount"`
	CardType      string  `db:"card_type"`
	CardNumber    string  `db:"card_number"`
}

// PaymentWithBooking pairs a transaction with the booking that shares
// its transaction ID, when one exists.
type PaymentWithBooking struct {
	PaymentTransaction
	Booking *BookingRecord
}
