package entity

import (
	"time"

	"github.com/google/uuid"
)

// PromotionalOffer is stored once centrally; delivery to users goes
// through per-user received-offer rows keyed by the offer ID.
type PromotionalOffer struct {
	BaseSimple
	Code    *string `db:"code"`
	Message string  `db:"message"`
}

// ReceivedOffer links an offer into one user's dashboard
type ReceivedOffer struct {
	OfferID    uuid.UUID `db:"offer_id"`
	Message    string    `db:"message"`
	ReceivedAt time.Time `db:"received_at"`
}
