package response

import (
	"time"

	"movie-mates/internal/data/entity"
)

type PromoResponse struct {
	ID        string    `json:"id"`
	Code      *string   `json:"code,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// BroadcastResponse reports the fan-out outcome. Delivered counts only
// sends that succeeded and can never exceed Recipients, the number of
// distinct registered addresses at broadcast time.
type BroadcastResponse struct {
	OfferID      string `json:"offerId"`
	UsersUpdated int64  `json:"usersUpdated"`
	Recipients   int    `json:"recipients"`
	Delivered    int    `json:"delivered"`
}

type NotificationResponse struct {
	Recipients int `json:"recipients"`
}

func PromoToResponse(p *entity.PromotionalOffer) *PromoResponse {
	return &PromoResponse{
		ID:        p.ID.String(),
		Code:      p.Code,
		Message:   p.Message,
		CreatedAt: p.CreatedAt,
	}
}

func PromosToResponse(promos []*entity.PromotionalOffer) []*PromoResponse {
	out := make([]*PromoResponse, len(promos))
	for i, p := range promos {
		out[i] = PromoToResponse(p)
	}
	return out
}
