package request

type CreateOfferRequest struct {
	Code    *string `json:"code,omitempty"`
	Message string  `json:"message" validate:"required"`
}

type SendNotificationRequest struct {
	Message string `json:"message" validate:"required"`
}
