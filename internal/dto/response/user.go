package response

import (
	"time"

	"movie-mates/internal/data/entity"
)

type LoginInfo struct {
	Email        string  `json:"email"`
	MobileNumber *string `json:"mobileNumber,omitempty"`
	SignedUp     bool    `json:"signedUp"`
	GoogleID     *string `json:"googleId,omitempty"`
	FacebookID   *string `json:"facebookId,omitempty"`
}

type BasicInfo struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	MobileNumber string `json:"mobileNumber"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	DOB          string `json:"dob"`
}

type DashboardResponse struct {
	BasicInfo         BasicInfo               `json:"basicInfo"`
	ProfileImage      *string                 `json:"profileImage,omitempty"`
	Interests         []string                `json:"interests,omitempty"`
	FavoriteGenre     *string                 `json:"favoriteGenre,omitempty"`
	MembershipStatus  *string                 `json:"membershipStatus,omitempty"`
	RewardPoints      int                     `json:"rewardPoints"`
	PaymentDetails    []PaymentMethodResponse `json:"paymentDetails,omitempty"`
	PromotionalOffers []ReceivedOfferResponse `json:"promotionalOffers,omitempty"`
}

type UserResponse struct {
	ID        string             `json:"id"`
	UserType  int                `json:"userType"`
	Login     LoginInfo          `json:"login"`
	Dashboard *DashboardResponse `json:"dashboard,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

type ReceivedOfferResponse struct {
	OfferID    string    `json:"offerId"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// UserToResponse maps a user document; the password hash never leaves
// the repository layer through this path.
func UserToResponse(u *entity.User) *UserResponse {
	resp := &UserResponse{
		ID:       u.ID.String(),
		UserType: int(u.UserType),
		Login: LoginInfo{
			Email:        u.Login.Email,
			MobileNumber: u.Login.MobileNumber,
			SignedUp:     u.Login.SignedUp,
			GoogleID:     u.Login.GoogleID,
			FacebookID:   u.Login.FacebookID,
		},
		CreatedAt: u.CreatedAt,
	}

	if u.Dashboard != nil {
		resp.Dashboard = &DashboardResponse{
			BasicInfo: BasicInfo{
				FirstName:    u.Dashboard.BasicInfo.FirstName,
				LastName:     u.Dashboard.BasicInfo.LastName,
				MobileNumber: u.Dashboard.BasicInfo.MobileNumber,
				City:         u.Dashboard.BasicInfo.City,
				State:        u.Dashboard.BasicInfo.State,
				Country:      u.Dashboard.BasicInfo.Country,
				DOB:          u.Dashboard.BasicInfo.DOB,
			},
			ProfileImage:     u.Dashboard.ProfileImage,
			Interests:        u.Dashboard.Interests,
			FavoriteGenre:    u.Dashboard.FavoriteGenre,
			MembershipStatus: u.Dashboard.MembershipStatus,
			RewardPoints:     u.Dashboard.RewardPoints,
		}
	}

	return resp
}

func ReceivedOfferToResponse(o *entity.ReceivedOffer) ReceivedOfferResponse {
	return ReceivedOfferResponse{
		OfferID:    o.OfferID.String(),
		Message:    o.Message,
		ReceivedAt: o.ReceivedAt,
	}
}
