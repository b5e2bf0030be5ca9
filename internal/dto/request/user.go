package request

type CreateUserRequest struct {
	UserType     int     `json:"userType" validate:"gte=0,lte=1"`
	Email        string  `json:"email" validate:"required,email"`
	Password     *string `json:"password,omitempty" validate:"omitempty,min=6"`
	MobileNumber *string `json:"mobileNumber,omitempty"`
	SignedUp     bool    `json:"signedUp"`
	GoogleID     *string `json:"googleId,omitempty"`
	FacebookID   *string `json:"facebookId,omitempty"`
}

type PatchUserRequest struct {
	UserType         *int    `json:"userType,omitempty" validate:"omitempty,gte=0,lte=1"`
	MobileNumber     *string `json:"mobileNumber,omitempty"`
	MembershipStatus *string `json:"membershipStatus,omitempty"`
	FavoriteGenre    *string `json:"favoriteGenre,omitempty"`
	ProfileImage     *string `json:"profileImage,omitempty"`
	RewardPoints     *int    `json:"rewardPoints,omitempty" validate:"omitempty,gte=0"`
}

type BasicInfoPayload struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName"`
	MobileNumber string `json:"mobileNumber"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	DOB          string `json:"dob"`
}

type UpdateProfileRequest struct {
	BasicInfo        BasicInfoPayload `json:"basicInfo" validate:"required"`
	ProfileImage     *string          `json:"profileImage,omitempty"`
	Interests        []string         `json:"interests,omitempty"`
	FavoriteGenre    *string          `json:"favoriteGenre,omitempty"`
	MembershipStatus *string          `json:"membershipStatus,omitempty"`
	RewardPoints     int              `json:"rewardPoints" validate:"gte=0"`
}
