package entity

import (
	"github.com/google/uuid"
)

type UserType int

const (
	UserTypeCustomer UserType = 0
	UserTypeAdmin    UserType = 1
)

// Login is the credential part of a user document.
// Email is the unique external identifier of the account.
type Login struct {
	Email        string  `db:"email"`
	Password     *string `db:"password_hash"`
	MobileNumber *string `db:"mobile_number"`
	SignedUp     bool    `db:"signed_up"`
	GoogleID     *string `db:"google_id"`
	FacebookID   *string `db:"facebook_id"`
}

type BasicInfo struct {
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	MobileNumber string `db:"basic_mobile_number"`
	City         string `db:"city"`
	State        string `db:"state"`
	Country      string `db:"country"`
	DOB          string `db:"dob"`
}

// Dashboard is the extended profile. It stays nil until the first
// profile update populates it.
type Dashboard struct {
	BasicInfo        BasicInfo
	ProfileImage     *string  `db:"profile_image"`
	Interests        []string `db:"interests"`
	FavoriteGenre    *string  `db:"favorite_genre"`
	MembershipStatus *string  `db:"membership_status"`
	RewardPoints     int      `db:"reward_points"`
}

type User struct {
	Base
	UserType  UserType `db:"user_type"`
	Login     Login
	Dashboard *Dashboard
}

// UserPatch holds the admin-patchable account fields
type UserPatch struct {
	UserType         *int
	MobileNumber     *string
	MembershipStatus *string
	FavoriteGenre    *string
	ProfileImage     *string
	RewardPoints     *int
}

// Empty reports whether the patch would change nothing
func (p *UserPatch) Empty() bool {
	return p.UserType == nil && p.MobileNumber == nil && p.MembershipStatus == nil &&
		p.FavoriteGenre == nil && p.ProfileImage == nil && p.RewardPoints == nil
}

// PaymentMethod is a card record embedded in a user's dashboard.
// It carries a stable ID so removals can be identifier-keyed.
type PaymentMethod struct {
	BaseSimple
	UserID     uuid.UUID `db:"user_id"`
	CardType   string    `db:"card_type"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	CardNumber string    `db:"card_number"`
	Expiry     string    `db:"expiry"`
	CVV        string    `db:"cvv"`
	Zip        string    `db:"zip"`
}

// Matches reports full structural equality of the card fields,
// the removal contract for callers that do not know the record ID.
func (pm *PaymentMethod) Matches(other *PaymentMethod) bool {
	return pm.CardType == other.CardType &&
		pm.FirstName == other.FirstName &&
		pm.LastName == other.LastName &&
		pm.CardNumber == other.CardNumber &&
		pm.Expiry == other.Expiry &&
		pm.CVV == other.CVV &&
		pm.Zip == other.Zip
}
