package entity

// BookingRecord is a single reserved-seats-for-a-showtime entry.
// TransactionID is the join key to a PaymentTransaction and never
// changes once set. ContactEmail and ContactFirstName are captured
// at creation for notifications and are never touched by updates.
type BookingRecord struct {
	Base
	Movie            string   `db:"movie"`
	ShowTime         string   `db:"show_time"`
	ShowDate         string   `db:"show_date"`
	Theatre          string   `db:"theatre"`
	Seats            []string `db:"seats"`
	FoodItems        []string `db:"food_items"`
	TotalCost        float64  `db:"total_cost"`
	TransactionID    string   `db:"transaction_id"`
	ContactEmail     string   `db:"contact_email"`
	ContactFirstName string   `db:"contact_first_name"`
}

// BookingPatch holds the mutable booking fields for a partial update.
// Contact fields and the transaction ID are deliberately absent.
type BookingPatch struct {
	Movie     *string
	ShowTime  *string
	ShowDate  *string
	Theatre   *string
	Seats     []string
	FoodItems []string
	TotalCost *float64
}

// Empty reports whether the patch would change nothing
func (p *BookingPatch) Empty() bool {
	return p.Movie == nil && p.ShowTime == nil && p.ShowDate == nil &&
		p.Theatre == nil && p.Seats == nil && p.FoodItems == nil && p.TotalCost == nil
}
