package entity

// Read-only catalog rows

type Country struct {
	Name string `db:"name"`
}

type City struct {
	Country string `db:"country"`
	Name    string `db:"name"`
}

type Theatre struct {
	City string `db:"city"`
	Name string `db:"name"`
}

type Movie struct {
	BaseSimple
	Title       string  `db:"title"`
	Genre       string  `db:"genre"`
	Language    string  `db:"language"`
	Rating      float64 `db:"rating"`
	ImageURL    string  `db:"image_url"`
	ReleaseDate string  `db:"release_date"`
}

type FoodItem struct {
	BaseSimple
	Name     string  `db:"name"`
	Category string  `db:"category"`
	Price    float64 `db:"price"`
	ImageURL string  `db:"image_url"`
}
