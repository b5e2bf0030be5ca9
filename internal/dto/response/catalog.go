package response

import (
	"movie-mates/internal/data/entity"
)

// CitiesResponse mirrors the stored per-country city document shape
type CitiesResponse struct {
	Country string   `json:"country"`
	Cities  []string `json:"cities"`
}

type TheatresResponse struct {
	City     string   `json:"city"`
	Theatres []string `json:"theatres"`
}

type MovieResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Language    string  `json:"language"`
	Rating      float64 `json:"rating"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	ReleaseDate string  `json:"releaseDate,omitempty"`
}

type FoodItemResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

func MovieToResponse(m *entity.Movie) *MovieResponse {
	return &MovieResponse{
		ID:          m.ID.String(),
		Title:       m.Title,
		Genre:       m.Genre,
		Language:    m.Language,
		Rating:      m.Rating,
		ImageURL:    m.ImageURL,
		ReleaseDate: m.ReleaseDate,
	}
}

func FoodItemToResponse(f *entity.FoodItem) *FoodItemResponse {
	return &FoodItemResponse{
		ID:       f.ID.String(),
		Name:     f.Name,
		Category: f.Category,
		Price:    f.Price,
		ImageURL: f.ImageURL,
	}
}
