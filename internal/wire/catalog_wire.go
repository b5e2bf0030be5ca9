package wire

import (
	"movie-mates/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireCatalog configures the read-only lookup routes
func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	r.Get("/countries", catalogHandler.GetCountries)
	r.Get("/cities/{country}", catalogHandler.GetCities)
	r.Get("/theatres/{city}", catalogHandler.GetTheatres)
	r.Get("/movies", catalogHandler.GetMovies)
	r.Get("/foodItems", catalogHandler.GetFoodItems)
}
