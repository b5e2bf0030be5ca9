package adaptor

import (
	"net/http"

	"movie-mates/internal/usecase"
	"movie-mates/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

// GetCountries handles GET /countries
func (h *CatalogHandler) GetCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.service.Countries(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get countries")
		return
	}

	utils.ResponseSuccess(w, "Countries retrieved successfully", countries)
}

// GetCities handles GET /cities/{country}
func (h *CatalogHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")

	cities, err := h.service.Cities(r.Context(), country)
	if err != nil {
		handleServiceError(w, h.log, err, "get cities")
		return
	}

	utils.ResponseSuccess(w, "Cities retrieved successfully", cities)
}

// GetTheatres handles GET /theatres/{city}
func (h *CatalogHandler) GetTheatres(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")

	theatres, err := h.service.Theatres(r.Context(), city)
	if err != nil {
		handleServiceError(w, h.log, err, "get theatres")
		return
	}

	utils.ResponseSuccess(w, "Theatres retrieved successfully", theatres)
}

// GetMovies handles GET /movies
func (h *CatalogHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.Movies(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// GetFoodItems handles GET /foodItems
func (h *CatalogHandler) GetFoodItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.FoodItems(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get food items")
		return
	}

	utils.ResponseSuccess(w, "Food items retrieved successfully", items)
}
