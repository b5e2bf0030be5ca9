package usecase

import (
	"context"
	"fmt"

	"movie-mates/internal/data/repository"
	"movie-mates/internal/dto/response"

	"go.uber.org/zap"
)

// CatalogService serves the read-only lookup data the booking frontend
// renders: countries, cities, theatres, the movie list and the food
// menu. There are no write paths here.
type CatalogService interface {
	Countries(ctx context.Context) ([]string, error)
	Cities(ctx context.Context, country string) (*response.CitiesResponse, error)
	Theatres(ctx context.Context, city string) (*response.TheatresResponse, error)
	Movies(ctx context.Context) ([]*response.MovieResponse, error)
	FoodItems(ctx context.Context) ([]*response.FoodItemResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

// Countries may legitimately be empty; the caller gets an empty list
func (s *catalogService) Countries(ctx context.Context) ([]string, error) {
	countries, err := s.repo.Catalog.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}

	names := make([]string, len(countries))
	for i, c := range countries {
		names[i] = c.Name
	}
	return names, nil
}

func (s *catalogService) Cities(ctx context.Context, country string) (*response.CitiesResponse, error) {
	if country == "" {
		return nil, fmt.Errorf("%w: country is required", ErrValidation)
	}

	cities, err := s.repo.Catalog.ListCitiesByCountry(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	if len(cities) == 0 {
		return nil, fmt.Errorf("%w: no cities found for country %s", ErrNotFound, country)
	}

	resp := &response.CitiesResponse{Country: country}
	for _, c := range cities {
		resp.Cities = append(resp.Cities, c.Name)
	}
	return resp, nil
}

func (s *catalogService) Theatres(ctx context.Context, city string) (*response.TheatresResponse, error) {
	if city == "" {
		return nil, fmt.Errorf("%w: city is required", ErrValidation)
	}

	theatres, err := s.repo.Catalog.ListTheatresByCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("list theatres: %w", err)
	}
	if len(theatres) == 0 {
		return nil, fmt.Errorf("%w: no theatres found for city %s", ErrNotFound, city)
	}

	resp := &response.TheatresResponse{City: city}
	for _, t := range theatres {
		resp.Theatres = append(resp.Theatres, t.Name)
	}
	return resp, nil
}

func (s *catalogService) Movies(ctx context.Context) ([]*response.MovieResponse, error) {
	movies, err := s.repo.Catalog.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	if len(movies) == 0 {
		return nil, fmt.Errorf("%w: no movies found", ErrNotFound)
	}

	out := make([]*response.MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = response.MovieToResponse(m)
	}
	return out, nil
}

func (s *catalogService) FoodItems(ctx context.Context) ([]*response.FoodItemResponse, error) {
	items, err := s.repo.Catalog.ListFoodItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list food items: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no food items found", ErrNotFound)
	}

	out := make([]*response.FoodItemResponse, len(items))
	for i, f := range items {
		out[i] = response.FoodItemToResponse(f)
	}
	return out, nil
}
