package repository

import (
	"context"
	"fmt"

	"movie-mates/internal/data/entity"
	"movie-mates/pkg/database"

	"go.uber.org/zap"
)

// CatalogRepository serves the read-only lookup tables
type CatalogRepository interface {
	ListCountries(ctx context.Context) ([]*entity.Country, error)
	ListCitiesByCountry(ctx context.Context, country string) ([]*entity.City, error)
	ListTheatresByCity(ctx context.Context, city string) ([]*entity.Theatre, error)
	ListMovies(ctx context.Context) ([]*entity.Movie, error)
	ListFoodItems(ctx context.Context) ([]*entity.FoodItem, error)
}

type catalogRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCatalogRepository(db database.PgxIface, log *zap.Logger) CatalogRepository {
	return &catalogRepository{
		db:  db,
		log: log.With(zap.String("repository", "catalog")),
	}
}

func (r *catalogRepository) ListCountries(ctx context.Context) ([]*entity.Country, error) {
	query := `SELECT name FROM countries ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list countries", zap.Error(err))
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()

	var countries []*entity.Country
	for rows.Next() {
		var c entity.Country
		if err := rows.Scan(&c.Name); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		countries = append(countries, &c)
	}

	return countries, rows.Err()
}

func (r *catalogRepository) ListCitiesByCountry(ctx context.Context, country string) ([]*entity.City, error) {
	query := `SELECT country, name FROM cities WHERE country = $1 ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query, country)
	if err != nil {
		r.log.Error("Failed to list cities", zap.Error(err), zap.String("country", country))
		return nil, fmt.Errorf("list cities for %s: %w", country, err)
	}
	defer rows.Close()

	var cities []*entity.City
	for rows.Next() {
		var c entity.City
		if err := rows.Scan(&c.Country, &c.Name); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		cities = append(cities, &c)
	}

	return cities, rows.Err()
}

func (r *catalogRepository) ListTheatresByCity(ctx context.Context, city string) ([]*entity.Theatre, error) {
	query := `SELECT city, name FROM theatres WHERE city = $1 ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query, city)
	if err != nil {
		r.log.Error("Failed to list theatres", zap.Error(err), zap.String("city", city))
		return nil, fmt.Errorf("list theatres for %s: %w", city, err)
	}
	defer rows.Close()

	var theatres []*entity.Theatre
	for rows.Next() {
		var t entity.Theatre
		if err := rows.Scan(&t.City, &t.Name); err != nil {
			return nil, fmt.Errorf("scan theatre: %w", err)
		}
		theatres = append(theatres, &t)
	}

	return theatres, rows.Err()
}

func (r *catalogRepository) ListMovies(ctx context.Context) ([]*entity.Movie, error) {
	query := `SELECT id, title, genre, language, rating, image_url, release_date, created_at FROM movies ORDER BY title ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var m entity.Movie
		err := rows.Scan(&m.ID, &m.Title, &m.Genre, &m.Language, &m.Rating, &m.ImageURL, &m.ReleaseDate, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, &m)
	}

	return movies, rows.Err()
}

func (r *catalogRepository) ListFoodItems(ctx context.Context) ([]*entity.FoodItem, error) {
	query := `SELECT id, name, category, price, image_url, created_at FROM food_items ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list food items", zap.Error(err))
		return nil, fmt.Errorf("list food items: %w", err)
	}
	defer rows.Close()

	var items []*entity.FoodItem
	for rows.Next() {
		var f entity.FoodItem
		err := rows.Scan(&f.ID, &f.Name, &f.Category, &f.Price, &f.ImageURL, &f.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan food item: %w", err)
		}
		items = append(items, &f)
	}

	return items, rows.Err()
}
