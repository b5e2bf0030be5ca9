package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movie-mates/internal/data/entity"
	"movie-mates/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.BookingRecord) error
	FindAll(ctx context.Context) ([]*entity.BookingRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingRecord, error)

	// FindByShow matches movie, show time, show date and theatre exactly,
	// case-sensitively. Callers normalize (decode, trim) before calling.
	FindByShow(ctx context.Context, movie, showTime, showDate, theatre string) ([]*entity.BookingRecord, error)

	// Update applies a field-level replace of the patch's non-nil fields
	// and returns the number of matched rows.
	Update(ctx context.Context, id uuid.UUID, patch *entity.BookingPatch) (int64, error)

	// Delete returns the number of deleted rows
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, movie, show_time, show_date, theatre, seats, food_items, total_cost, transaction_id, contact_email, contact_first_name, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.BookingRecord, error) {
	var b entity.BookingRecord
	err := row.Scan(
		&b.ID,
		&b.Movie,
		&b.ShowTime,
		&b.ShowDate,
		&b.Theatre,
		&b.Seats,
		&b.FoodItems,
		&b.TotalCost,
		&b.TransactionID,
		&b.ContactEmail,
		&b.ContactFirstName,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.BookingRecord) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Movie,
		booking.ShowTime,
		booking.ShowDate,
		booking.Theatre,
		booking.Seats,
		booking.FoodItems,
		booking.TotalCost,
		booking.TransactionID,
		booking.ContactEmail,
		booking.ContactFirstName,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("movie", booking.Movie),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.BookingRecord, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.BookingRecord
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingRecord, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return b, nil
}

func (r *bookingRepository) FindByShow(ctx context.Context, movie, showTime, showDate, theatre string) ([]*entity.BookingRecord, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE movie = $1 AND show_time = $2 AND show_date = $3 AND theatre = $4
	`

	rows, err := r.db.Query(ctx, query, movie, showTime, showDate, theatre)
	if err != nil {
		r.log.Error("Failed to find bookings by show",
			zap.Error(err),
			zap.String("movie", movie),
			zap.String("show_date", showDate),
		)
		return nil, fmt.Errorf("find bookings by show: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.BookingRecord
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) Update(ctx context.Context, id uuid.UUID, patch *entity.BookingPatch) (int64, error) {
	var sets []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Movie != nil {
		add("movie", *patch.Movie)
	}
	if patch.ShowTime != nil {
		add("show_time", *patch.ShowTime)
	}
	if patch.ShowDate != nil {
		add("show_date", *patch.ShowDate)
	}
	if patch.Theatre != nil {
		add("theatre", *patch.Theatre)
	}
	if patch.Seats != nil {
		add("seats", patch.Seats)
	}
	if patch.FoodItems != nil {
		add("food_items", patch.FoodItems)
	}
	if patch.TotalCost != nil {
		add("total_cost", *patch.TotalCost)
	}
	add("updated_at", time.Now())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE bookings SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return 0, fmt.Errorf("update booking %s: %w", id.String(), err)
	}

	return tag.RowsAffected(), nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `DELETE FROM bookings WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return 0, fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	return tag.RowsAffected(), nil
}
