package repository

import (
	"context"
	"fmt"
	"time"

	"movie-mates/internal/data/entity"
	"movie-mates/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.PaymentTransaction) error
	FindAll(ctx context.Context) ([]*entity.PaymentTransaction, error)

	// FindByEmail and FindByTransactionID also fetch the booking that
	// shares the transaction ID, when one exists.
	FindByEmail(ctx context.Context, email string) ([]*entity.PaymentWithBooking, error)
	FindByTransactionID(ctx context.Context, transactionID string) ([]*entity.PaymentWithBooking, error)

	// DeleteByTransactionID returns the number of deleted rows
	DeleteByTransactionID(ctx context.Context, transactionID string) (int64, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.PaymentTransaction) error {
	query := `
		INSERT INTO payments (id, transaction_id, email, amount, card_type, card_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.TransactionID,
		payment.Email,
		payment.Amount,
		payment.CardType,
		payment.CardNumber,
		payment.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("transaction_id", payment.TransactionID),
		)
		return fmt.Errorf("create payment %s: %w", payment.TransactionID, err)
	}

	return nil
}

func (r *paymentRepository) FindAll(ctx context.Context) ([]*entity.PaymentTransaction, error) {
	query := `
		SELECT id, transaction_id, email, amount, card_type, card_number, created_at
		FROM payments
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list payments", zap.Error(err))
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []*entity.PaymentTransaction
	for rows.Next() {
		var p entity.PaymentTransaction
		if err := rows.Scan(&p.ID, &p.TransactionID, &p.Email, &p.Amount, &p.CardType, &p.CardNumber, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, &p)
	}

	return payments, rows.Err()
}

// joined query mirrors the old aggregation lookup: one booking at most,
// matched on the shared transaction ID
const paymentWithBookingQuery = `
	SELECT p.id, p.transaction_id, p.email, p.amount, p.card_type, p.card_number, p.created_at,
	       b.id, b.movie, b.show_time, b.show_date, b.theatre, b.seats, b.food_items,
	       b.total_cost, b.transaction_id, b.contact_email, b.contact_first_name, b.created_at, b.updated_at
	FROM payments p
	LEFT JOIN bookings b ON b.transaction_id = p.transaction_id
`

func (r *paymentRepository) queryWithBooking(ctx context.Context, where string, arg any) ([]*entity.PaymentWithBooking, error) {
	rows, err := r.db.Query(ctx, paymentWithBookingQuery+where, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*entity.PaymentWithBooking
	for rows.Next() {
		var p entity.PaymentWithBooking
		var (
			bID                            *uuid.UUID
			bMovie, bTime, bDate, bTheatre *string
			bSeats, bFood                  []string
			bCost                          *float64
			bTxn, bEmail, bFirst           *string
			bCreated, bUpdated             *time.Time
		)

		err := rows.Scan(
			&p.ID, &p.TransactionID, &p.Email, &p.Amount, &p.CardType, &p.CardNumber, &p.CreatedAt,
			&bID, &bMovie, &bTime, &bDate, &bTheatre, &bSeats, &bFood,
			&bCost, &bTxn, &bEmail, &bFirst, &bCreated, &bUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("scan payment with booking: %w", err)
		}

		if bID != nil {
			booking := &entity.BookingRecord{
				Movie:            *bMovie,
				ShowTime:         *bTime,
				ShowDate:         *bDate,
				Theatre:          *bTheatre,
				Seats:            bSeats,
				FoodItems:        bFood,
				TotalCost:        *bCost,
				TransactionID:    *bTxn,
				ContactEmail:     *bEmail,
				ContactFirstName: *bFirst,
			}
			booking.ID = *bID
			booking.CreatedAt = *bCreated
			booking.UpdatedAt = *bUpdated
			p.Booking = booking
		}

		results = append(results, &p)
	}

	return results, rows.Err()
}

func (r *paymentRepository) FindByEmail(ctx context.Context, email string) ([]*entity.PaymentWithBooking, error) {
	results, err := r.queryWithBooking(ctx, ` WHERE p.email = $1`, email)
	if err != nil {
		r.log.Error("Failed to find payments by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find payments by email %s: %w", email, err)
	}
	return results, nil
}

func (r *paymentRepository) FindByTransactionID(ctx context.Context, transactionID string) ([]*entity.PaymentWithBooking, error) {
	results, err := r.queryWithBooking(ctx, ` WHERE p.transaction_id = $1`, transactionID)
	if err != nil {
		r.log.Error("Failed to find payments by transaction ID",
			zap.Error(err),
			zap.String("transaction_id", transactionID),
		)
		return nil, fmt.Errorf("find payments by transaction ID %s: %w", transactionID, err)
	}
	return results, nil
}

func (r *paymentRepository) DeleteByTransactionID(ctx context.Context, transactionID string) (int64, error) {
	query := `DELETE FROM payments WHERE transaction_id = $1`

	tag, err := r.db.Exec(ctx, query, transactionID)
	if err != nil {
		r.log.Error("Failed to delete payment",
			zap.Error(err),
			zap.String("transaction_id", transactionID),
		)
		return 0, fmt.Errorf("delete payment %s: %w", transactionID, err)
	}

	return tag.RowsAffected(), nil
}
