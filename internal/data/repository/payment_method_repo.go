package repository

import (
	"context"
	"fmt"

	"movie-mates/internal/data/entity"
	"movie-mates/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentMethodRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentMethod, error)
	Add(ctx context.Context, method *entity.PaymentMethod) error

	// DeleteByID removes one method by its stable sub-identifier
	DeleteByID(ctx context.Context, userID, id uuid.UUID) (int64, error)

	// DeleteMatching removes methods equal to the submitted record on
	// every card field, for callers that do not know the record ID
	DeleteMatching(ctx context.Context, userID uuid.UUID, method *entity.PaymentMethod) (int64, error)
}

type paymentMethodRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentMethodRepository(db database.PgxIface, log *zap.Logger) PaymentMethodRepository {
	return &paymentMethodRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment_method")),
	}
}

func (r *paymentMethodRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentMethod, error) {
	query := `
		SELECT id, user_id, card_type, first_name, last_name, card_number, expiry, cvv, zip, created_at
		FROM payment_methods
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list payment methods",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()

	var methods []*entity.PaymentMethod
	for rows.Next() {
		var pm entity.PaymentMethod
		err := rows.Scan(&pm.ID, &pm.UserID, &pm.CardType, &pm.FirstName, &pm.LastName,
			&pm.CardNumber, &pm.Expiry, &pm.CVV, &pm.Zip, &pm.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		methods = append(methods, &pm)
	}

	return methods, rows.Err()
}

func (r *paymentMethodRepository) Add(ctx context.Context, method *entity.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (id, user_id, card_type, first_name, last_name, card_number, expiry, cvv, zip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		method.ID,
		method.UserID,
		method.CardType,
		method.FirstName,
		method.LastName,
		method.CardNumber,
		method.Expiry,
		method.CVV,
		method.Zip,
		method.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to add payment method",
			zap.Error(err),
			zap.String("user_id", method.UserID.String()),
		)
		return fmt.Errorf("add payment method: %w", err)
	}

	return nil
}

func (r *paymentMethodRepository) DeleteByID(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	query := `DELETE FROM payment_methods WHERE user_id = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query, userID, id)
	if err != nil {
		r.log.Error("Failed to delete payment method",
			zap.Error(err),
			zap.String("method_id", id.String()),
		)
		return 0, fmt.Errorf("delete payment method %s: %w", id.String(), err)
	}

	return tag.RowsAffected(), nil
}

func (r *paymentMethodRepository) DeleteMatching(ctx context.Context, userID uuid.UUID, method *entity.PaymentMethod) (int64, error) {
	query := `
		DELETE FROM payment_methods
		WHERE user_id = $1 AND card_type = $2 AND first_name = $3 AND last_name = $4
		  AND card_number = $5 AND expiry = $6 AND cvv = $7 AND zip = $8
	`

	tag, err := r.db.Exec(ctx, query,
		userID,
		method.CardType,
		method.FirstName,
		method.LastName,
		method.CardNumber,
		method.Expiry,
		method.CVV,
		method.Zip,
	)

	if err != nil {
		r.log.Error("Failed to delete matching payment method",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("delete matching payment method: %w", err)
	}

	return tag.RowsAffected(), nil
}
