package repository

import (
	"context"
	"fmt"
	"time"

	"movie-mates/internal/data/entity"
	"movie-mates/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PromoRepository interface {
	Create(ctx context.Context, offer *entity.PromotionalOffer) error
	FindAll(ctx context.Context) ([]*entity.PromotionalOffer, error)
	FindByCode(ctx context.Context, code string) (*entity.PromotionalOffer, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)

	// AppendToAllUsers fans the offer out into every user's received
	// list in one statement and returns the number of users reached
	AppendToAllUsers(ctx context.Context, offerID uuid.UUID) (int64, error)

	// ListReceivedByEmail returns the offers delivered to one user
	ListReceivedByEmail(ctx context.Context, email string) ([]*entity.ReceivedOffer, error)
}

type promoRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPromoRepository(db database.PgxIface, log *zap.Logger) PromoRepository {
	return &promoRepository{
		db:  db,
		log: log.With(zap.String("repository", "promo")),
	}
}

func (r *promoRepository) Create(ctx context.Context, offer *entity.PromotionalOffer) error {
	query := `
		INSERT INTO promos (id, code, message, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, offer.ID, offer.Code, offer.Message, offer.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create promo",
			zap.Error(err),
			zap.String("promo_id", offer.ID.String()),
		)
		return fmt.Errorf("create promo %s: %w", offer.ID.String(), err)
	}

	return nil
}

func (r *promoRepository) FindAll(ctx context.Context) ([]*entity.PromotionalOffer, error) {
	query := `SELECT id, code, message, created_at FROM promos ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list promos", zap.Error(err))
		return nil, fmt.Errorf("list promos: %w", err)
	}
	defer rows.Close()

	var promos []*entity.PromotionalOffer
	for rows.Next() {
		var p entity.PromotionalOffer
		if err := rows.Scan(&p.ID, &p.Code, &p.Message, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan promo: %w", err)
		}
		promos = append(promos, &p)
	}

	return promos, rows.Err()
}

func (r *promoRepository) FindByCode(ctx context.Context, code string) (*entity.PromotionalOffer, error) {
	query := `SELECT id, code, message, created_at FROM promos WHERE code = $1`

	var p entity.PromotionalOffer
	err := r.db.QueryRow(ctx, query, code).Scan(&p.ID, &p.Code, &p.Message, &p.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find promo by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find promo by code %s: %w", code, err)
	}

	return &p, nil
}

func (r *promoRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `DELETE FROM promos WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete promo",
			zap.Error(err),
			zap.String("promo_id", id.String()),
		)
		return 0, fmt.Errorf("delete promo %s: %w", id.String(), err)
	}

	return tag.RowsAffected(), nil
}

func (r *promoRepository) AppendToAllUsers(ctx context.Context, offerID uuid.UUID) (int64, error) {
	query := `
		INSERT INTO user_offers (user_id, offer_id, received_at)
		SELECT id, $1, $2 FROM users
	`

	tag, err := r.db.Exec(ctx, query, offerID, time.Now())
	if err != nil {
		r.log.Error("Failed to fan out promo to users",
			zap.Error(err),
			zap.String("promo_id", offerID.String()),
		)
		return 0, fmt.Errorf("fan out promo %s: %w", offerID.String(), err)
	}

	return tag.RowsAffected(), nil
}

func (r *promoRepository) ListReceivedByEmail(ctx context.Context, email string) ([]*entity.ReceivedOffer, error) {
	query := `
		SELECT uo.offer_id, p.message, uo.received_at
		FROM user_offers uo
		JOIN promos p ON p.id = uo.offer_id
		JOIN users u ON u.id = uo.user_id
		WHERE u.email = $1
		ORDER BY uo.received_at DESC
	`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to list received offers",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("list received offers for %s: %w", email, err)
	}
	defer rows.Close()

	var offers []*entity.ReceivedOffer
	for rows.Next() {
		var o entity.ReceivedOffer
		if err := rows.Scan(&o.OfferID, &o.Message, &o.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan received offer: %w", err)
		}
		offers = append(offers, &o)
	}

	return offers, rows.Err()
}
