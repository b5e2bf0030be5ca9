package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-mates/internal/data/entity"
	"movie-mates/internal/data/repository"
	"movie-mates/internal/dto/request"
	"movie-mates/internal/dto/response"
	"movie-mates/pkg/mailer"
	"movie-mates/pkg/utils"

	"go.uber.org/zap"
)

// PromoService owns the promotion broadcast: one central offer record,
// a bulk append into every user's received list, and an email to every
// distinct registered address. The bulk write and the email fan-out are
// not transactionally linked; the broadcast succeeds as soon as at
// least one user document was updated, whatever the delivery outcome.
type PromoService interface {
	Broadcast(ctx context.Context, req *request.CreateOfferRequest) (*response.BroadcastResponse, error)
	SendNotification(ctx context.Context, req *request.SendNotificationRequest) (*response.NotificationResponse, error)

	CreatePromo(ctx context.Context, req *request.CreateOfferRequest) (*response.PromoResponse, error)
	ListPromos(ctx context.Context) ([]*response.PromoResponse, error)
	FindPromoByCode(ctx context.Context, code string) (*response.PromoResponse, error)
	RemovePromo(ctx context.Context, promoID string) error
}

type promoService struct {
	repo *repository.Repository
	mail mailer.Mailer
	log  *zap.Logger
}

func NewPromoService(repo *repository.Repository, mail mailer.Mailer, log *zap.Logger) PromoService {
	return &promoService{
		repo: repo,
		mail: mail,
		log:  log.With(zap.String("service", "promo")),
	}
}

func (s *promoService) Broadcast(ctx context.Context, req *request.CreateOfferRequest) (*response.BroadcastResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Broadcast validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	offer := &entity.PromotionalOffer{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now(),
		},
		Code:    req.Code,
		Message: req.Message,
	}

	if err := s.repo.Promo.Create(ctx, offer); err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}

	updated, err := s.repo.Promo.AppendToAllUsers(ctx, offer.ID)
	if err != nil {
		return nil, fmt.Errorf("fan out offer: %w", err)
	}
	if updated == 0 {
		return nil, fmt.Errorf("failed to update any user document with promotional offer")
	}

	s.log.Info("Promotional offer created",
		zap.String("offer_id", offer.ID.String()),
		zap.Int64("users_updated", updated),
	)

	// Email delivery is detached from the bulk write: per-recipient
	// failures are logged and do not affect the broadcast outcome.
	emails, err := s.distinctEmails(ctx)
	if err != nil {
		s.log.Warn("Could not fetch recipient list for offer emails", zap.Error(err))
		emails = nil
	}

	delivered := 0
	for _, email := range emails {
		if err := s.mail.SendPromo(email, offer.Message); err != nil {
			s.log.Warn("Promo email delivery failed",
				zap.Error(err),
				zap.String("to", email),
				zap.String("offer_id", offer.ID.String()),
			)
			continue
		}
		delivered++
	}

	return &response.BroadcastResponse{
		OfferID:      offer.ID.String(),
		UsersUpdated: updated,
		Recipients:   len(emails),
		Delivered:    delivered,
	}, nil
}

// SendNotification mails the message to every registered address.
// Unlike Broadcast, a send failure here fails the request.
func (s *promoService) SendNotification(ctx context.Context, req *request.SendNotificationRequest) (*response.NotificationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	emails, err := s.distinctEmails(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch recipient list: %w", err)
	}

	for _, email := range emails {
		if err := s.mail.SendPromo(email, req.Message); err != nil {
			s.log.Error("Notification delivery failed",
				zap.Error(err),
				zap.String("to", email),
			)
			return nil, fmt.Errorf("%w: notification to %s", ErrDelivery, email)
		}
	}

	s.log.Info("Promotional notifications sent", zap.Int("recipients", len(emails)))

	return &response.NotificationResponse{Recipients: len(emails)}, nil
}

func (s *promoService) CreatePromo(ctx context.Context, req *request.CreateOfferRequest) (*response.PromoResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	offer := &entity.PromotionalOffer{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now(),
		},
		Code:    req.Code,
		Message: req.Message,
	}

	if err := s.repo.Promo.Create(ctx, offer); err != nil {
		return nil, fmt.Errorf("create promo: %w", err)
	}

	return response.PromoToResponse(offer), nil
}

func (s *promoService) ListPromos(ctx context.Context) ([]*response.PromoResponse, error) {
	promos, err := s.repo.Promo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list promos: %w", err)
	}

	return response.PromosToResponse(promos), nil
}

func (s *promoService) FindPromoByCode(ctx context.Context, code string) (*response.PromoResponse, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrValidation)
	}

	promo, err := s.repo.Promo.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("find promo: %w", err)
	}
	if promo == nil {
		return nil, fmt.Errorf("%w: promotional offer", ErrNotFound)
	}

	return response.PromoToResponse(promo), nil
}

func (s *promoService) RemovePromo(ctx context.Context, promoID string) error {
	id, err := utils.ParseUUID(promoID)
	if err != nil {
		return fmt.Errorf("%w: promotional offer %s", ErrNotFound, promoID)
	}

	rows, err := s.repo.Promo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete promo: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: promotional offer %s", ErrNotFound, promoID)
	}

	s.log.Info("Promotional offer deleted", zap.String("promo_id", promoID))
	return nil
}

// distinctEmails returns the registered addresses with duplicates removed
func (s *promoService) distinctEmails(ctx context.Context) ([]string, error) {
	emails, err := s.repo.User.ListEmails(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(emails))
	var distinct []string
	for _, email := range emails {
		if email == "" {
			continue
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		distinct = append(distinct, email)
	}

	return distinct, nil
}
