package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-mates/internal/data/entity"
	"movie-mates/internal/data/repository"
	"movie-mates/internal/dto/request"
	"movie-mates/internal/dto/response"
	"movie-mates/pkg/utils"

	"go.uber.org/zap"
)

type PaymentService interface {
	// saved payment methods of the authenticated user
	ListMethods(ctx context.Context) ([]response.PaymentMethodResponse, error)
	AddMethod(ctx context.Context, req *request.AddPaymentMethodRequest) (*response.PaymentMethodResponse, error)
	RemoveMethod(ctx context.Context, req *request.RemovePaymentMethodRequest) error

	// payment transactions
	CreateTransaction(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentResponse, error)
	ListTransactions(ctx context.Context) ([]*response.PaymentResponse, error)
	TransactionsByEmail(ctx context.Context, email string) ([]*response.PaymentWithBookingResponse, error)
	TransactionsByID(ctx context.Context, transactionID string) ([]*response.PaymentWithBookingResponse, error)
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
	}
}

// currentUser resolves the authenticated account from the request context
func (s *paymentService) currentUser(ctx context.Context) (*entity.User, error) {
	email, ok := utils.GetUserEmailFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: no authenticated user", ErrInvalidCredentials)
	}

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
	}

	return user, nil
}

func (s *paymentService) ListMethods(ctx context.Context) ([]response.PaymentMethodResponse, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	methods, err := s.repo.PaymentMethod.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}

	out := make([]response.PaymentMethodResponse, len(methods))
	for i, pm := range methods {
		out[i] = response.PaymentMethodToResponse(pm)
	}
	return out, nil
}

func (s *paymentService) AddMethod(ctx context.Context, req *request.AddPaymentMethodRequest) (*response.PaymentMethodResponse, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add payment method validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	method := &entity.PaymentMethod{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now(),
		},
		UserID:     user.ID,
		CardType:   req.CardType,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		CardNumber: req.CardNumber,
		Expiry:     req.Expiry,
		CVV:        req.CVV,
		Zip:        req.Zip,
	}

	if err := s.repo.PaymentMethod.Add(ctx, method); err != nil {
		return nil, fmt.Errorf("add payment method: %w", err)
	}

	s.log.Info("Payment method added",
		zap.String("method_id", method.ID.String()),
		zap.String("email", user.Login.Email),
	)

	resp := response.PaymentMethodToResponse(method)
	return &resp, nil
}

// RemoveMethod deletes by the record ID when one is supplied; otherwise
// the submitted card fields must all be present and equal a stored
// record exactly.
func (s *paymentService) RemoveMethod(ctx context.Context, req *request.RemovePaymentMethodRequest) error {
	user, err := s.currentUser(ctx)
	if err != nil {
		return err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	if req.ID != nil {
		id, err := utils.ParseUUID(*req.ID)
		if err != nil {
			return fmt.Errorf("%w: payment method %s", ErrNotFound, *req.ID)
		}

		rows, err := s.repo.PaymentMethod.DeleteByID(ctx, user.ID, id)
		if err != nil {
			return fmt.Errorf("remove payment method: %w", err)
		}
		if rows == 0 {
			return fmt.Errorf("%w: payment method %s", ErrNotFound, *req.ID)
		}

		s.log.Info("Payment method removed", zap.String("method_id", *req.ID))
		return nil
	}

	if req.CardType == "" || req.FirstName == "" || req.CardNumber == "" || req.Expiry == "" || req.CVV == "" {
		return fmt.Errorf("%w: either id or the full card record is required", ErrValidation)
	}

	method := &entity.PaymentMethod{
		CardType:   req.CardType,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		CardNumber: req.CardNumber,
		Expiry:     req.Expiry,
		CVV:        req.CVV,
		Zip:        req.Zip,
	}

	rows, err := s.repo.PaymentMethod.DeleteMatching(ctx, user.ID, method)
	if err != nil {
		return fmt.Errorf("remove payment method: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: no matching payment method", ErrNotFound)
	}

	s.log.Info("Payment method removed by match", zap.String("email", user.Login.Email))
	return nil
}

func (s *paymentService) CreateTransaction(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	payment := &entity.PaymentTransaction{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now(),
		},
		TransactionID: req.TransactionID,
		Email:         req.Email,
		Amount:        req.Amount,
		CardType:      req.CardType,
		CardNumber:    req.CardNumber,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.log.Info("Payment recorded",
		zap.String("transaction_id", payment.TransactionID),
		zap.String("email", payment.Email),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) ListTransactions(ctx context.Context) ([]*response.PaymentResponse, error) {
	payments, err := s.repo.Payment.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	if len(payments) == 0 {
		return nil, fmt.Errorf("%w: no payment info found", ErrNotFound)
	}

	out := make([]*response.PaymentResponse, len(payments))
	for i, p := range payments {
		resp := response.PaymentToResponse(p)
		out[i] = &resp
	}
	return out, nil
}

// TransactionsByEmail returns the user's payments with the paired
// booking attached. An empty result is fine: the caller gets an empty
// list, not a 404.
func (s *paymentService) TransactionsByEmail(ctx context.Context, email string) ([]*response.PaymentWithBookingResponse, error) {
	results, err := s.repo.Payment.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find payments by email: %w", err)
	}

	out := make([]*response.PaymentWithBookingResponse, len(results))
	for i, p := range results {
		out[i] = response.PaymentWithBookingToResponse(p)
	}
	return out, nil
}

func (s *paymentService) TransactionsByID(ctx context.Context, transactionID string) ([]*response.PaymentWithBookingResponse, error) {
	results, err := s.repo.Payment.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("find payments by transaction ID: %w", err)
	}

	out := make([]*response.PaymentWithBookingResponse, len(results))
	for i, p := range results {
		out[i] = response.PaymentWithBookingToResponse(p)
	}
	return out, nil
}
