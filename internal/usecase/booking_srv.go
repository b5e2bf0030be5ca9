package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"movie-mates/internal/data/entity"
	"movie-mates/internal/data/repository"
	"movie-mates/internal/dto/request"
	"movie-mates/internal/dto/response"
	"movie-mates/pkg/mailer"
	"movie-mates/pkg/utils"

	"go.uber.org/zap"
)

// BookingService is the booking workflow: it keeps the paired payment
// transaction and the contact's email notification consistent with
// every booking mutation. Notifications are best-effort side effects
// fired only after the mutation is confirmed persisted; a failed send
// never rolls back or fails the mutation.
type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	ListBookings(ctx context.Context) ([]*response.BookingResponse, error)
	FindBookings(ctx context.Context, query *request.BookingQuery) ([]*response.BookingResponse, error)
	UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) error
	DeleteBooking(ctx context.Context, bookingID string) error
	SendConfirmation(ctx context.Context, req *request.SendConfirmationRequest) error
}

type bookingService struct {
	repo *repository.Repository
	mail mailer.Mailer
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, mail mailer.Mailer, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		mail: mail,
		log:  log.With(zap.String("service", "booking")),
	}
}

// CreateBooking inserts a new record. Seat availability is the caller's
// responsibility: no double-booking check happens here.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	transactionID := req.TransactionID
	if transactionID == "" {
		transactionID = utils.GenerateTransactionID()
	}

	now := time.Now()
	booking := &entity.BookingRecord{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Movie:            req.Movie,
		ShowTime:         req.Time,
		ShowDate:         req.Date,
		Theatre:          req.Theatre,
		Seats:            req.Seats,
		FoodItems:        req.FoodItems,
		TotalCost:        req.TotalCost,
		TransactionID:    transactionID,
		ContactEmail:     req.Email,
		ContactFirstName: req.FirstName,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("transaction_id", booking.TransactionID),
		zap.String("movie", booking.Movie),
	)

	return &response.CreateBookingResponse{
		InsertedID:    booking.ID.String(),
		TransactionID: booking.TransactionID,
	}, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]*response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if len(bookings) == 0 {
		return nil, fmt.Errorf("%w: no booking info found", ErrNotFound)
	}

	return response.BookingsToResponse(bookings), nil
}

// FindBookings matches on movie title, show time, date and theatre.
// Each parameter is percent-decoded and whitespace-trimmed first; the
// match itself is exact and case-sensitive.
func (s *bookingService) FindBookings(ctx context.Context, query *request.BookingQuery) ([]*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(query); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	title := normalizeQueryParam(query.Title)
	showTime := normalizeQueryParam(query.Time)
	showDate := normalizeQueryParam(query.Date)
	theatre := normalizeQueryParam(query.Theatre)

	bookings, err := s.repo.Booking.FindByShow(ctx, title, showTime, showDate, theatre)
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	if len(bookings) == 0 {
		return nil, fmt.Errorf("%w: no booking info found for the specified movie, time, and date", ErrNotFound)
	}

	return response.BookingsToResponse(bookings), nil
}

func normalizeQueryParam(value string) string {
	// the router already decodes once; a second pass covers callers
	// that double-encode
	if decoded, err := url.QueryUnescape(value); err == nil {
		value = decoded
	}
	return strings.TrimSpace(value)
}

// UpdateBooking applies a field-level replace of the mutable fields.
// Email and first name are transport-only and stripped before
// persistence; the stripped email gets the "Booking Updated" notice.
// The transaction ID is never modified.
func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := utils.ParseUUID(bookingID)
	if err != nil {
		return fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	patch := &entity.BookingPatch{
		Movie:     req.Movie,
		ShowTime:  req.Time,
		ShowDate:  req.Date,
		Theatre:   req.Theatre,
		Seats:     req.Seats,
		FoodItems: req.FoodItems,
		TotalCost: req.TotalCost,
	}

	if patch.Empty() {
		return fmt.Errorf("%w: no updatable fields provided", ErrValidation)
	}

	rows, err := s.repo.Booking.Update(ctx, id, patch)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	s.log.Info("Booking updated", zap.String("booking_id", bookingID))

	if req.Email != nil && *req.Email != "" {
		s.notify(*req.Email, "Booking Updated", "Your booking details have been updated.")
	}

	return nil
}

// DeleteBooking removes the record, notifies the stored contact email
// and cleans up the paired payment transaction. The payment record is
// keyed by the booking's transaction ID; cleanup failure is logged and
// never surfaced, since the booking deletion already committed.
func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	id, err := utils.ParseUUID(bookingID)
	if err != nil {
		return fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	rows, err := s.repo.Booking.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if rows == 0 {
		// lost a race with another delete
		return fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	s.log.Info("Booking deleted",
		zap.String("booking_id", bookingID),
		zap.String("transaction_id", booking.TransactionID),
	)

	if booking.ContactEmail != "" {
		s.notify(booking.ContactEmail, "Booking Deleted", "Your booking has been deleted.")
	}

	if booking.TransactionID != "" {
		deleted, err := s.repo.Payment.DeleteByTransactionID(ctx, booking.TransactionID)
		switch {
		case err != nil:
			s.log.Warn("Payment record cleanup failed after booking deletion",
				zap.Error(err),
				zap.String("booking_id", bookingID),
				zap.String("transaction_id", booking.TransactionID),
			)
		case deleted == 0:
			s.log.Warn("No payment record matched the booking's transaction ID",
				zap.String("booking_id", bookingID),
				zap.String("transaction_id", booking.TransactionID),
			)
		}
	}

	return nil
}

// SendConfirmation mails a booking confirmation with the QR code
func (s *bookingService) SendConfirmation(ctx context.Context, req *request.SendConfirmationRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	details := &mailer.BookingDetails{
		TransactionID: req.BookingDetails.TransactionID,
		Movie:         req.BookingDetails.Movie,
		Time:          req.BookingDetails.Time,
		Date:          req.BookingDetails.Date,
		Theatre:       req.BookingDetails.Theatre,
		Seats:         req.BookingDetails.Seats,
		FoodItems:     req.BookingDetails.FoodItems,
		TotalCost:     req.BookingDetails.TotalCost,
	}

	if err := s.mail.SendBookingConfirmation(details, req.UserEmail, req.FirstName); err != nil {
		s.log.Error("Failed to send booking confirmation",
			zap.Error(err),
			zap.String("to", req.UserEmail),
		)
		return fmt.Errorf("%w: booking confirmation", ErrDelivery)
	}

	return nil
}

// notify fires a lifecycle notice without blocking the caller.
// Failures are logged only: the mutation is the source of truth.
func (s *bookingService) notify(email, subject, text string) {
	go func() {
		if err := s.mail.SendNotice(email, subject, text); err != nil {
			s.log.Warn("Booking notice delivery failed",
				zap.Error(err),
				zap.String("to", email),
				zap.String("subject", subject),
			)
		}
	}()
}
