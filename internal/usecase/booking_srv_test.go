package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"movie-mates/internal/data/entity"
	"movie-mates/internal/data/repository"
	"movie-mates/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newBookingService(repo *repository.Repository, mail *fakeMailer) BookingService {
	return NewBookingService(repo, mail, zap.NewNop())
}

func seedBooking(t *testing.T, repo *repository.Repository, transactionID, contactEmail string) *entity.BookingRecord {
	t.Helper()
	booking := &entity.BookingRecord{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Movie:         "Inception",
		ShowTime:      "19:30",
		ShowDate:      "2026-09-12",
		Theatre:       "Grand Plaza",
		Seats:         []string{"F4", "F5"},
		TotalCost:     32.50,
		TransactionID: transactionID,
		ContactEmail:  contactEmail,
	}
	if err := repo.Booking.Create(context.Background(), booking); err != nil {
		t.Fatalf("Failed to seed booking: %v", err)
	}
	return booking
}

func waitForNotice(t *testing.T, mail *fakeMailer) string {
	t.Helper()
	select {
	case notice := <-mail.noticeCh:
		return notice
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for notice")
		return ""
	}
}

func TestCreateBookingGeneratesTransactionID(t *testing.T) {
	repo := newTestRepository()
	svc := newBookingService(repo, newFakeMailer())

	resp, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		Movie:     "Inception",
		Time:      "19:30",
		Date:      "2026-09-12",
		Theatre:   "Grand Plaza",
		Seats:     []string{"A1"},
		TotalCost: 15,
	})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	if resp.TransactionID == "" {
		t.Fatal("Expected a generated transaction ID")
	}
	if !strings.HasPrefix(resp.TransactionID, "TXN-") {
		t.Errorf("Unexpected transaction ID format: %s", resp.TransactionID)
	}
	if resp.InsertedID == "" {
		t.Error("Expected the inserted booking ID")
	}
}

func TestCreateBookingKeepsSuppliedTransactionID(t *testing.T) {
	repo := newTestRepository()
	svc := newBookingService(repo, newFakeMailer())

	resp, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		Movie:         "Inception",
		Time:          "19:30",
		Date:          "2026-09-12",
		Theatre:       "Grand Plaza",
		Seats:         []string{"A1"},
		TransactionID: "TXN-EXISTING-0001",
	})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if resp.TransactionID != "TXN-EXISTING-0001" {
		t.Errorf("Expected the supplied transaction ID, got %s", resp.TransactionID)
	}
}

func TestUpdateBookingStripsContactFields(t *testing.T) {
	repo := newTestRepository()
	mail := newFakeMailer()
	svc := newBookingService(repo, mail)

	booking := seedBooking(t, repo, "TXN-1", "alex@example.com")

	movie := "Interstellar"
	email := "new-contact@example.com"
	txn := "TXN-HIJACKED"
	err := svc.UpdateBooking(context.Background(), booking.ID.String(), &request.UpdateBookingRequest{
		Movie:         &movie,
		Email:         &email,
		TransactionID: &txn,
	})
	if err != nil {
		t.Fatalf("UpdateBooking failed: %v", err)
	}

	fake := repo.Booking.(*fakeBookingRepo)
	if fake.lastPatch == nil {
		t.Fatal("Expected an update to reach the repository")
	}
	if fake.lastPatch.Movie == nil || *fake.lastPatch.Movie != "Interstellar" {
		t.Error("Expected the movie field in the patch")
	}

	// contact email and transaction ID must never be persisted
	if booking.ContactEmail != "alex@example.com" {
		t.Errorf("Contact email mutated to %s", booking.ContactEmail)
	}
	if booking.TransactionID != "TXN-1" {
		t.Errorf("Transaction ID mutated to %s", booking.TransactionID)
	}

	// the stripped email still addresses the notice
	notice := waitForNotice(t, mail)
	if notice != "new-contact@example.com:Booking Updated" {
		t.Errorf("Unexpected notice: %s", notice)
	}
}

func TestUpdateBookingEmptyPatch(t *testing.T) {
	repo := newTestRepository()
	svc := newBookingService(repo, newFakeMailer())

	booking := seedBooking(t, repo, "TXN-1", "alex@example.com")

	err := svc.UpdateBooking(context.Background(), booking.ID.String(), &request.UpdateBookingRequest{})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Expected ErrValidation, got %v", err)
	}
}

func TestUpdateBookingNotFound(t *testing.T) {
	repo := newTestRepository()
	mail := newFakeMailer()
	svc := newBookingService(repo, mail)

	movie := "Interstellar"
	email := "ghost@example.com"
	err := svc.UpdateBooking(context.Background(), uuid.NewString(), &request.UpdateBookingRequest{
		Movie: &movie,
		Email: &email,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	// nothing existed, so nothing may be sent
	select {
	case notice := <-mail.noticeCh:
		t.Fatalf("Unexpected notice for missing booking: %s", notice)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDeleteBookingCleansUpPaymentByTransactionID(t *testing.T) {
	repo := newTestRepository()
	mail := newFakeMailer()
	svc := newBookingService(repo, mail)

	booking := seedBooking(t, repo, "TXN-42", "alex@example.com")

	payment := &entity.PaymentTransaction{
		BaseSimple:    entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		TransactionID: "TXN-42",
		Email:         "alex@example.com",
		Amount:        32.50,
	}
	if err := repo.Payment.Create(context.Background(), payment); err != nil {
		t.Fatalf("Failed to seed payment: %v", err)
	}

	if err := svc.DeleteBooking(context.Background(), booking.ID.String()); err != nil {
		t.Fatalf("DeleteBooking failed: %v", err)
	}

	fake := repo.Payment.(*fakePaymentRepo)
	if len(fake.deletedTransactionIDs) != 1 || fake.deletedTransactionIDs[0] != "TXN-42" {
		t.Fatalf("Expected payment cleanup keyed by TXN-42, got %v", fake.deletedTransactionIDs)
	}

	remaining, _ := repo.Payment.FindAll(context.Background())
	if len(remaining) != 0 {
		t.Errorf("Expected the paired payment to be removed, %d left", len(remaining))
	}

	notice := waitForNotice(t, mail)
	if notice != "alex@example.com:Booking Deleted" {
		t.Errorf("Unexpected notice: %s", notice)
	}
}

func TestDeleteBookingNotFound(t *testing.T) {
	repo := newTestRepository()
	mail := newFakeMailer()
	svc := newBookingService(repo, mail)

	seedBooking(t, repo, "TXN-1", "alex@example.com")

	err := svc.DeleteBooking(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	bookings, _ := repo.Booking.FindAll(context.Background())
	if len(bookings) != 1 {
		t.Errorf("Existing booking must stay untouched, %d left", len(bookings))
	}

	select {
	case notice := <-mail.noticeCh:
		t.Fatalf("Unexpected notice for missing booking: %s", notice)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDeleteBookingSurvivesNoticeFailure(t *testing.T) {
	repo := newTestRepository()
	mail := newFakeMailer()
	mail.fail = errors.New("smtp down")
	svc := newBookingService(repo, mail)

	booking := seedBooking(t, repo, "TXN-1", "alex@example.com")

	if err := svc.DeleteBooking(context.Background(), booking.ID.String()); err != nil {
		t.Fatalf("DeleteBooking must not fail on notice errors: %v", err)
	}

	bookings, _ := repo.Booking.FindAll(context.Background())
	if len(bookings) != 0 {
		t.Error("Expected the booking to be deleted despite the failed notice")
	}
}

func TestFindBookingsNormalizesParameters(t *testing.T) {
	repo := newTestRepository()
	svc := newBookingService(repo, newFakeMailer())

	seedBooking(t, repo, "TXN-1", "alex@example.com")

	// percent-encoded and padded values resolve to the same show
	results, err := svc.FindBookings(context.Background(), &request.BookingQuery{
		Title:   "  Inception ",
		Time:    "19%3A30",
		Date:    "2026-09-12",
		Theatre: "Grand%20Plaza",
	})
	if err != nil {
		t.Fatalf("FindBookings failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 booking, got %d", len(results))
	}
}

func TestFindBookingsIsCaseSensitive(t *testing.T) {
	repo := newTestRepository()
	svc := newBookingService(repo, newFakeMailer())

	seedBooking(t, repo, "TXN-1", "alex@example.com")

	_, err := svc.FindBookings(context.Background(), &request.BookingQuery{
		Title:   "inception",
		Time:    "19:30",
		Date:    "2026-09-12",
		Theatre: "Grand Plaza",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for a case mismatch, got %v", err)
	}
}

func TestSendConfirmationDeliveryFailure(t *testing.T) {
	repo := newTestRepository()
	mail := newFakeMailer()
	mail.fail = errors.New("smtp down")
	svc := newBookingService(repo, mail)

	err := svc.SendConfirmation(context.Background(), &request.SendConfirmationRequest{
		BookingDetails: request.BookingDetailsPayload{
			TransactionID: "TXN-1",
			Movie:         "Inception",
			Time:          "19:30",
			Date:          "2026-09-12",
		},
		UserEmail: "alex@example.com",
		FirstName: "Alex",
	})
	if !errors.Is(err, ErrDelivery) {
		t.Fatalf("Expected ErrDelivery, got %v", err)
	}
}
