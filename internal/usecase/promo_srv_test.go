package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-mates/internal/data/entity"
	"movie-mates/internal/data/repository"
	"movie-mates/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newPromoService(repo *repository.Repository, mail *fakeMailer) PromoService {
	return NewPromoService(repo, mail, zap.NewNop())
}

func seedUser(t *testing.T, repo *repository.Repository, email string) {
	t.Helper()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Login: entity.Login{Email: email, SignedUp: true},
	}
	if err := repo.User.Create(context.Background(), user); err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
}

func TestBroadcastAppendsAndDelivers(t *testing.T) {
	repo := newTestRepository()
	repo.Promo.(*fakePromoRepo).appendResult = 2
	mail := newFakeMailer()
	svc := newPromoService(repo, mail)

	seedUser(t, repo, "a@example.com")
	seedUser(t, repo, "b@example.com")

	resp, err := svc.Broadcast(context.Background(), &request.CreateOfferRequest{
		Message: "20% off this weekend",
	})
	if err != nil {
		t.Fatalf("Broadcast failed: %v", err)
	}

	if resp.UsersUpdated != 2 {
		t.Errorf("Expected 2 users updated, got %d", resp.UsersUpdated)
	}
	if resp.Delivered != 2 {
		t.Errorf("Expected 2 deliveries, got %d", resp.Delivered)
	}
	if resp.OfferID == "" {
		t.Error("Expected the created offer ID")
	}

	fake := repo.Promo.(*fakePromoRepo)
	if len(fake.appended) != 1 {
		t.Fatalf("Expected exactly one fan-out, got %d", len(fake.appended))
	}
}

func TestBroadcastFailsWhenNoUserUpdated(t *testing.T) {
	repo := newTestRepository()
	mail := newFakeMailer()
	svc := newPromoService(repo, mail)

	// appendResult stays 0: the bulk write reached nobody
	_, err := svc.Broadcast(context.Background(), &request.CreateOfferRequest{
		Message: "20% off this weekend",
	})
	if err == nil {
		t.Fatal("Expected an error when no user document was updated")
	}

	if len(mail.promos) != 0 {
		t.Errorf("No email may be sent after a failed broadcast, got %d", len(mail.promos))
	}
}

func TestBroadcastSurvivesDeliveryFailures(t *testing.T) {
	repo := newTestRepository()
	repo.Promo.(*fakePromoRepo).appendResult = 1
	mail := newFakeMailer()
	mail.fail = errors.New("smtp down")
	svc := newPromoService(repo, mail)

	seedUser(t, repo, "a@example.com")

	resp, err := svc.Broadcast(context.Background(), &request.CreateOfferRequest{
		Message: "20% off this weekend",
	})
	if err != nil {
		t.Fatalf("Broadcast must not fail on delivery errors: %v", err)
	}

	if resp.Delivered != 0 {
		t.Errorf("Expected 0 deliveries, got %d", resp.Delivered)
	}
	if resp.UsersUpdated != 1 {
		t.Errorf("Expected the fan-out to count, got %d", resp.UsersUpdated)
	}
}

func TestBroadcastDeduplicatesRecipients(t *testing.T) {
	repo := newTestRepository()
	repo.Promo.(*fakePromoRepo).appendResult = 2
	mail := newFakeMailer()
	svc := newPromoService(repo, mail)

	seedUser(t, repo, "a@example.com")
	seedUser(t, repo, "a@example.com")

	resp, err := svc.Broadcast(context.Background(), &request.CreateOfferRequest{
		Message: "20% off this weekend",
	})
	if err != nil {
		t.Fatalf("Broadcast failed: %v", err)
	}

	if resp.Recipients != 1 {
		t.Errorf("Expected 1 distinct recipient, got %d", resp.Recipients)
	}
	if resp.Delivered != 1 {
		t.Errorf("Expected 1 delivery, got %d", resp.Delivered)
	}
}

func TestBroadcastRequiresMessage(t *testing.T) {
	repo := newTestRepository()
	svc := newPromoService(repo, newFakeMailer())

	_, err := svc.Broadcast(context.Background(), &request.CreateOfferRequest{})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Expected ErrValidation, got %v", err)
	}
}

func TestSendNotificationFailsOnDeliveryError(t *testing.T) {
	repo := newTestRepository()
	mail := newFakeMailer()
	mail.fail = errors.New("smtp down")
	svc := newPromoService(repo, mail)

	seedUser(t, repo, "a@example.com")

	_, err := svc.SendNotification(context.Background(), &request.SendNotificationRequest{
		Message: "Maintenance tonight",
	})
	if !errors.Is(err, ErrDelivery) {
		t.Fatalf("Expected ErrDelivery, got %v", err)
	}
}

func TestSendNotificationReachesEveryUser(t *testing.T) {
	repo := newTestRepository()
	mail := newFakeMailer()
	svc := newPromoService(repo, mail)

	seedUser(t, repo, "a@example.com")
	seedUser(t, repo, "b@example.com")

	resp, err := svc.SendNotification(context.Background(), &request.SendNotificationRequest{
		Message: "Maintenance tonight",
	})
	if err != nil {
		t.Fatalf("SendNotification failed: %v", err)
	}
	if resp.Recipients != 2 {
		t.Errorf("Expected 2 recipients, got %d", resp.Recipients)
	}
	if len(mail.promos) != 2 {
		t.Errorf("Expected 2 sends, got %d", len(mail.promos))
	}
}

func TestFindPromoByCode(t *testing.T) {
	repo := newTestRepository()
	svc := newPromoService(repo, newFakeMailer())

	code := "WEEKEND20"
	if _, err := svc.CreatePromo(context.Background(), &request.CreateOfferRequest{
		Code:    &code,
		Message: "20% off this weekend",
	}); err != nil {
		t.Fatalf("CreatePromo failed: %v", err)
	}

	promo, err := svc.FindPromoByCode(context.Background(), "WEEKEND20")
	if err != nil {
		t.Fatalf("FindPromoByCode failed: %v", err)
	}
	if promo.Message != "20% off this weekend" {
		t.Errorf("Unexpected promo message: %s", promo.Message)
	}

	if _, err := svc.FindPromoByCode(context.Background(), "NOPE"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestRemovePromoNotFound(t *testing.T) {
	repo := newTestRepository()
	svc := newPromoService(repo, newFakeMailer())

	if err := svc.RemovePromo(context.Background(), uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if err := svc.RemovePromo(context.Background(), "not-a-uuid"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for a malformed ID, got %v", err)
	}
}
