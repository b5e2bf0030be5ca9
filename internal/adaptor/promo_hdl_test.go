package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-mates/internal/dto/request"
	"movie-mates/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type stubPromoService struct {
	broadcasts []*request.CreateOfferRequest
}

func (s *stubPromoService) Broadcast(_ context.Context, req *request.CreateOfferRequest) (*response.BroadcastResponse, error) {
	s.broadcasts = append(s.broadcasts, req)
	return &response.BroadcastResponse{OfferID: "offer-1", UsersUpdated: 3, Recipients: 3, Delivered: 3}, nil
}

func (s *stubPromoService) SendNotification(_ context.Context, _ *request.SendNotificationRequest) (*response.NotificationResponse, error) {
	return &response.NotificationResponse{Recipients: 3}, nil
}

func (s *stubPromoService) CreatePromo(_ context.Context, _ *request.CreateOfferRequest) (*response.PromoResponse, error) {
	return &response.PromoResponse{ID: "promo-1"}, nil
}

func (s *stubPromoService) ListPromos(_ context.Context) ([]*response.PromoResponse, error) {
	return nil, nil
}

func (s *stubPromoService) FindPromoByCode(_ context.Context, _ string) (*response.PromoResponse, error) {
	return &response.PromoResponse{ID: "promo-1"}, nil
}

func (s *stubPromoService) RemovePromo(_ context.Context, _ string) error {
	return nil
}

func newPromoTestRouter(svc *stubPromoService) *chi.Mux {
	handler := NewPromoHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/promotionalOffers", handler.Broadcast)
	r.Post("/notifications/send", handler.SendNotification)
	return r
}

func TestBroadcastReturns201(t *testing.T) {
	svc := &stubPromoService{}
	router := newPromoTestRouter(svc)

	req := httptest.NewRequest("POST", "/promotionalOffers",
		strings.NewReader(`{"message":"20% off this weekend"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(svc.broadcasts) != 1 {
		t.Fatalf("Expected 1 broadcast, got %d", len(svc.broadcasts))
	}
}

func TestSendNotificationReturns200(t *testing.T) {
	svc := &stubPromoService{}
	router := newPromoTestRouter(svc)

	req := httptest.NewRequest("POST", "/notifications/send",
		strings.NewReader(`{"message":"Maintenance tonight"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
