package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-mates/internal/dto/request"
	"movie-mates/internal/dto/response"
	"movie-mates/internal/usecase"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// stubBookingService answers FindBookings from a single canned show and
// records the queries and updates it receives.
type stubBookingService struct {
	queries []*request.BookingQuery
	updated []string
}

func (s *stubBookingService) CreateBooking(_ context.Context, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	return &response.CreateBookingResponse{InsertedID: "id-1", TransactionID: "TXN-1"}, nil
}

func (s *stubBookingService) ListBookings(_ context.Context) ([]*response.BookingResponse, error) {
	return nil, fmt.Errorf("%w: no booking info found", usecase.ErrNotFound)
}

func (s *stubBookingService) FindBookings(_ context.Context, query *request.BookingQuery) ([]*response.BookingResponse, error) {
	s.queries = append(s.queries, query)
	title := strings.TrimSpace(query.Title)
	if title == "Inception" && query.Time != "" {
		return []*response.BookingResponse{{Movie: "Inception"}}, nil
	}
	return nil, fmt.Errorf("%w: no booking info found for the specified movie, time, and date", usecase.ErrNotFound)
}

func (s *stubBookingService) UpdateBooking(_ context.Context, bookingID string, _ *request.UpdateBookingRequest) error {
	if bookingID != "11111111-1111-1111-1111-111111111111" {
		return fmt.Errorf("%w: booking %s", usecase.ErrNotFound, bookingID)
	}
	s.updated = append(s.updated, bookingID)
	return nil
}

func (s *stubBookingService) DeleteBooking(_ context.Context, bookingID string) error {
	return fmt.Errorf("%w: booking %s", usecase.ErrNotFound, bookingID)
}

func (s *stubBookingService) SendConfirmation(_ context.Context, _ *request.SendConfirmationRequest) error {
	return nil
}

func newBookingTestRouter(svc usecase.BookingService) *chi.Mux {
	handler := NewBookingHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/bookingInfo", handler.GetAllBookings)
	r.Post("/bookingInfo", handler.CreateBooking)
	r.Put("/bookingInfo/{id}", handler.UpdateBooking)
	r.Delete("/bookingInfo/{id}", handler.DeleteBooking)
	r.Get("/specificBookingInfo", handler.FindBookings)
	return r
}

func TestFindBookingsPassesQueryParams(t *testing.T) {
	svc := &stubBookingService{}
	router := newBookingTestRouter(svc)

	req := httptest.NewRequest("GET", "/specificBookingInfo?title=Inception&time=19%3A30&date=2026-09-12&theatre=Grand+Plaza", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if len(svc.queries) != 1 {
		t.Fatalf("Expected 1 query, got %d", len(svc.queries))
	}
	q := svc.queries[0]
	if q.Title != "Inception" || q.Time != "19:30" || q.Theatre != "Grand Plaza" {
		t.Errorf("Router must decode the query once: %+v", q)
	}
}

func TestFindBookingsNotFound(t *testing.T) {
	svc := &stubBookingService{}
	router := newBookingTestRouter(svc)

	req := httptest.NewRequest("GET", "/specificBookingInfo?title=Nothing&time=19:30&date=2026-09-12&theatre=X", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}

	var body struct {
		Status bool `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON body: %v", err)
	}
	if body.Status {
		t.Error("Error envelope must carry status=false")
	}
}

func TestUpdateBookingNonexistentIs404(t *testing.T) {
	svc := &stubBookingService{}
	router := newBookingTestRouter(svc)

	req := httptest.NewRequest("PUT", "/bookingInfo/22222222-2222-2222-2222-222222222222",
		strings.NewReader(`{"movie":"Interstellar"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(svc.updated) != 0 {
		t.Error("No update may be recorded for a missing booking")
	}
}

func TestUpdateBookingRejectsUnknownFields(t *testing.T) {
	svc := &stubBookingService{}
	router := newBookingTestRouter(svc)

	req := httptest.NewRequest("PUT", "/bookingInfo/11111111-1111-1111-1111-111111111111",
		strings.NewReader(`{"movie":"Interstellar","bogusField":true}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for unknown fields, got %d", rec.Code)
	}
	if len(svc.updated) != 0 {
		t.Error("The service must not be reached on a malformed body")
	}
}

func TestCreateBookingReturns200(t *testing.T) {
	svc := &stubBookingService{}
	router := newBookingTestRouter(svc)

	body := `{"movie":"Inception","time":"19:30","date":"2026-09-12","theatre":"Grand Plaza","seats":["A1"],"totalCost":15}`
	req := httptest.NewRequest("POST", "/bookingInfo", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Status bool `json:"status"`
		Data   struct {
			TransactionID string `json:"transactionID"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("Invalid JSON body: %v", err)
	}
	if !envelope.Status || envelope.Data.TransactionID != "TXN-1" {
		t.Errorf("Unexpected envelope: %s", rec.Body.String())
	}
}
