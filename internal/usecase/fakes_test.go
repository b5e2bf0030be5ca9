package usecase

import (
	"context"
	"sync"

	"movie-mates/internal/data/entity"
	"movie-mates/internal/data/repository"
	"movie-mates/pkg/mailer"

	"github.com/google/uuid"
)

// In-memory stand-ins for the repository interfaces. Each fake keeps
// its records in a slice guarded by a mutex so tests that exercise the
// async notification path stay race-free.

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*entity.BookingRecord

	lastPatch *entity.BookingPatch
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.BookingRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context) ([]*entity.BookingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.BookingRecord(nil), f.bookings...), nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.BookingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByShow(_ context.Context, movie, showTime, showDate, theatre string) ([]*entity.BookingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.BookingRecord
	for _, b := range f.bookings {
		if b.Movie == movie && b.ShowTime == showTime && b.ShowDate == showDate && b.Theatre == theatre {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, id uuid.UUID, patch *entity.BookingPatch) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID != id {
			continue
		}
		f.lastPatch = patch
		if patch.Movie != nil {
			b.Movie = *patch.Movie
		}
		if patch.ShowTime != nil {
			b.ShowTime = *patch.ShowTime
		}
		if patch.ShowDate != nil {
			b.ShowDate = *patch.ShowDate
		}
		if patch.Theatre != nil {
			b.Theatre = *patch.Theatre
		}
		if patch.Seats != nil {
			b.Seats = patch.Seats
		}
		if patch.FoodItems != nil {
			b.FoodItems = patch.FoodItems
		}
		if patch.TotalCost != nil {
			b.TotalCost = *patch.TotalCost
		}
		return 1, nil
	}
	return 0, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, b := range f.bookings {
		if b.ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments []*entity.PaymentTransaction

	deletedTransactionIDs []string
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *entity.PaymentTransaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payments = append(f.payments, payment)
	return nil
}

func (f *fakePaymentRepo) FindAll(_ context.Context) ([]*entity.PaymentTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.PaymentTransaction(nil), f.payments...), nil
}

func (f *fakePaymentRepo) FindByEmail(_ context.Context, email string) ([]*entity.PaymentWithBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.PaymentWithBooking
	for _, p := range f.payments {
		if p.Email == email {
			out = append(out, &entity.PaymentWithBooking{PaymentTransaction: *p})
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) FindByTransactionID(_ context.Context, transactionID string) ([]*entity.PaymentWithBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.PaymentWithBooking
	for _, p := range f.payments {
		if p.TransactionID == transactionID {
			out = append(out, &entity.PaymentWithBooking{PaymentTransaction: *p})
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) DeleteByTransactionID(_ context.Context, transactionID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedTransactionIDs = append(f.deletedTransactionIDs, transactionID)
	var kept []*entity.PaymentTransaction
	var deleted int64
	for _, p := range f.payments {
		if p.TransactionID == transactionID {
			deleted++
			continue
		}
		kept = append(kept, p)
	}
	f.payments = kept
	return deleted, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Login.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.User(nil), f.users...), nil
}

func (f *fakeUserRepo) ListEmails(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var emails []string
	for _, u := range f.users {
		emails = append(emails, u.Login.Email)
	}
	return emails, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, email, passwordHash string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Login.Email == email {
			u.Login.Password = &passwordHash
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, email string, dashboard *entity.Dashboard) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Login.Email == email {
			u.Dashboard = dashboard
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeUserRepo) UpdateFields(_ context.Context, email string, patch *entity.UserPatch) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Login.Email == email {
			if patch.UserType != nil {
				u.UserType = entity.UserType(*patch.UserType)
			}
			if patch.MobileNumber != nil {
				u.Login.MobileNumber = patch.MobileNumber
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, email string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.users {
		if u.Login.Email == email {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakePaymentMethodRepo struct {
	mu      sync.Mutex
	methods []*entity.PaymentMethod
}

func (f *fakePaymentMethodRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.PaymentMethod, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.PaymentMethod
	for _, m := range f.methods {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakePaymentMethodRepo) Add(_ context.Context, method *entity.PaymentMethod) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.methods = append(f.methods, method)
	return nil
}

func (f *fakePaymentMethodRepo) DeleteByID(_ context.Context, userID, id uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, m := range f.methods {
		if m.UserID == userID && m.ID == id {
			f.methods = append(f.methods[:i], f.methods[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakePaymentMethodRepo) DeleteMatching(_ context.Context, userID uuid.UUID, method *entity.PaymentMethod) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []*entity.PaymentMethod
	var deleted int64
	for _, m := range f.methods {
		if m.UserID == userID && m.Matches(method) {
			deleted++
			continue
		}
		kept = append(kept, m)
	}
	f.methods = kept
	return deleted, nil
}

type fakePromoRepo struct {
	mu     sync.Mutex
	promos []*entity.PromotionalOffer

	appended     []uuid.UUID
	appendResult int64
}

func (f *fakePromoRepo) Create(_ context.Context, offer *entity.PromotionalOffer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.promos = append(f.promos, offer)
	return nil
}

func (f *fakePromoRepo) FindAll(_ context.Context) ([]*entity.PromotionalOffer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.PromotionalOffer(nil), f.promos...), nil
}

func (f *fakePromoRepo) FindByCode(_ context.Context, code string) (*entity.PromotionalOffer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.promos {
		if p.Code != nil && *p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePromoRepo) DeleteByID(_ context.Context, id uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.promos {
		if p.ID == id {
			f.promos = append(f.promos[:i], f.promos[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakePromoRepo) AppendToAllUsers(_ context.Context, offerID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appended = append(f.appended, offerID)
	return f.appendResult, nil
}

func (f *fakePromoRepo) ListReceivedByEmail(_ context.Context, _ string) ([]*entity.ReceivedOffer, error) {
	return nil, nil
}

// fakeMailer records every send and signals notices over a channel so
// tests can wait on the async notification path. Setting fail makes
// every send return an error.
type fakeMailer struct {
	mu   sync.Mutex
	fail error

	confirmations []string
	notices       []string
	promos        []string

	noticeCh chan string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{noticeCh: make(chan string, 8)}
}

func (f *fakeMailer) SendBookingConfirmation(_ *mailer.BookingDetails, to, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.confirmations = append(f.confirmations, to)
	return nil
}

func (f *fakeMailer) SendNotice(to, subject, _ string) error {
	f.mu.Lock()
	if f.fail != nil {
		f.mu.Unlock()
		return f.fail
	}
	f.notices = append(f.notices, to+":"+subject)
	f.mu.Unlock()
	f.noticeCh <- to + ":" + subject
	return nil
}

func (f *fakeMailer) SendPromo(to, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.promos = append(f.promos, to)
	return nil
}

func newTestRepository() *repository.Repository {
	return &repository.Repository{
		User:          &fakeUserRepo{},
		PaymentMethod: &fakePaymentMethodRepo{},
		Booking:       &fakeBookingRepo{},
		Payment:       &fakePaymentRepo{},
		Promo:         &fakePromoRepo{},
	}
}
