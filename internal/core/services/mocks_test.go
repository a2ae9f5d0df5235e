package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	portssvc "github.com/sabzimandi/mandi_backend/internal/core/ports/services"
)

// --- Mock PartyRepository ---
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) FindPartyByName(ctx context.Context, partyType domain.PartyType, name string) (*domain.Party, error) {
	args := m.Called(ctx, partyType, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ListParties(ctx context.Context, partyType domain.PartyType) ([]domain.Party, error) {
	args := m.Called(ctx, partyType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party, summary domain.PaymentDetail) error {
	args := m.Called(ctx, party, summary)
	return args.Error(0)
}

func (m *MockPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) DeleteParty(ctx context.Context, partyID string) error {
	args := m.Called(ctx, partyID)
	return args.Error(0)
}

// --- Mock BalanceRepository ---
type MockBalanceRepository struct {
	mock.Mock
}

func (m *MockBalanceRepository) FindSummaryByPartyID(ctx context.Context, partyID string) (*domain.PaymentDetail, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentDetail), args.Error(1)
}

func (m *MockBalanceRepository) ListSummaries(ctx context.Context, partyType domain.PartyType) ([]domain.PaymentDetail, error) {
	args := m.Called(ctx, partyType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentDetail), args.Error(1)
}

func (m *MockBalanceRepository) UpdateSummary(ctx context.Context, summary domain.PaymentDetail) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByParty(ctx context.Context, name string) ([]domain.Transaction, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByTypeAndDate(ctx context.Context, txnType domain.TransactionType, date time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, txnType, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) RecordBatch(ctx context.Context, batch domain.TransactionBatch) (int, error) {
	args := m.Called(ctx, batch)
	return args.Int(0), args.Error(1)
}

func (m *MockTransactionRepository) RecordPayment(ctx context.Context, txn domain.Transaction, partyID string, partyType domain.PartyType) error {
	args := m.Called(ctx, txn, partyID, partyType)
	return args.Error(0)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductByItemCode(ctx context.Context, itemCode string) (*domain.Product, error) {
	args := m.Called(ctx, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// --- Mock DailySummaryRepository ---
type MockDailySummaryRepository struct {
	mock.Mock
}

func (m *MockDailySummaryRepository) UpsertDailySummary(ctx context.Context, summary domain.DailyAccountSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func (m *MockDailySummaryRepository) FindDailySummary(ctx context.Context, date time.Time) (*domain.DailyAccountSummary, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyAccountSummary), args.Error(1)
}

func (m *MockDailySummaryRepository) ListDailySummaries(ctx context.Context) ([]domain.DailyAccountSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyAccountSummary), args.Error(1)
}

// RecordingPublisher collects published change events for assertions.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []portssvc.ChangeEvent
}

func (p *RecordingPublisher) Publish(evt portssvc.ChangeEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *RecordingPublisher) Events() []portssvc.ChangeEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]portssvc.ChangeEvent(nil), p.events...)
}
