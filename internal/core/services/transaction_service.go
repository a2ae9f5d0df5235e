package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sabzimandi/mandi_backend/internal/apperrors"
	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	portsrepo "github.com/sabzimandi/mandi_backend/internal/core/ports/repositories"
	portssvc "github.com/sabzimandi/mandi_backend/internal/core/ports/services"
	"github.com/sabzimandi/mandi_backend/internal/dto"
	"github.com/sabzimandi/mandi_backend/internal/middleware"
)

// transactionService owns the two write paths into the append-only log.
type transactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	partyRepo       portsrepo.PartyRepositoryFacade
	events          portssvc.EventPublisher
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, partyRepo portsrepo.PartyRepositoryFacade, events portssvc.EventPublisher) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		partyRepo:       partyRepo,
		events:          events,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) publish(collection, action, id string) {
	if s.events != nil {
		s.events.Publish(portssvc.ChangeEvent{Collection: collection, Action: action, ID: id})
	}
}

// ListTransactions returns the full log sorted for display.
func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.transactionRepo.ListTransactions(ctx)
}

// billedPartyType maps the bill type to the side of the counter it bills:
// sales bill customers, purchases bill suppliers.
func billedPartyType(txnType domain.TransactionType) domain.PartyType {
	if txnType == domain.Purchase {
		return domain.PartySupplier
	}
	return domain.PartyCustomer
}

// RecordBatch validates a cart, resolves or creates its party, derives the
// collected amount and the synthetic payment row, and hands the whole batch
// to the store for a single atomic commit.
func (s *transactionService) RecordBatch(ctx context.Context, req dto.CreateTransactionBatchRequest) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", apperrors.ErrValidation)
	}

	partyName := strings.TrimSpace(req.PartyName)
	if partyName == "" {
		return 0, fmt.Errorf("%w: party name is required", apperrors.ErrValidation)
	}

	total := decimal.Zero
	now := time.Now().UTC()
	lines := make([]domain.Transaction, 0, len(req.Lines))
	for _, line := range req.Lines {
		if line.Quantity.IsNegative() || line.Price.IsNegative() {
			return 0, fmt.Errorf("%w: quantity and price must not be negative", apperrors.ErrValidation)
		}
		amount := line.Quantity.Mul(line.Price)
		total = total.Add(amount)
		lines = append(lines, domain.Transaction{
			TransactionID: uuid.NewString(),
			Date:          date,
			Party:         partyName,
			Type:          req.Type,
			Item:          strings.TrimSpace(line.Item),
			Amount:        amount,
			Payment:       req.PaymentMethod,
			Quantity:      line.Quantity,
			Price:         line.Price,
			CreatedAt:     now,
		})
	}

	partyType := billedPartyType(req.Type)
	party, err := s.partyRepo.FindPartyByName(ctx, partyType, partyName)
	partyIsNew := false
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("failed to resolve party: %w", err)
		}
		party = &domain.Party{
			PartyID: uuid.NewString(),
			Type:    partyType,
			Name:    partyName,
			Contact: req.PartyContact,
			Address: req.PartyAddress,
		}
		partyIsNew = true
	}

	// Collection rule: walk-in customers settle in full with cash, an
	// explicit amountPaid wins otherwise, and a non-credit method means the
	// bill was settled in full.
	paymentMethod := req.PaymentMethod
	var amountPaid decimal.Decimal
	walkIn := req.Type == domain.Sale && party.IsWalkIn()
	switch {
	case walkIn:
		amountPaid = total
		paymentMethod = domain.MethodCash
	case req.AmountPaid != nil:
		amountPaid = *req.AmountPaid
	case req.PaymentMethod != domain.MethodCredit:
		amountPaid = total
	default:
		amountPaid = decimal.Zero
	}
	if amountPaid.IsNegative() || amountPaid.GreaterThan(total) {
		return 0, fmt.Errorf("%w: amount paid must be between zero and the bill total", apperrors.ErrValidation)
	}

	var paymentLine *domain.Transaction
	if amountPaid.IsPositive() {
		degree := "Full"
		if amountPaid.LessThan(total) {
			degree = "Partial"
		}
		p := domain.Transaction{
			TransactionID: uuid.NewString(),
			Date:          date,
			Party:         partyName,
			Type:          domain.Payment,
			Item:          fmt.Sprintf("%s Payment during %s", degree, req.Type),
			Amount:        amountPaid,
			Payment:       paymentMethod,
			CreatedAt:     now,
		}
		if req.Type == domain.Sale {
			p.Debit = amountPaid
		} else {
			p.Credit = amountPaid
		}
		paymentLine = &p
	}

	batch := domain.TransactionBatch{
		Party:          *party,
		PartyIsNew:     partyIsNew,
		Lines:          lines,
		PaymentLine:    paymentLine,
		TotalAmount:    total,
		AmountPaid:     amountPaid,
		PaymentMethod:  paymentMethod,
		ClampDueToZero: walkIn,
	}

	billNumber, err := s.transactionRepo.RecordBatch(ctx, batch)
	if err != nil {
		logger.Error("Failed to record transaction batch",
			slog.String("error", err.Error()),
			slog.String("party", partyName),
			slog.String("type", string(req.Type)))
		return 0, fmt.Errorf("failed to record transaction batch: %w", err)
	}

	if partyIsNew {
		s.publish(partyCollection(partyType), "create", party.PartyID)
	}
	for _, line := range lines {
		s.publish("transactions", "create", line.TransactionID)
	}
	if paymentLine != nil {
		s.publish("transactions", "create", paymentLine.TransactionID)
	}
	s.publish(summaryCollection(partyType), "update", party.PartyID)

	logger.Info("Batch recorded",
		slog.String("party", partyName),
		slog.String("type", string(req.Type)),
		slog.Int("bill_number", billNumber),
		slog.String("total", total.String()))
	return billNumber, nil
}

// RecordPayment appends a standalone payment dated today and adjusts the
// party's balance summary.
func (s *transactionService) RecordPayment(ctx context.Context, req dto.CreatePaymentRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	party, err := s.partyRepo.FindPartyByID(ctx, req.PartyID)
	if err != nil {
		return err
	}
	if party.Type != req.PartyType {
		return fmt.Errorf("%w: party type mismatch", apperrors.ErrValidation)
	}

	method := req.PaymentMethod
	if method == "" {
		method = domain.MethodCash
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          domain.Day(now),
		Party:         party.Name,
		Type:          domain.Payment,
		Amount:        req.Amount,
		Payment:       method,
		CreatedAt:     now,
	}
	if req.PartyType == domain.PartySupplier {
		txn.Item = "Payment Given"
		txn.Credit = req.Amount
	} else {
		txn.Item = "Payment Received"
		txn.Debit = req.Amount
	}

	if err := s.transactionRepo.RecordPayment(ctx, txn, party.PartyID, party.Type); err != nil {
		logger.Error("Failed to record payment",
			slog.String("error", err.Error()),
			slog.String("party_id", req.PartyID))
		return fmt.Errorf("failed to record payment: %w", err)
	}

	s.publish("transactions", "create", txn.TransactionID)
	s.publish(summaryCollection(party.Type), "update", party.PartyID)

	logger.Info("Payment recorded",
		slog.String("party_id", req.PartyID),
		slog.String("amount", req.Amount.String()))
	return nil
}
