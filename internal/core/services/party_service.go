package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sabzimandi/mandi_backend/internal/apperrors"
	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	portsrepo "github.com/sabzimandi/mandi_backend/internal/core/ports/repositories"
	portssvc "github.com/sabzimandi/mandi_backend/internal/core/ports/services"
	"github.com/sabzimandi/mandi_backend/internal/dto"
	"github.com/sabzimandi/mandi_backend/internal/middleware"
)

// Collection names used on the change feed; they mirror the store layout.
func partyCollection(t domain.PartyType) string {
	if t == domain.PartySupplier {
		return "suppliers"
	}
	return "customers"
}

func summaryCollection(t domain.PartyType) string {
	if t == domain.PartySupplier {
		return "supplierPayments"
	}
	return "customerPayments"
}

// partyService manages suppliers, customers and their balance summaries.
type partyService struct {
	partyRepo   portsrepo.PartyRepositoryFacade
	balanceRepo portsrepo.BalanceRepositoryFacade
	events      portssvc.EventPublisher
}

// NewPartyService creates a new PartyService.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade, balanceRepo portsrepo.BalanceRepositoryFacade, events portssvc.EventPublisher) portssvc.PartySvcFacade {
	return &partyService{
		partyRepo:   partyRepo,
		balanceRepo: balanceRepo,
		events:      events,
	}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

func (s *partyService) publish(collection, action, id string) {
	if s.events != nil {
		s.events.Publish(portssvc.ChangeEvent{Collection: collection, Action: action, ID: id})
	}
}

// CreateParty persists a new party together with a zeroed balance summary.
func (s *partyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: party name is required", apperrors.ErrValidation)
	}

	// Duplicate name check, case-insensitive within the party type.
	existing, err := s.partyRepo.FindPartyByName(ctx, req.Type, name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for duplicate party name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s with this name already exists", apperrors.ErrDuplicate, strings.ToLower(string(req.Type)))
	}

	if req.Code != "" {
		if err := s.checkDuplicateCode(ctx, req.Type, req.Code, ""); err != nil {
			return nil, err
		}
	}

	party := domain.Party{
		PartyID: uuid.NewString(),
		Type:    req.Type,
		Name:    name,
		Contact: req.Contact,
		Address: req.Address,
		Code:    req.Code,
	}
	summary := domain.PaymentDetail{
		PartyID:       party.PartyID,
		PartyType:     party.Type,
		PartyName:     party.Name,
		Code:          party.Code,
		TotalAmount:   decimal.Zero,
		PaidAmount:    decimal.Zero,
		DueAmount:     decimal.Zero,
		PaymentMethod: domain.MethodCredit,
	}

	if err := s.partyRepo.SaveParty(ctx, party, summary); err != nil {
		logger.Error("Failed to save party", slog.String("error", err.Error()), slog.String("party_name", party.Name))
		return nil, fmt.Errorf("failed to save party: %w", err)
	}

	s.publish(partyCollection(party.Type), "create", party.PartyID)
	s.publish(summaryCollection(party.Type), "create", party.PartyID)
	logger.Info("Party created", slog.String("party_id", party.PartyID), slog.String("type", string(party.Type)))
	return &party, nil
}

// GetPartyByID retrieves a specific party.
func (s *partyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	return party, nil
}

// ListParties retrieves all parties of one type.
func (s *partyService) ListParties(ctx context.Context, partyType domain.PartyType) ([]domain.Party, error) {
	return s.partyRepo.ListParties(ctx, partyType)
}

// UpdateParty applies a partial update to a party. Renames propagate to the
// balance summary inside the repository.
func (s *partyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		party.Name = strings.TrimSpace(*req.Name)
		updated = true
	}
	if req.Contact != nil {
		party.Contact = *req.Contact
		updated = true
	}
	if req.Address != nil {
		party.Address = *req.Address
		updated = true
	}
	if req.Code != nil {
		if *req.Code != "" {
			if err := s.checkDuplicateCode(ctx, party.Type, *req.Code, party.PartyID); err != nil {
				return nil, err
			}
		}
		party.Code = *req.Code
		updated = true
	}

	if !updated {
		return party, nil
	}

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		logger.Error("Failed to update party", slog.String("error", err.Error()), slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to update party: %w", err)
	}

	s.publish(partyCollection(party.Type), "update", party.PartyID)
	s.publish(summaryCollection(party.Type), "update", party.PartyID)
	return party, nil
}

// DeleteParty removes a party, cascading to its balance summary. Deleting a
// party that is already gone is a no-op.
func (s *partyService) DeleteParty(ctx context.Context, partyID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.partyRepo.DeleteParty(ctx, partyID); err != nil {
		logger.Error("Failed to delete party", slog.String("error", err.Error()), slog.String("party_id", partyID))
		return fmt.Errorf("failed to delete party: %w", err)
	}

	s.publish(partyCollection(party.Type), "delete", partyID)
	s.publish(summaryCollection(party.Type), "delete", partyID)
	logger.Info("Party deleted", slog.String("party_id", partyID))
	return nil
}

// GetBalance retrieves one party's balance summary with the walk-in clamp
// applied.
func (s *partyService) GetBalance(ctx context.Context, partyID string) (*domain.PaymentDetail, error) {
	summary, err := s.balanceRepo.FindSummaryByPartyID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	clampWalkIn(summary)
	return summary, nil
}

// ListBalances retrieves all summaries for one party type, walk-in clamped.
func (s *partyService) ListBalances(ctx context.Context, partyType domain.PartyType) ([]domain.PaymentDetail, error) {
	summaries, err := s.balanceRepo.ListSummaries(ctx, partyType)
	if err != nil {
		return nil, err
	}
	for i := range summaries {
		clampWalkIn(&summaries[i])
	}
	return summaries, nil
}

// CorrectBalance back-solves paidAmount from a user-entered dueAmount, the
// only way a summary changes outside the transaction write path.
func (s *partyService) CorrectBalance(ctx context.Context, partyID string, req dto.CorrectBalanceRequest) (*domain.PaymentDetail, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	summary, err := s.balanceRepo.FindSummaryByPartyID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	summary.DueAmount = req.DueAmount
	summary.PaidAmount = summary.TotalAmount.Sub(req.DueAmount)
	if req.PaymentMethod != nil {
		summary.PaymentMethod = *req.PaymentMethod
	}

	if err := s.balanceRepo.UpdateSummary(ctx, *summary); err != nil {
		logger.Error("Failed to update balance summary", slog.String("error", err.Error()), slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to update balance summary: %w", err)
	}

	s.publish(summaryCollection(summary.PartyType), "update", partyID)
	logger.Info("Balance corrected", slog.String("party_id", partyID), slog.String("due_amount", req.DueAmount.String()))
	clampWalkIn(summary)
	return summary, nil
}

// checkDuplicateCode rejects a code already assigned to another party of the
// same type. excludeID skips the party being edited.
func (s *partyService) checkDuplicateCode(ctx context.Context, partyType domain.PartyType, code, excludeID string) error {
	parties, err := s.partyRepo.ListParties(ctx, partyType)
	if err != nil {
		return fmt.Errorf("failed to check for duplicate party code: %w", err)
	}
	for _, p := range parties {
		if p.Code == code && p.PartyID != excludeID {
			return fmt.Errorf("%w: %s with this code already exists", apperrors.ErrDuplicate, strings.ToLower(string(partyType)))
		}
	}
	return nil
}

// clampWalkIn forces the walk-in customer's reported due to zero regardless
// of the stored value.
func clampWalkIn(summary *domain.PaymentDetail) {
	if summary.PartyType == domain.PartyCustomer && summary.Code == domain.WalkInCode {
		summary.DueAmount = decimal.Zero
	}
}
