package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sabzimandi/mandi_backend/internal/apperrors"
	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	portssvc "github.com/sabzimandi/mandi_backend/internal/core/ports/services"
	"github.com/sabzimandi/mandi_backend/internal/core/services"
	"github.com/sabzimandi/mandi_backend/internal/dto"
)

type PartyServiceTestSuite struct {
	suite.Suite
	mockPartyRepo   *MockPartyRepository
	mockBalanceRepo *MockBalanceRepository
	publisher       *RecordingPublisher
	service         portssvc.PartySvcFacade
}

func (suite *PartyServiceTestSuite) SetupTest() {
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockBalanceRepo = new(MockBalanceRepository)
	suite.publisher = new(RecordingPublisher)
	suite.service = services.NewPartyService(suite.mockPartyRepo, suite.mockBalanceRepo, suite.publisher)
}

func (suite *PartyServiceTestSuite) TestCreateParty_Success() {
	ctx := context.Background()
	req := dto.CreatePartyRequest{
		Type:    domain.PartySupplier,
		Name:    "Ramesh Traders",
		Contact: "9876543210",
		Code:    "042",
	}

	suite.mockPartyRepo.On("FindPartyByName", ctx, domain.PartySupplier, "Ramesh Traders").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPartyRepo.On("ListParties", ctx, domain.PartySupplier).
		Return([]domain.Party{}, nil).Once()
	suite.mockPartyRepo.On("SaveParty", ctx, mock.MatchedBy(func(p domain.Party) bool {
		return p.Name == "Ramesh Traders" && p.Type == domain.PartySupplier && p.Code == "042" && p.PartyID != ""
	}), mock.MatchedBy(func(s domain.PaymentDetail) bool {
		return s.TotalAmount.IsZero() && s.PaidAmount.IsZero() && s.DueAmount.IsZero()
	})).Return(nil).Once()

	party, err := suite.service.CreateParty(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(party)
	suite.Equal("Ramesh Traders", party.Name)

	events := suite.publisher.Events()
	suite.Require().Len(events, 2)
	suite.Equal("suppliers", events[0].Collection)
	suite.Equal("supplierPayments", events[1].Collection)
	suite.mockPartyRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestCreateParty_DuplicateName() {
	ctx := context.Background()
	existing := &domain.Party{PartyID: uuid.NewString(), Type: domain.PartyCustomer, Name: "Mohan"}

	suite.mockPartyRepo.On("FindPartyByName", ctx, domain.PartyCustomer, "Mohan").
		Return(existing, nil).Once()

	_, err := suite.service.CreateParty(ctx, dto.CreatePartyRequest{
		Type: domain.PartyCustomer,
		Name: "Mohan",
	})

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Empty(suite.publisher.Events())
}

func (suite *PartyServiceTestSuite) TestCreateParty_DuplicateCode() {
	ctx := context.Background()

	suite.mockPartyRepo.On("FindPartyByName", ctx, domain.PartyCustomer, "New Shop").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPartyRepo.On("ListParties", ctx, domain.PartyCustomer).
		Return([]domain.Party{
			{PartyID: uuid.NewString(), Type: domain.PartyCustomer, Name: "Old Shop", Code: "007"},
		}, nil).Once()

	_, err := suite.service.CreateParty(ctx, dto.CreatePartyRequest{
		Type: domain.PartyCustomer,
		Name: "New Shop",
		Code: "007",
	})

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *PartyServiceTestSuite) TestDeleteParty_MissingIsNoOp() {
	ctx := context.Background()
	partyID := uuid.NewString()

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteParty(ctx, partyID)

	suite.Require().NoError(err)
	suite.Empty(suite.publisher.Events())
	suite.mockPartyRepo.AssertNotCalled(suite.T(), "DeleteParty", ctx, partyID)
}

func (suite *PartyServiceTestSuite) TestGetBalance_WalkInClampedToZero() {
	ctx := context.Background()
	partyID := uuid.NewString()

	suite.mockBalanceRepo.On("FindSummaryByPartyID", ctx, partyID).
		Return(&domain.PaymentDetail{
			PartyID:     partyID,
			PartyType:   domain.PartyCustomer,
			PartyName:   "Walk-in",
			Code:        domain.WalkInCode,
			TotalAmount: decimal.NewFromInt(5000),
			PaidAmount:  decimal.NewFromInt(5000),
			DueAmount:   decimal.NewFromInt(120),
		}, nil).Once()

	summary, err := suite.service.GetBalance(ctx, partyID)

	suite.Require().NoError(err)
	suite.True(summary.DueAmount.IsZero(), "walk-in due must read as zero")
}

func (suite *PartyServiceTestSuite) TestCorrectBalance_BackSolvesPaid() {
	ctx := context.Background()
	partyID := uuid.NewString()

	suite.mockBalanceRepo.On("FindSummaryByPartyID", ctx, partyID).
		Return(&domain.PaymentDetail{
			PartyID:     partyID,
			PartyType:   domain.PartySupplier,
			PartyName:   "Ramesh Traders",
			TotalAmount: decimal.NewFromInt(1000),
			PaidAmount:  decimal.NewFromInt(400),
			DueAmount:   decimal.NewFromInt(600),
		}, nil).Once()
	suite.mockBalanceRepo.On("UpdateSummary", ctx, mock.MatchedBy(func(s domain.PaymentDetail) bool {
		return s.DueAmount.Equal(decimal.NewFromInt(250)) &&
			s.PaidAmount.Equal(decimal.NewFromInt(750)) &&
			s.TotalAmount.Equal(decimal.NewFromInt(1000))
	})).Return(nil).Once()

	summary, err := suite.service.CorrectBalance(ctx, partyID, dto.CorrectBalanceRequest{
		DueAmount: decimal.NewFromInt(250),
	})

	suite.Require().NoError(err)
	suite.True(summary.PaidAmount.Equal(decimal.NewFromInt(750)))

	events := suite.publisher.Events()
	suite.Require().Len(events, 1)
	suite.Equal("supplierPayments", events[0].Collection)
	suite.mockBalanceRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestUpdateParty_NotFound() {
	ctx := context.Background()
	partyID := uuid.NewString()
	name := "Renamed"

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateParty(ctx, partyID, dto.UpdatePartyRequest{Name: &name})

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestPartyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartyServiceTestSuite))
}
