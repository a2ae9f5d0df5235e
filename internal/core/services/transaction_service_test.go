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

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo   *MockTransactionRepository
	mockPartyRepo *MockPartyRepository
	publisher     *RecordingPublisher
	service       portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.publisher = new(RecordingPublisher)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockPartyRepo, suite.publisher)
}

func batchRequest() dto.CreateTransactionBatchRequest {
	return dto.CreateTransactionBatchRequest{
		Date:          "2026-08-30",
		Type:          domain.Sale,
		PartyName:     "Hotel Tandoor",
		PaymentMethod: domain.MethodCredit,
		Lines: []dto.BatchLineRequest{
			{Item: "Onion", Quantity: decimal.NewFromInt(50), Price: decimal.NewFromInt(20)},
			{Item: "Tomato", Quantity: decimal.NewFromInt(10), Price: decimal.NewFromInt(30)},
		},
	}
}

func (suite *TransactionServiceTestSuite) TestRecordBatch_CreditSale_NoPaymentLine() {
	ctx := context.Background()
	req := batchRequest()
	existing := &domain.Party{PartyID: uuid.NewString(), Type: domain.PartyCustomer, Name: "Hotel Tandoor"}

	suite.mockPartyRepo.On("FindPartyByName", ctx, domain.PartyCustomer, "Hotel Tandoor").
		Return(existing, nil).Once()
	suite.mockTxnRepo.On("RecordBatch", ctx, mock.MatchedBy(func(b domain.TransactionBatch) bool {
		return !b.PartyIsNew &&
			len(b.Lines) == 2 &&
			b.PaymentLine == nil &&
			b.TotalAmount.Equal(decimal.NewFromInt(1300)) &&
			b.AmountPaid.IsZero() &&
			!b.ClampDueToZero
	})).Return(7, nil).Once()

	billNumber, err := suite.service.RecordBatch(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(7, billNumber)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordBatch_CashSale_FullPaymentLine() {
	ctx := context.Background()
	req := batchRequest()
	req.PaymentMethod = domain.MethodCash
	existing := &domain.Party{PartyID: uuid.NewString(), Type: domain.PartyCustomer, Name: "Hotel Tandoor"}

	suite.mockPartyRepo.On("FindPartyByName", ctx, domain.PartyCustomer, "Hotel Tandoor").
		Return(existing, nil).Once()
	suite.mockTxnRepo.On("RecordBatch", ctx, mock.MatchedBy(func(b domain.TransactionBatch) bool {
		return b.PaymentLine != nil &&
			b.PaymentLine.Item == "Full Payment during Sale" &&
			b.PaymentLine.Debit.Equal(decimal.NewFromInt(1300)) &&
			b.PaymentLine.Credit.IsZero() &&
			b.AmountPaid.Equal(decimal.NewFromInt(1300))
	})).Return(1, nil).Once()

	_, err := suite.service.RecordBatch(ctx, req)

	suite.Require().NoError(err)
}

func (suite *TransactionServiceTestSuite) TestRecordBatch_PartialPaymentOverride() {
	ctx := context.Background()
	req := batchRequest()
	paid := decimal.NewFromInt(500)
	req.AmountPaid = &paid
	existing := &domain.Party{PartyID: uuid.NewString(), Type: domain.PartyCustomer, Name: "Hotel Tandoor"}

	suite.mockPartyRepo.On("FindPartyByName", ctx, domain.PartyCustomer, "Hotel Tandoor").
		Return(existing, nil).Once()
	suite.mockTxnRepo.On("RecordBatch", ctx, mock.MatchedBy(func(b domain.TransactionBatch) bool {
		return b.PaymentLine != nil &&
			b.PaymentLine.Item == "Partial Payment during Sale" &&
			b.PaymentLine.Amount.Equal(paid)
	})).Return(2, nil).Once()

	_, err := suite.service.RecordBatch(ctx, req)

	suite.Require().NoError(err)
}

func (suite *TransactionServiceTestSuite) TestRecordBatch_WalkInForcesCashInFull() {
	ctx := context.Background()
	req := batchRequest()
	req.PartyName = "Walk-in"
	walkIn := &domain.Party{
		PartyID: uuid.NewString(),
		Type:    domain.PartyCustomer,
		Name:    "Walk-in",
		Code:    domain.WalkInCode,
	}

	suite.mockPartyRepo.On("FindPartyByName", ctx, domain.PartyCustomer, "Walk-in").
		Return(walkIn, nil).Once()
	suite.mockTxnRepo.On("RecordBatch", ctx, mock.MatchedBy(func(b domain.TransactionBatch) bool {
		return b.ClampDueToZero &&
			b.AmountPaid.Equal(decimal.NewFromInt(1300)) &&
			b.PaymentMethod == domain.MethodCash &&
			b.PaymentLine != nil
	})).Return(3, nil).Once()

	_, err := suite.service.RecordBatch(ctx, req)

	suite.Require().NoError(err)
}

func (suite *TransactionServiceTestSuite) TestRecordBatch_PurchaseCreditsPaymentLine() {
	ctx := context.Background()
	req := batchRequest()
	req.Type = domain.Purchase
	req.PaymentMethod = domain.MethodCash
	req.PartyName = "Ramesh Traders"
	supplier := &domain.Party{PartyID: uuid.NewString(), Type: domain.PartySupplier, Name: "Ramesh Traders"}

	suite.mockPartyRepo.On("FindPartyByName", ctx, domain.PartySupplier, "Ramesh Traders").
		Return(supplier, nil).Once()
	suite.mockTxnRepo.On("RecordBatch", ctx, mock.MatchedBy(func(b domain.TransactionBatch) bool {
		return b.PaymentLine != nil &&
			b.PaymentLine.Item == "Full Payment during Purchase" &&
			b.PaymentLine.Credit.Equal(decimal.NewFromInt(1300)) &&
			b.PaymentLine.Debit.IsZero()
	})).Return(4, nil).Once()

	_, err := suite.service.RecordBatch(ctx, req)

	suite.Require().NoError(err)
}

func (suite *TransactionServiceTestSuite) TestRecordBatch_NewPartyCreatedInline() {
	ctx := context.Background()
	req := batchRequest()
	req.PartyContact = "9800000000"

	suite.mockPartyRepo.On("FindPartyByName", ctx, domain.PartyCustomer, "Hotel Tandoor").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTxnRepo.On("RecordBatch", ctx, mock.MatchedBy(func(b domain.TransactionBatch) bool {
		return b.PartyIsNew &&
			b.Party.Name == "Hotel Tandoor" &&
			b.Party.Contact == "9800000000" &&
			b.Party.Type == domain.PartyCustomer
	})).Return(1, nil).Once()

	_, err := suite.service.RecordBatch(ctx, req)

	suite.Require().NoError(err)

	events := suite.publisher.Events()
	suite.Require().NotEmpty(events)
	suite.Equal("customers", events[0].Collection)
}

func (suite *TransactionServiceTestSuite) TestRecordBatch_OverpaymentRejected() {
	ctx := context.Background()
	req := batchRequest()
	paid := decimal.NewFromInt(2000)
	req.AmountPaid = &paid
	existing := &domain.Party{PartyID: uuid.NewString(), Type: domain.PartyCustomer, Name: "Hotel Tandoor"}

	suite.mockPartyRepo.On("FindPartyByName", ctx, domain.PartyCustomer, "Hotel Tandoor").
		Return(existing, nil).Once()

	_, err := suite.service.RecordBatch(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "RecordBatch", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRecordBatch_InvalidDate() {
	ctx := context.Background()
	req := batchRequest()
	req.Date = "30-08-2026"

	_, err := suite.service.RecordBatch(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestRecordPayment_CustomerDebits() {
	ctx := context.Background()
	partyID := uuid.NewString()
	customer := &domain.Party{PartyID: partyID, Type: domain.PartyCustomer, Name: "Hotel Tandoor"}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(customer, nil).Once()
	suite.mockTxnRepo.On("RecordPayment", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.Payment &&
			t.Item == "Payment Received" &&
			t.Debit.Equal(decimal.NewFromInt(800)) &&
			t.Credit.IsZero() &&
			t.Payment == domain.MethodCash
	}), partyID, domain.PartyCustomer).Return(nil).Once()

	err := suite.service.RecordPayment(ctx, dto.CreatePaymentRequest{
		PartyID:   partyID,
		PartyType: domain.PartyCustomer,
		Amount:    decimal.NewFromInt(800),
	})

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordPayment_SupplierCredits() {
	ctx := context.Background()
	partyID := uuid.NewString()
	supplier := &domain.Party{PartyID: partyID, Type: domain.PartySupplier, Name: "Ramesh Traders"}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(supplier, nil).Once()
	suite.mockTxnRepo.On("RecordPayment", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Item == "Payment Given" &&
			t.Credit.Equal(decimal.NewFromInt(500)) &&
			t.Debit.IsZero() &&
			t.Payment == domain.MethodUPI
	}), partyID, domain.PartySupplier).Return(nil).Once()

	err := suite.service.RecordPayment(ctx, dto.CreatePaymentRequest{
		PartyID:       partyID,
		PartyType:     domain.PartySupplier,
		Amount:        decimal.NewFromInt(500),
		PaymentMethod: domain.MethodUPI,
	})

	suite.Require().NoError(err)
}

func (suite *TransactionServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()

	err := suite.service.RecordPayment(ctx, dto.CreatePaymentRequest{
		PartyID:   uuid.NewString(),
		PartyType: domain.PartyCustomer,
		Amount:    decimal.Zero,
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
