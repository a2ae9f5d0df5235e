package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	portssvc "github.com/sabzimandi/mandi_backend/internal/core/ports/services"
	"github.com/sabzimandi/mandi_backend/internal/core/services"
)

type HistoryServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	service     portssvc.HistorySvcFacade
}

func (suite *HistoryServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewHistoryService(suite.mockTxnRepo)
}

func histDay(d int) time.Time {
	return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
}

func (suite *HistoryServiceTestSuite) TestListBills_GroupsByDateAndBillNumber() {
	ctx := context.Background()
	log := []domain.Transaction{
		{TransactionID: "t1", Date: histDay(2), Party: "Hotel Tandoor", Type: domain.Sale, Item: "Onion", Amount: decimal.NewFromInt(1000), Quantity: decimal.NewFromInt(50), Price: decimal.NewFromInt(20), BillNumber: 2, Payment: domain.MethodCredit},
		{TransactionID: "t2", Date: histDay(2), Party: "Hotel Tandoor", Type: domain.Sale, Item: "Tomato", Amount: decimal.NewFromInt(300), Quantity: decimal.NewFromInt(10), Price: decimal.NewFromInt(30), BillNumber: 2, Payment: domain.MethodCredit},
		{TransactionID: "t3", Date: histDay(2), Party: "Mohan", Type: domain.Sale, Item: "Potato", Amount: decimal.NewFromInt(200), BillNumber: 1, Payment: domain.MethodCash},
		{TransactionID: "t4", Date: histDay(1), Party: "Mohan", Type: domain.Sale, Item: "Potato", Amount: decimal.NewFromInt(150), BillNumber: 1, Payment: domain.MethodCash},
		// Purchase lines and supplier payments must not appear in sale history.
		{TransactionID: "t5", Date: histDay(2), Party: "Ramesh Traders", Type: domain.Purchase, Item: "Onion", Amount: decimal.NewFromInt(900), BillNumber: 1},
		{TransactionID: "t6", Date: histDay(2), Party: "Ramesh Traders", Type: domain.Payment, Item: "Payment Given", Amount: decimal.NewFromInt(400), Credit: decimal.NewFromInt(400)},
		// A customer payment shows up as its own single-row entry.
		{TransactionID: "t7", Date: histDay(2), Party: "Hotel Tandoor", Type: domain.Payment, Item: "Payment Received", Amount: decimal.NewFromInt(500), Debit: decimal.NewFromInt(500), Payment: domain.MethodGPay},
	}
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(log, nil).Once()

	bills, err := suite.service.ListBills(ctx, domain.Sale)

	suite.Require().NoError(err)
	suite.Require().Len(bills, 4)

	// Newest date first, higher bill numbers first within a date.
	suite.Equal(histDay(2), bills[0].Date)
	suite.Equal(2, bills[0].BillNumber)
	suite.Equal("Hotel Tandoor", bills[0].Party)
	suite.Len(bills[0].Items, 2)
	suite.True(bills[0].TotalAmount.Equal(decimal.NewFromInt(1300)))

	suite.Equal(1, bills[1].BillNumber)
	suite.Equal("Mohan", bills[1].Party)

	// The standalone payment carries bill number zero.
	suite.Equal(domain.Payment, bills[2].Type)
	suite.Equal(0, bills[2].BillNumber)
	suite.True(bills[2].TotalAmount.Equal(decimal.NewFromInt(500)))

	suite.Equal(histDay(1), bills[3].Date)
}

func (suite *HistoryServiceTestSuite) TestListBills_PurchaseSideSeesSupplierPayments() {
	ctx := context.Background()
	log := []domain.Transaction{
		{TransactionID: "t1", Date: histDay(2), Party: "Ramesh Traders", Type: domain.Purchase, Item: "Onion", Amount: decimal.NewFromInt(900), BillNumber: 1},
		{TransactionID: "t2", Date: histDay(2), Party: "Ramesh Traders", Type: domain.Payment, Item: "Payment Given", Amount: decimal.NewFromInt(400), Credit: decimal.NewFromInt(400)},
		{TransactionID: "t3", Date: histDay(2), Party: "Hotel Tandoor", Type: domain.Payment, Item: "Payment Received", Amount: decimal.NewFromInt(500), Debit: decimal.NewFromInt(500)},
	}
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(log, nil).Once()

	bills, err := suite.service.ListBills(ctx, domain.Purchase)

	suite.Require().NoError(err)
	suite.Require().Len(bills, 2)
	suite.Equal(domain.Purchase, bills[0].Type)
	suite.Equal("Payment Given", bills[1].Items[0].Name)
}

func (suite *HistoryServiceTestSuite) TestDailyPartyTotals() {
	ctx := context.Background()
	date := histDay(2)
	txns := []domain.Transaction{
		{Date: date, Party: "Hotel Tandoor", Type: domain.Sale, Amount: decimal.NewFromInt(1000)},
		{Date: date, Party: "Mohan", Type: domain.Sale, Amount: decimal.NewFromInt(200)},
		{Date: date, Party: "Hotel Tandoor", Type: domain.Sale, Amount: decimal.NewFromInt(300)},
	}
	suite.mockTxnRepo.On("ListTransactionsByTypeAndDate", ctx, domain.Sale, date).
		Return(txns, nil).Once()

	totals, grandTotal, err := suite.service.DailyPartyTotals(ctx, domain.Sale, date)

	suite.Require().NoError(err)
	suite.Require().Len(totals, 2)
	suite.Equal("Hotel Tandoor", totals[0].Party)
	suite.True(totals[0].Amount.Equal(decimal.NewFromInt(1300)))
	suite.Equal("Mohan", totals[1].Party)
	suite.True(grandTotal.Equal(decimal.NewFromInt(1500)))
}

func (suite *HistoryServiceTestSuite) TestDailyPartyTotals_EmptyDay() {
	ctx := context.Background()
	date := histDay(9)
	suite.mockTxnRepo.On("ListTransactionsByTypeAndDate", ctx, domain.Purchase, date).
		Return([]domain.Transaction{}, nil).Once()

	totals, grandTotal, err := suite.service.DailyPartyTotals(ctx, domain.Purchase, date)

	suite.Require().NoError(err)
	suite.Empty(totals)
	suite.True(grandTotal.IsZero())
}

func TestHistoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryServiceTestSuite))
}
