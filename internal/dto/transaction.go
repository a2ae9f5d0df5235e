package dto

import (
	"time"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BatchLineRequest is one billed line in a transaction batch.
type BatchLineRequest struct {
	Item     string          `json:"item" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
}

// CreateTransactionBatchRequest is a cart of same-day line items for one
// party, plus the amount collected at the counter.
type CreateTransactionBatchRequest struct {
	Date          string                 `json:"date" binding:"required,datetime=2006-01-02"`
	Type          domain.TransactionType `json:"type" binding:"required,oneof=Sale Purchase"`
	PartyName     string                 `json:"partyName" binding:"required"`
	PartyContact  string                 `json:"partyContact"`
	PartyAddress  string                 `json:"partyAddress"`
	PaymentMethod string                 `json:"paymentMethod" binding:"required"`
	// AmountPaid overrides the default collection rule when set.
	AmountPaid *decimal.Decimal   `json:"amountPaid"`
	Lines      []BatchLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// BatchResponse returns the bill number assigned at commit.
type BatchResponse struct {
	BillNumber int `json:"billNumber"`
}

// CreatePaymentRequest records a standalone payment against a party.
type CreatePaymentRequest struct {
	PartyID       string           `json:"partyId" binding:"required"`
	PartyType     domain.PartyType `json:"partyType" binding:"required,oneof=Supplier Customer"`
	Amount        decimal.Decimal  `json:"amount" binding:"required"`
	PaymentMethod string           `json:"paymentMethod"`
}

// TransactionResponse defines the data returned for a logged transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Date          string                 `json:"date"`
	Party         string                 `json:"party"`
	Type          domain.TransactionType `json:"type"`
	Item          string                 `json:"item"`
	Amount        decimal.Decimal        `json:"amount"`
	Payment       string                 `json:"payment"`
	Quantity      decimal.Decimal        `json:"quantity"`
	Price         decimal.Decimal        `json:"price"`
	BillNumber    int                    `json:"billNumber"`
	Debit         decimal.Decimal        `json:"debit"`
	Credit        decimal.Decimal        `json:"credit"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Date:          t.Date.Format("2006-01-02"),
		Party:         t.Party,
		Type:          t.Type,
		Item:          t.Item,
		Amount:        t.Amount,
		Payment:       t.Payment,
		Quantity:      t.Quantity,
		Price:         t.Price,
		BillNumber:    t.BillNumber,
		Debit:         t.Debit,
		Credit:        t.Credit,
		CreatedAt:     t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
