package services

import (
	"context"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	"github.com/sabzimandi/mandi_backend/internal/dto"
)

// TransactionSvcFacade exposes the transaction log and its two write paths:
// billed batches and standalone payments.
type TransactionSvcFacade interface {
	// ListTransactions returns the full log sorted for display.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// RecordBatch turns a cart of line items plus a collected amount into one
	// atomic bill. Returns the per-date bill number assigned at commit.
	RecordBatch(ctx context.Context, req dto.CreateTransactionBatchRequest) (int, error)

	// RecordPayment records a standalone payment against a party and adjusts
	// its balance summary.
	RecordPayment(ctx context.Context, req dto.CreatePaymentRequest) error
}
