package repositories

import (
	"context"
	"time"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
)

// TransactionReader defines read operations over the transaction log.
type TransactionReader interface {
	// ListTransactions returns the full log sorted date desc, bill desc,
	// created_at desc.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByParty returns the named party's Sale/Purchase/Payment
	// history, matched case-insensitively, oldest first.
	ListTransactionsByParty(ctx context.Context, name string) ([]domain.Transaction, error)

	// ListTransactionsByTypeAndDate returns transactions of one type on one
	// calendar day.
	ListTransactionsByTypeAndDate(ctx context.Context, txnType domain.TransactionType, date time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines the append-only write paths of the log.
// There is no update or delete: bills are immutable once written.
type TransactionWriter interface {
	// RecordBatch commits a bill atomically: assigns the date's next bill
	// number, inserts the billed lines and the synthetic payment line, creates
	// the party when new, and folds the batch totals into the party's balance
	// summary. Returns the assigned bill number.
	RecordBatch(ctx context.Context, batch domain.TransactionBatch) (int, error)

	// RecordPayment appends a standalone Payment transaction and bumps the
	// party's summary (paid += amount, due -= amount). A missing summary row
	// is tolerated: the transaction is still recorded.
	RecordPayment(ctx context.Context, txn domain.Transaction, partyID string, partyType domain.PartyType) error
}

// TransactionRepositoryFacade combines all transaction-log repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
