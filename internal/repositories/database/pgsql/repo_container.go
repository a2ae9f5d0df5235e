package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/sabzimandi/mandi_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	partyRepo := newPgxPartyRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	balanceRepo := newPgxBalanceRepository(dbPool)
	productRepo := newPgxProductRepository(dbPool)
	dailySummaryRepo := newPgxDailySummaryRepository(dbPool)

	return portsrepo.RepositoryProvider{
		PartyRepo:        partyRepo,
		TransactionRepo:  transactionRepo,
		BalanceRepo:      balanceRepo,
		ProductRepo:      productRepo,
		DailySummaryRepo: dailySummaryRepo,
	}
}
