// Package services implements the business logic of the application,
// orchestrating repositories and pushing committed changes to the event
// publisher.
package services

import (
	"github.com/sabzimandi/mandi_backend/internal/cache"
	portsrepo "github.com/sabzimandi/mandi_backend/internal/core/ports/repositories"
	portssvc "github.com/sabzimandi/mandi_backend/internal/core/ports/services"
)

// NewServiceContainer wires every service with its repositories. events and
// productCache may be nil; the services degrade gracefully without them.
func NewServiceContainer(repos portsrepo.RepositoryProvider, productCache *cache.Cache, events portssvc.EventPublisher) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Party:        NewPartyService(repos.PartyRepo, repos.BalanceRepo, events),
		Transaction:  NewTransactionService(repos.TransactionRepo, repos.PartyRepo, events),
		Ledger:       NewLedgerService(repos.PartyRepo, repos.TransactionRepo, repos.BalanceRepo),
		History:      NewHistoryService(repos.TransactionRepo),
		Product:      NewProductService(repos.ProductRepo, productCache, events),
		DailySummary: NewDailySummaryService(repos.DailySummaryRepo, events),
	}
}
