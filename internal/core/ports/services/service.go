package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Party        PartySvcFacade
	Transaction  TransactionSvcFacade
	Ledger       LedgerSvcFacade
	History      HistorySvcFacade
	Product      ProductSvcFacade
	DailySummary DailySummarySvcFacade
}

// ChangeEvent describes a committed record mutation, pushed to stream
// subscribers after the store transaction commits.
type ChangeEvent struct {
	Collection string `json:"collection"`
	Action     string `json:"action"` // create, update, delete
	ID         string `json:"id"`
}

// EventPublisher fans committed change events out to subscribers.
// Implementations must not block the caller.
type EventPublisher interface {
	Publish(evt ChangeEvent)
}
