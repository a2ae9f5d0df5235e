package accounting

import (
	"sort"
	"time"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PartyTotals sums a party's all-time billed and paid amounts from the log.
// billedType is Purchase for suppliers and Sale for customers; Payment rows
// always count toward paid.
func PartyTotals(log []domain.Transaction, partyName string, billedType domain.TransactionType) (billed, paid decimal.Decimal) {
	billed, paid = decimal.Zero, decimal.Zero
	for _, t := range log {
		if !t.MatchesParty(partyName) {
			continue
		}
		switch t.Type {
		case billedType:
			billed = billed.Add(t.Amount)
		case domain.Payment:
			paid = paid.Add(t.Amount)
		}
	}
	return billed, paid
}

// InitialAdjustment reconciles a stored due amount with the logged history:
// any balance the log cannot explain is treated as a pre-log opening anchor.
func InitialAdjustment(log []domain.Transaction, partyName string, billedType domain.TransactionType, currentDue decimal.Decimal) decimal.Decimal {
	billed, paid := PartyTotals(log, partyName, billedType)
	return currentDue.Sub(billed.Sub(paid))
}

// ProjectLedger derives the day-grouped running balance for one party over
// [from, to]. A nil from means "from the beginning"; a nil to means
// "through today". Day boundaries are inclusive and time-of-day is ignored.
// The input log is not modified; projecting twice yields identical output.
func ProjectLedger(log []domain.Transaction, partyName string, billedType domain.TransactionType, currentDue decimal.Decimal, from, to *time.Time) domain.LedgerReport {
	var history []domain.Transaction
	for _, t := range log {
		if t.MatchesParty(partyName) && (t.Type == billedType || t.Type == domain.Payment) {
			history = append(history, t)
		}
	}

	opening := InitialAdjustment(history, partyName, billedType, currentDue)

	var fromDay, toDay time.Time
	if from != nil {
		fromDay = domain.Day(*from)
		for _, t := range history {
			if !domain.Day(t.Date).Before(fromDay) {
				continue
			}
			if t.Type == billedType {
				opening = opening.Add(t.Amount)
			} else {
				opening = opening.Sub(t.Amount)
			}
		}
	}
	if to != nil {
		toDay = domain.Day(*to)
	}

	// Group the in-range transactions by calendar day.
	type dayGroup struct {
		date      time.Time
		purchases decimal.Decimal
		credit    decimal.Decimal
		methods   []string
	}
	groups := make(map[string]*dayGroup)
	totalPurchases, totalCredit := decimal.Zero, decimal.Zero
	for _, t := range history {
		day := domain.Day(t.Date)
		if from != nil && day.Before(fromDay) {
			continue
		}
		if to != nil && day.After(toDay) {
			continue
		}

		key := day.Format("2006-01-02")
		g, ok := groups[key]
		if !ok {
			g = &dayGroup{date: day, purchases: decimal.Zero, credit: decimal.Zero}
			groups[key] = g
		}
		if t.Type == billedType {
			g.purchases = g.purchases.Add(t.Amount)
			totalPurchases = totalPurchases.Add(t.Amount)
		} else {
			g.credit = g.credit.Add(t.Amount)
			totalCredit = totalCredit.Add(t.Amount)
			if t.Payment != "" && !contains(g.methods, t.Payment) {
				g.methods = append(g.methods, t.Payment)
			}
		}
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Walk oldest to newest carrying the running balance.
	rows := make([]domain.LedgerRow, 0, len(keys))
	balance := opening
	for _, k := range keys {
		g := groups[k]
		closing := balance.Add(g.purchases).Sub(g.credit)
		rows = append(rows, domain.LedgerRow{
			Date:           g.date,
			Opening:        balance,
			Purchases:      g.purchases,
			Credit:         g.credit,
			PaymentMethods: g.methods,
			Closing:        closing,
		})
		balance = closing
	}

	// Newest first for display.
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	return domain.LedgerReport{
		Rows:           rows,
		OpeningBalance: opening,
		TotalPurchases: totalPurchases,
		TotalCredit:    totalCredit,
		ClosingBalance: balance,
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
