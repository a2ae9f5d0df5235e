package csvexport_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	"github.com/sabzimandi/mandi_backend/internal/utils/csvexport"
)

func TestLedgerCSV(t *testing.T) {
	report := domain.LedgerReport{
		Rows: []domain.LedgerRow{
			{
				Date:      time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
				Opening:   decimal.NewFromInt(600),
				Purchases: decimal.NewFromInt(500),
				Credit:    decimal.Zero,
				Closing:   decimal.NewFromInt(1100),
			},
			{
				Date:           time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
				Opening:        decimal.Zero,
				Purchases:      decimal.NewFromInt(1000),
				Credit:         decimal.NewFromInt(400),
				PaymentMethods: []string{domain.MethodCash, domain.MethodUPI},
				Closing:        decimal.NewFromInt(600),
			},
		},
		OpeningBalance: decimal.Zero,
		TotalPurchases: decimal.NewFromInt(1500),
		TotalCredit:    decimal.NewFromInt(400),
		ClosingBalance: decimal.NewFromInt(1100),
	}

	data, err := csvexport.LedgerCSV(report)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Date,Opening Balance,Purchases,Paid Amount,Closing Balance", lines[0])
	assert.Equal(t, "03/08/2026,600.00,500.00,0.00,1100.00", lines[1])
	assert.Equal(t, `01/08/2026,0.00,1000.00,"400.00 (Cash, UPI/Digital)",600.00`, lines[2])
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "Summary,0.00,1500.00,400.00,1100.00", lines[4])
}

func TestLedgerCSV_EmptyReport(t *testing.T) {
	report := domain.LedgerReport{
		OpeningBalance: decimal.NewFromInt(250),
		TotalPurchases: decimal.Zero,
		TotalCredit:    decimal.Zero,
		ClosingBalance: decimal.NewFromInt(250),
	}

	data, err := csvexport.LedgerCSV(report)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "Date,Opening Balance")
	assert.Contains(t, text, "Summary,250.00,0.00,0.00,250.00")
}
