// Package csvexport renders ledger projections as plain comma-separated
// text for the download helper.
package csvexport

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
)

// LedgerCSV renders the projected ledger rows followed by a blank line and a
// period summary line.
func LedgerCSV(report domain.LedgerReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Date", "Opening Balance", "Purchases", "Paid Amount", "Closing Balance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range report.Rows {
		paid := row.Credit.StringFixed(2)
		if len(row.PaymentMethods) > 0 {
			paid += " (" + strings.Join(row.PaymentMethods, ", ") + ")"
		}
		record := []string{
			row.Date.Format("02/01/2006"),
			row.Opening.StringFixed(2),
			row.Purchases.StringFixed(2),
			paid,
			row.Closing.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	if err := w.Write([]string{}); err != nil {
		return nil, err
	}
	summary := []string{
		"Summary",
		report.OpeningBalance.StringFixed(2),
		report.TotalPurchases.StringFixed(2),
		report.TotalCredit.StringFixed(2),
		report.ClosingBalance.StringFixed(2),
	}
	if err := w.Write(summary); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
