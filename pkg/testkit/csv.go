// Package testkit provides mock envelopes, encoding helpers, validators and
// assertion helpers for exercising the forecasting backend's contracts.
package testkit

import (
	"strconv"
	"strings"

	"vyapar-testkit/pkg/models"
)

// salesCSVHeader is the column set expected by the sales import path.
var salesCSVHeader = []string{"date", "sku", "quantity"}

// CSVContent joins headers and rows into CSV text: a header line followed by
// newline-separated comma-joined rows. With no rows the result is just the
// header line and a trailing newline.
func CSVContent(headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	b.WriteString("\n")
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Join(row, ","))
	}
	return b.String()
}

// SalesCSV renders sales records as import-ready CSV with the fixed
// date,sku,quantity columns. Empty input yields only the header line.
func SalesCSV(records []models.SalesRecord) string {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{r.Date, r.SKU, strconv.Itoa(r.Quantity)}
	}
	return CSVContent(salesCSVHeader, rows)
}
