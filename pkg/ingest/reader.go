// Package ingest reads bank and investment statement exports (CSV) and
// normalizes them into ledger transactions: standard column names, calendar
// dates, and money values scaled to integer cents.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shunichi-ikebuchi/finance-ledger/pkg/ledger"
)

// headerMapping normalizes the column names seen across bank exports to the
// ledger's standard columns.
var headerMapping = map[string]string{
	"Transaction ID":   "No.",
	"Transaction Date": "Date",
	"Posting Date":     "Date",
	"Amount":           "Payment",
	"Debit":            "Payment",
	"Credit":           "Deposit",
	"Memo":             "Note",
	"Payee Name":       "Payee",
}

// dateLayouts are tried in order when parsing statement dates.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"Jan 2, 2006",
}

// ReadStatementFile reads a CSV statement from disk. The account name is
// derived from the file name, e.g. "Ally Checking.csv" → "Ally Checking".
func ReadStatementFile(path string) ([]ledger.Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement file %s: %w", path, err)
	}
	defer file.Close()

	account := AccountNameFromFile(path)
	txns, err := ReadStatement(file, account)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return txns, nil
}

// ReadStatement parses one CSV statement for a single account. The first
// record is the header; unknown columns are ignored and missing columns
// default to empty/zero. Rows with no monetary effect are dropped.
func ReadStatement(r io.Reader, account string) ([]ledger.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if mapped, ok := headerMapping[name]; ok {
			name = mapped
		}
		// First occurrence wins, e.g. when both Amount and Debit map to Payment.
		if _, exists := cols[name]; !exists {
			cols[name] = i
		}
	}
	if _, ok := cols["Date"]; !ok {
		return nil, fmt.Errorf("statement has no date column")
	}

	var txns []ledger.Transaction
	var seq int64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record: %w", err)
		}

		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		date, err := parseDate(field("Date"))
		if err != nil {
			return nil, err
		}

		t := ledger.Transaction{
			Date:        date,
			Description: field("Description"),
			Payee:       field("Payee"),
			Category:    field("Category"),
			Payment:     ParseAmount(field("Payment")),
			Deposit:     ParseAmount(field("Deposit")),
			Balance:     ParseAmount(field("Balance")),
			Account:     account,
			Note:        field("Note"),
		}
		if t.Payment == 0 && t.Deposit == 0 {
			continue
		}
		t.SequenceID = seq
		seq++
		txns = append(txns, t)
	}

	return ledger.SortByDate(txns), nil
}

// AccountNameFromFile derives the account name from a statement file name.
func AccountNameFromFile(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseAmount converts a textual dollar amount to integer cents. Currency
// symbols, thousands separators and surrounding whitespace are tolerated;
// a parenthesized amount reads as negative. Blank or unparseable input
// coerces to zero, matching the ingestion contract of pre-validated feeds.
func ParseAmount(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	cents := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if negative {
		cents = -cents
	}
	return cents
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return ledger.Date(t.Year(), t.Month(), t.Day()), nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse date %q", s)
}
