// Package bankcsv parses heterogeneous bank CSV exports into normalized
// transaction rows.
package bankcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Row is one normalized transaction row from a bank export.
// Amount and Balance are decimal strings with two fraction digits, sign
// preserved (negative = debit). Type, Balance, and Category are blank when
// the export has no such column.
type Row struct {
	Date        time.Time
	Description string
	Amount      string
	Type        string
	Balance     string
	Category    string
}

// FormatError reports a file this parser cannot work with at all, as
// opposed to individual rows it drops.
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string { return e.Message }

// Canonical column keys after header aliasing.
const (
	colDate        = "date"
	colDescription = "description"
	colAmount      = "amount"
	colType        = "type"
	colBalance     = "balance"
	colCategory    = "category"
)

// columnAliases lists accepted header spellings per canonical column, in
// priority order. Banks disagree on naming; exact (normalized) matches win
// over containment matches, so "Post Date" beats "Transaction Date" for the
// date column while "Chase Category" still resolves as a category hint.
// Headers matching nothing are ignored.
var columnAliases = []struct {
	key     string
	aliases []string
}{
	{colDate, []string{"date", "post date"}},
	{colDescription, []string{"description", "details", "transaction"}},
	{colAmount, []string{"amount"}},
	{colType, []string{"type"}},
	{colBalance, []string{"balance"}},
	{colCategory, []string{"category"}},
}

// unknownDescription substitutes for blank description cells.
const unknownDescription = "Unknown"

// dateLayouts are tried in order when parsing date cells.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"2006/01/02",
}

// Parse reads a bank CSV export and returns its usable rows in source
// order. Rows with a blank date or amount cell, or an unparseable date, are
// dropped rather than failing the file. A *FormatError is returned when the
// file is empty, has no data rows, or lacks a resolvable date, description,
// or amount column.
func Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // bank exports pad rows inconsistently

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, &FormatError{Message: "CSV file is empty"}
	}

	cols := resolveColumns(records[0])
	for _, required := range []string{colDate, colDescription, colAmount} {
		if _, ok := cols[required]; !ok {
			return nil, &FormatError{Message: "CSV must contain date, description, and amount columns"}
		}
	}
	if len(records) == 1 {
		return nil, &FormatError{Message: "CSV file has no data rows"}
	}

	var rows []Row
	for _, rec := range records[1:] {
		row, ok := parseRow(rec, cols)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// resolveColumns maps canonical column keys to indexes in the header row.
// Each header index is claimed by at most one column.
func resolveColumns(header []string) map[string]int {
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))
	}

	cols := make(map[string]int, len(columnAliases))
	claimed := make(map[int]bool, len(header))
	for _, col := range columnAliases {
		if i, ok := findColumn(names, claimed, col.aliases); ok {
			cols[col.key] = i
			claimed[i] = true
		}
	}
	return cols
}

// findColumn locates the first unclaimed header matching an alias, trying
// exact matches across all aliases before containment matches.
func findColumn(names []string, claimed map[int]bool, aliases []string) (int, bool) {
	for _, a := range aliases {
		for i, n := range names {
			if !claimed[i] && n == a {
				return i, true
			}
		}
	}
	for _, a := range aliases {
		for i, n := range names {
			if !claimed[i] && strings.Contains(n, a) {
				return i, true
			}
		}
	}
	return 0, false
}

// cell returns the trimmed value of a resolved column, or "" when the
// column is absent or the row is too short.
func cell(rec []string, cols map[string]int, key string) string {
	i, ok := cols[key]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func parseRow(rec []string, cols map[string]int) (Row, bool) {
	dateCell := cell(rec, cols, colDate)
	amountCell := cell(rec, cols, colAmount)
	if dateCell == "" || amountCell == "" {
		return Row{}, false
	}

	date, ok := parseDate(dateCell)
	if !ok {
		return Row{}, false
	}

	desc := cell(rec, cols, colDescription)
	if desc == "" {
		desc = unknownDescription
	}

	row := Row{
		Date:        date,
		Description: desc,
		Amount:      normalizeAmount(amountCell),
		Type:        cell(rec, cols, colType),
		Category:    cell(rec, cols, colCategory),
	}
	if balance := cell(rec, cols, colBalance); balance != "" {
		row.Balance = normalizeAmount(balance)
	}
	return row, true
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizeAmount strips currency formatting and renders the value with two
// fraction digits. Unparsable amounts normalize to "0".
func normalizeAmount(s string) string {
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "0"
	}
	return d.StringFixed(2)
}
