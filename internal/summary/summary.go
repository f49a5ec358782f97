// Package summary computes monthly spending reports from stored
// transactions, categories, and budgets.
package summary

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// CategoryTotal is one category's spending within a month.
type CategoryTotal struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
	Total      string `json:"total"`
	Budget     string `json:"budget,omitempty"`
	Count      int    `json:"count"`
}

// Monthly is the report for one calendar month.
type Monthly struct {
	Month      string          `json:"month"`
	Income     string          `json:"income"`
	Expenses   string          `json:"expenses"`
	Net        string          `json:"net"`
	Categories []CategoryTotal `json:"categories"`
}

// Build aggregates one month of transactions. Positive amounts count as
// income, negative as expenses; expense totals are reported as positive
// magnitudes. Transactions whose amount fails to parse are ignored.
func Build(month string, txns []model.Transaction, categories []model.Category, budgets []model.Budget) Monthly {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	budgetFor := make(map[string]string, len(budgets))
	for _, b := range budgets {
		budgetFor[b.CategoryID] = b.Amount
	}

	income := decimal.Zero
	expenses := decimal.Zero
	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)

	for _, txn := range txns {
		amount, err := decimal.NewFromString(txn.Amount)
		if err != nil {
			continue
		}
		if amount.IsNegative() {
			expenses = expenses.Add(amount.Neg())
			totals[txn.CategoryID] = totals[txn.CategoryID].Add(amount.Neg())
			counts[txn.CategoryID]++
		} else {
			income = income.Add(amount)
		}
	}

	report := Monthly{
		Month:    month,
		Income:   income.StringFixed(2),
		Expenses: expenses.StringFixed(2),
		Net:      income.Sub(expenses).StringFixed(2),
	}
	for id, total := range totals {
		name := names[id]
		if name == "" {
			name = "Uncategorized"
		}
		report.Categories = append(report.Categories, CategoryTotal{
			CategoryID: id,
			Name:       name,
			Total:      total.StringFixed(2),
			Budget:     budgetFor[id],
			Count:      counts[id],
		})
	}
	// Biggest spend first; ties break on name for stable output.
	sort.Slice(report.Categories, func(i, j int) bool {
		a, _ := decimal.NewFromString(report.Categories[i].Total)
		b, _ := decimal.NewFromString(report.Categories[j].Total)
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return report.Categories[i].Name < report.Categories[j].Name
	})
	return report
}
