package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-dev/fintrack/internal/model"
)

func txn(amount, categoryID string) model.Transaction {
	return model.Transaction{
		Date:       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Amount:     amount,
		CategoryID: categoryID,
	}
}

func TestBuild(t *testing.T) {
	categories := []model.Category{
		{ID: "cat-groc", Name: "Groceries"},
		{ID: "cat-rest", Name: "Restaurants"},
	}
	txns := []model.Transaction{
		txn("-84.27", "cat-groc"),
		txn("-12.50", "cat-groc"),
		txn("-5.75", "cat-rest"),
		txn("3500.00", ""),
	}
	budgets := []model.Budget{
		{CategoryID: "cat-groc", Month: "2025-01", Amount: "400.00"},
	}

	report := Build("2025-01", txns, categories, budgets)

	assert.Equal(t, "2025-01", report.Month)
	assert.Equal(t, "3500.00", report.Income)
	assert.Equal(t, "102.52", report.Expenses)
	assert.Equal(t, "3397.48", report.Net)

	require.Len(t, report.Categories, 2)
	assert.Equal(t, "Groceries", report.Categories[0].Name, "biggest spend first")
	assert.Equal(t, "96.77", report.Categories[0].Total)
	assert.Equal(t, "400.00", report.Categories[0].Budget)
	assert.Equal(t, 2, report.Categories[0].Count)
	assert.Equal(t, "5.75", report.Categories[1].Total)
	assert.Empty(t, report.Categories[1].Budget)
}

func TestBuildEmptyMonth(t *testing.T) {
	report := Build("2025-06", nil, nil, nil)

	assert.Equal(t, "0.00", report.Income)
	assert.Equal(t, "0.00", report.Expenses)
	assert.Equal(t, "0.00", report.Net)
	assert.Empty(t, report.Categories)
}

func TestBuildUnknownCategoryName(t *testing.T) {
	report := Build("2025-01", []model.Transaction{txn("-10.00", "")}, nil, nil)

	require.Len(t, report.Categories, 1)
	assert.Equal(t, "Uncategorized", report.Categories[0].Name)
}
