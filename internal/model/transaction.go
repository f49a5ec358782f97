package model

import "time"

// Transaction is the durable result of an imported bank CSV row.
// Amount and BalanceAfter are decimal strings with exactly two fraction
// digits; negative = debit/expense, positive = credit/income.
type Transaction struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	AccountID    string    `json:"accountId"`
	Date         time.Time `json:"date"`
	Description  string    `json:"description"`
	Amount       string    `json:"amount"`
	Type         string    `json:"type"`
	BalanceAfter string    `json:"balanceAfter,omitempty"` // empty when the export had no balance column
	CategoryID   string    `json:"categoryId,omitempty"`
	ExternalID   string    `json:"externalId"`
}
