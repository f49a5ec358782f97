package model

// Budget caps planned spending for one category in one calendar month.
// Amount is a decimal string with two fraction digits.
type Budget struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	CategoryID string `json:"categoryId"`
	Month      string `json:"month"` // "YYYY-MM"
	Amount     string `json:"amount"`
}
