package model

// Category groups transactions for budgeting and summaries. Global defaults
// have an empty UserID; a user's effective set is the union of globals and
// their own categories, with user-owned names taking precedence.
type Category struct {
	ID       string   `json:"id"`
	UserID   string   `json:"userId,omitempty"` // empty = global default
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	IsActive bool     `json:"isActive"`
}
