package models

import "time"

// All monetary amounts are integer cents. Floating-point money never enters
// the data model.

// Account is the payload of an accounts-table record.
type Account struct {
	Name                string `json:"name"`
	Type                string `json:"type"` // checking, savings, credit, cash
	Currency            string `json:"currency"`
	OpeningBalanceCents int64  `json:"opening_balance_cents"`
	Archived            bool   `json:"archived"`
}

// Category is the payload of a categories-table record.
type Category struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"` // income or expense
	ParentID string `json:"parent_id,omitempty"`
}

// Transaction is the payload of a transactions-table record. AccountID is
// required; CategoryID is optional for uncategorised entries.
type Transaction struct {
	AccountID   string    `json:"account_id"`
	CategoryID  string    `json:"category_id,omitempty"`
	AmountCents int64     `json:"amount_cents"`
	Memo        string    `json:"memo,omitempty"`
	Payee       string    `json:"payee,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
	Cleared     bool      `json:"cleared"`
}

// InboxItem is the payload of an inbox-table record: a staged entry (bank
// import, quick capture) not yet promoted to a transaction.
type InboxItem struct {
	AccountID      string `json:"account_id,omitempty"`
	TransactionID  string `json:"transaction_id,omitempty"`
	RawDescription string `json:"raw_description"`
	AmountCents    int64  `json:"amount_cents"`
	Source         string `json:"source"` // import, quick_add
}
