package entities

import "encoding/json"

// Transaction is a provider transaction, returned by the direct-payment,
// capture and acceptance/transactions endpoints. Declines and other business
// outcomes arrive inside this body; the client does not interpret them.

type Transaction struct {
	ID          *int64 `json:"id"`
	AmountCents *int64 `json:"amount_cents"`
	Success     *bool  `json:"success"`
	Pending     *bool  `json:"pending"`
	Currency    string `json:"currency"`
	Order       *Order `json:"order"`
	CreatedAt   string `json:"created_at"`

	Raw json.RawMessage `json:"-"`
}

// Found reports whether the provider returned a recognizable transaction.
func (t Transaction) Found() bool {
	return t.ID != nil
}

// TransactionList is a single page of GET /acceptance/transactions.
type TransactionList struct {
	Count    *int64        `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []Transaction `json:"results"`

	Raw json.RawMessage `json:"-"`
}
