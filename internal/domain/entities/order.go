package entities

import "encoding/json"

// Order is a provider-side order as returned by the ecommerce endpoints.
//
// Fields are pointers where callers need to distinguish "absent" from zero:
// the provider contract does not guarantee any of them, and existence checks
// (not parse errors) drive the client's behavior. Raw keeps the unmodified
// provider body, including fields this struct does not model.

type Order struct {
	ID              *int64      `json:"id"`
	AmountCents     *int64      `json:"amount_cents"`
	Currency        string      `json:"currency"`
	MerchantOrderID interface{} `json:"merchant_order_id"`
	PaymentStatus   string      `json:"payment_status"`
	CreatedAt       string      `json:"created_at"`

	Raw json.RawMessage `json:"-"`
}

// Found reports whether the provider returned a recognizable order. The list
// and detail endpoints answer malformed/unknown ids with bodies that simply
// lack these fields.
func (o Order) Found() bool {
	return o.ID != nil || o.AmountCents != nil
}

// OrderList is a single page of GET /ecommerce/orders.
type OrderList struct {
	Count    *int64  `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Order `json:"results"`

	Raw json.RawMessage `json:"-"`
}
