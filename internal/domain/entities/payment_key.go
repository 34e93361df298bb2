package entities

import "encoding/json"

// PaymentKey is the parsed body of POST /acceptance/payment_keys. Token is the
// order-scoped payment token used to build the hosted-payment iframe URL; a
// body without it means the key request was not accepted.

type PaymentKey struct {
	Token string `json:"token"`

	Raw json.RawMessage `json:"-"`
}
