package request

// CreateOrderRequest is the payload for POST /v1/orders.
//
// `merchant_order_id` is optional; the use case generates a UUID when it is
// blank. Amounts are minor currency units (cents).

type CreateOrderRequest struct {
	AmountCents     int64  `json:"amount_cents"`
	MerchantOrderID string `json:"merchant_order_id"`
}
