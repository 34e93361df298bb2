package response

import "paymob_service/internal/domain/entities"

// OrderResponse mirrors the provider order. Pointer fields stay nil when the
// provider omitted them; `provider_raw` keeps the unmodified provider body for
// traceability.

type OrderResponse struct {
	ID              *int64      `json:"id,omitempty"`
	AmountCents     *int64      `json:"amount_cents,omitempty"`
	Currency        string      `json:"currency,omitempty"`
	MerchantOrderID interface{} `json:"merchant_order_id,omitempty"`
	PaymentStatus   string      `json:"payment_status,omitempty"`
	CreatedAt       string      `json:"created_at,omitempty"`

	ProviderRaw string `json:"provider_raw,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		AmountCents:     o.AmountCents,
		Currency:        o.Currency,
		MerchantOrderID: o.MerchantOrderID,
		PaymentStatus:   o.PaymentStatus,
		CreatedAt:       o.CreatedAt,
		ProviderRaw:     string(o.Raw),
	}
}

type OrderListResponse struct {
	Count    *int64          `json:"count,omitempty"`
	Next     *string         `json:"next,omitempty"`
	Previous *string         `json:"previous,omitempty"`
	Results  []OrderResponse `json:"results"`
}

func FromOrderList(l entities.OrderList) OrderListResponse {
	out := OrderListResponse{
		Count:    l.Count,
		Next:     l.Next,
		Previous: l.Previous,
		Results:  make([]OrderResponse, 0, len(l.Results)),
	}
	for _, o := range l.Results {
		out.Results = append(out.Results, FromOrder(o))
	}
	return out
}

// PayURLResponse is the hosted-payment URL for an order.
type PayURLResponse struct {
	OrderID int64  `json:"order_id"`
	PayURL  string `json:"pay_url"`
}
