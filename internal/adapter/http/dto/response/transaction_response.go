package response

import "paymob_service/internal/domain/entities"

// TransactionResponse mirrors the provider transaction, including declines;
// the service does not interpret provider result codes.

type TransactionResponse struct {
	ID          *int64         `json:"id,omitempty"`
	AmountCents *int64         `json:"amount_cents,omitempty"`
	Success     *bool          `json:"success,omitempty"`
	Pending     *bool          `json:"pending,omitempty"`
	Currency    string         `json:"currency,omitempty"`
	Order       *OrderResponse `json:"order,omitempty"`
	CreatedAt   string         `json:"created_at,omitempty"`

	ProviderRaw string `json:"provider_raw,omitempty"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	out := TransactionResponse{
		ID:          t.ID,
		AmountCents: t.AmountCents,
		Success:     t.Success,
		Pending:     t.Pending,
		Currency:    t.Currency,
		CreatedAt:   t.CreatedAt,
		ProviderRaw: string(t.Raw),
	}
	if t.Order != nil {
		o := FromOrder(*t.Order)
		out.Order = &o
	}
	return out
}

type TransactionListResponse struct {
	Count    *int64                `json:"count,omitempty"`
	Next     *string               `json:"next,omitempty"`
	Previous *string               `json:"previous,omitempty"`
	Results  []TransactionResponse `json:"results"`
}

func FromTransactionList(l entities.TransactionList) TransactionListResponse {
	out := TransactionListResponse{
		Count:    l.Count,
		Next:     l.Next,
		Previous: l.Previous,
		Results:  make([]TransactionResponse, 0, len(l.Results)),
	}
	for _, t := range l.Results {
		out.Results = append(out.Results, FromTransaction(t))
	}
	return out
}
