package request

import "paymob_service/internal/domain/entities"

// CardRequest carries raw card data for the direct-payment flow. It is passed
// through to the provider untouched; no validation beyond non-emptiness.
type CardRequest struct {
	Number      string `json:"number"`
	HolderName  string `json:"holder_name"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVN         string `json:"cvn"`
}

func (r CardRequest) ToEntity() entities.CardData {
	return entities.CardData{
		Number:      r.Number,
		HolderName:  r.HolderName,
		ExpiryMonth: r.ExpiryMonth,
		ExpiryYear:  r.ExpiryYear,
		CVN:         r.CVN,
	}
}

// BillingContactRequest carries optional contact fields. Omitted fields fall
// back to the provider-accepted "NA" placeholder inside the gateway client.
type BillingContactRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

func (r BillingContactRequest) ToEntity() entities.BillingContact {
	return entities.BillingContact{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		City:        r.City,
		Country:     r.Country,
	}
}

// ChargeCardRequest is the payload for POST /v1/payments.
type ChargeCardRequest struct {
	Card    CardRequest           `json:"card"`
	Billing BillingContactRequest `json:"billing"`
}

// CaptureRequest is the payload for POST /v1/payments/:transaction_id/capture.
type CaptureRequest struct {
	AmountCents int64 `json:"amount_cents"`
}
