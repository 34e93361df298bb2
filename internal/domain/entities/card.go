package entities

// CardData carries the raw card fields for the direct-payment (mobile/API)
// flow. Values are sent to the provider as-is.

type CardData struct {
	Number      string `json:"number"`
	HolderName  string `json:"holder_name"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVN         string `json:"cvn"`
}

// BillingContact carries the contact fields attached to payment keys and card
// charges. Empty fields are replaced by the "NA" placeholder the provider
// accepts; real values should be required before going live.

type BillingContact struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	City        string `json:"city"`
	Country     string `json:"country"`
}
