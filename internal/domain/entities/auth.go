package entities

import "encoding/json"

// AuthProfile is the merchant profile nested in the auth response.
type AuthProfile struct {
	ID int64 `json:"id"`
}

// AuthResponse is the parsed body of POST /auth/tokens.
//
// The provider does not guarantee any field; a response without a token is
// simply "not authenticated", never an error. Raw keeps the original body for
// traceability, mirroring how payment payloads are kept elsewhere.

type AuthResponse struct {
	Token   string       `json:"token"`
	Profile *AuthProfile `json:"profile"`

	Raw json.RawMessage `json:"-"`
}

// Session extracts the cacheable session state, or a zero Session when the
// response lacks the token or profile id.
func (a AuthResponse) Session() Session {
	if a.Token == "" || a.Profile == nil || a.Profile.ID == 0 {
		return Session{}
	}
	return Session{Token: a.Token, MerchantID: a.Profile.ID}
}
