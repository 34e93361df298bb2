package entities

// Session holds the authentication state cached by the gateway client.
//
// Token is the opaque bearer string returned by /auth/tokens and MerchantID
// comes from the auth response's profile.id. Both are written back to the
// gateway configuration store so later client instances skip authentication.
// There is no expiry tracking; a token believed invalid is never refreshed.

type Session struct {
	Token      string `json:"token"`
	MerchantID int64  `json:"merchant_id"`
}

// Authenticated reports whether both cached values are present.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.MerchantID != 0
}
