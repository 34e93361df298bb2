package entities

import (
	"encoding/json"
	"testing"
)

func TestAuthResponseSession(t *testing.T) {
	cases := []struct {
		name string
		body string
		want Session
	}{
		{"full response", `{"token":"T","profile":{"id":7}}`, Session{Token: "T", MerchantID: 7}},
		{"missing token", `{"profile":{"id":7}}`, Session{}},
		{"missing profile", `{"token":"T"}`, Session{}},
		{"error body", `{"detail":"invalid credentials"}`, Session{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var auth AuthResponse
			if err := json.Unmarshal([]byte(tc.body), &auth); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := auth.Session(); got != tc.want {
				t.Fatalf("session = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestSessionAuthenticated(t *testing.T) {
	if (Session{Token: "T"}).Authenticated() {
		t.Fatal("token alone must not count as authenticated")
	}
	if (Session{MerchantID: 7}).Authenticated() {
		t.Fatal("merchant id alone must not count as authenticated")
	}
	if !(Session{Token: "T", MerchantID: 7}).Authenticated() {
		t.Fatal("full session must count as authenticated")
	}
}

func TestOrderFound(t *testing.T) {
	var missing Order
	if err := json.Unmarshal([]byte(`{"detail":"not found"}`), &missing); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if missing.Found() {
		t.Fatalf("error body must not count as found: %+v", missing)
	}

	var zeroAmount Order
	if err := json.Unmarshal([]byte(`{"id":1,"amount_cents":0}`), &zeroAmount); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !zeroAmount.Found() {
		t.Fatal("a present zero amount is still a real order")
	}
	if zeroAmount.AmountCents == nil || *zeroAmount.AmountCents != 0 {
		t.Fatalf("present zero must stay distinguishable from absent: %+v", zeroAmount)
	}
}

func TestTransactionFound(t *testing.T) {
	var missing Transaction
	if err := json.Unmarshal([]byte(`{"detail":"not found"}`), &missing); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if missing.Found() {
		t.Fatalf("error body must not count as found: %+v", missing)
	}

	var declined Transaction
	if err := json.Unmarshal([]byte(`{"id":9,"success":false,"pending":false}`), &declined); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !declined.Found() {
		t.Fatal("declined transactions are still found")
	}
	if declined.Success == nil || *declined.Success {
		t.Fatalf("decline must be readable from the body: %+v", declined)
	}
}
