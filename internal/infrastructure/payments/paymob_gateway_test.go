package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"paymob_service/internal/domain/entities"
)

type fakeStore struct {
	mu     sync.Mutex
	values map[string]string
	sets   []map[string]string
}

func newFakeStore(values map[string]string) *fakeStore {
	if values == nil {
		values = map[string]string{}
	}
	return &fakeStore{values: values}
}

func (s *fakeStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key], nil
}

func (s *fakeStore) Set(_ context.Context, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range values {
		s.values[k] = v
	}
	s.sets = append(s.sets, values)
	return nil
}

// recordedRequest keeps what the fake provider saw for later assertions.
type recordedRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Body   map[string]any
}

type fakeProvider struct {
	mu        sync.Mutex
	requests  []recordedRequest
	responses map[string]string // path -> JSON body
	server    *httptest.Server
}

func newFakeProvider(t *testing.T, responses map[string]string) *fakeProvider {
	t.Helper()
	p := &fakeProvider{responses: responses}
	p.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{Method: r.Method, Path: r.URL.Path, Query: map[string]string{}}
		for k, v := range r.URL.Query() {
			rec.Query[k] = v[0]
		}
		if r.Body != nil {
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			rec.Body = body
		}
		p.mu.Lock()
		p.requests = append(p.requests, rec)
		p.mu.Unlock()

		if resp, ok := p.responses[r.URL.Path]; ok {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(resp))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(p.server.Close)
	return p
}

func (p *fakeProvider) recorded() []recordedRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]recordedRequest(nil), p.requests...)
}

func (p *fakeProvider) countPath(path string) int {
	n := 0
	for _, r := range p.recorded() {
		if r.Path == path {
			n++
		}
	}
	return n
}

func TestNewPaymobGateway_CachedSessionSkipsAuth(t *testing.T) {
	provider := newFakeProvider(t, nil)
	store := newFakeStore(map[string]string{
		"username":    "merchant@example.com",
		"password":    "secret",
		"token":       "cached-token",
		"merchant_id": "42",
	})

	g, err := NewPaymobGateway(context.Background(), Config{BaseURL: provider.server.URL}, store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n := len(provider.recorded()); n != 0 {
		t.Fatalf("expected zero provider calls, got %d", n)
	}
	sess := g.Session()
	if sess.Token != "cached-token" || sess.MerchantID != 42 {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestNewPaymobGateway_AuthenticatesAndWritesBack(t *testing.T) {
	provider := newFakeProvider(t, map[string]string{
		"/auth/tokens": `{"token":"T","profile":{"id":7}}`,
	})
	store := newFakeStore(map[string]string{
		"username": "merchant@example.com",
		"password": "secret",
	})

	g, err := NewPaymobGateway(context.Background(), Config{BaseURL: provider.server.URL}, store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n := provider.countPath("/auth/tokens"); n != 1 {
		t.Fatalf("expected exactly one auth call, got %d", n)
	}
	reqs := provider.recorded()
	if reqs[0].Body["username"] != "merchant@example.com" || reqs[0].Body["password"] != "secret" {
		t.Fatalf("unexpected auth body: %+v", reqs[0].Body)
	}

	sess := g.Session()
	if sess.Token != "T" || sess.MerchantID != 7 {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if store.values["token"] != "T" || store.values["merchant_id"] != "7" {
		t.Fatalf("session not written back: %+v", store.values)
	}
}

func TestNewPaymobGateway_AuthWithoutTokenLeavesSessionEmpty(t *testing.T) {
	provider := newFakeProvider(t, map[string]string{
		"/auth/tokens": `{"detail":"invalid credentials"}`,
	})
	store := newFakeStore(map[string]string{"username": "u", "password": "wrong"})

	g, err := NewPaymobGateway(context.Background(), Config{BaseURL: provider.server.URL}, store)
	if err != nil {
		t.Fatalf("unauthenticated construction must not fail: %v", err)
	}
	if g.Session().Authenticated() {
		t.Fatalf("expected empty session, got %+v", g.Session())
	}
	if len(store.sets) != 0 {
		t.Fatalf("nothing should be written back, got %+v", store.sets)
	}
}

func TestNewPaymobGateway_RequiresStore(t *testing.T) {
	if _, err := NewPaymobGateway(context.Background(), Config{}, nil); !errors.Is(err, ErrConfigStoreNotConfigured) {
		t.Fatalf("expected ErrConfigStoreNotConfigured, got %v", err)
	}
}

func newAuthenticatedGateway(t *testing.T, provider *fakeProvider) *PaymobGateway {
	t.Helper()
	store := newFakeStore(map[string]string{
		"username":       "u",
		"password":       "p",
		"token":          "sess-token",
		"merchant_id":    "42",
		"iframe_id":      "99",
		"integration_id": "123",
	})
	g, err := NewPaymobGateway(context.Background(), Config{BaseURL: provider.server.URL}, store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestPaymobGateway_CreateOrder(t *testing.T) {
	provider := newFakeProvider(t, map[string]string{
		"/ecommerce/orders": `{"id":555,"amount_cents":5000,"currency":"EGP","merchant_order_id":"order-1"}`,
	})
	g := newAuthenticatedGateway(t, provider)

	order, err := g.CreateOrder(context.Background(), 5000, "order-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reqs := provider.recorded()
	if len(reqs) != 1 || reqs[0].Method != http.MethodPost || reqs[0].Path != "/ecommerce/orders" {
		t.Fatalf("unexpected request: %+v", reqs)
	}
	if reqs[0].Query["token"] != "sess-token" {
		t.Fatalf("token not sent as query parameter: %+v", reqs[0].Query)
	}
	body := reqs[0].Body
	if body["merchant_id"] != float64(42) ||
		body["amount_cents"] != float64(5000) ||
		body["merchant_order_id"] != "order-1" ||
		body["currency"] != "EGP" ||
		body["notify_user_with_email"] != true {
		t.Fatalf("unexpected order body: %+v", body)
	}

	if order.ID == nil || *order.ID != 555 {
		t.Fatalf("unexpected order id: %+v", order)
	}
	if order.AmountCents == nil || *order.AmountCents != 5000 {
		t.Fatalf("unexpected amount: %+v", order)
	}
	if !strings.Contains(string(order.Raw), `"id":555`) {
		t.Fatalf("raw body not preserved: %s", order.Raw)
	}
}

func TestPaymobGateway_GetPaymentKeyDefaults(t *testing.T) {
	provider := newFakeProvider(t, map[string]string{
		"/acceptance/payment_keys": `{"token":"pk"}`,
	})
	g := newAuthenticatedGateway(t, provider)

	key, err := g.GetPaymentKey(context.Background(), 1000, 555, entities.BillingContact{Email: "buyer@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key.Token != "pk" {
		t.Fatalf("unexpected key: %+v", key)
	}

	body := provider.recorded()[0].Body
	if body["expiration"] != float64(36000) || body["currency"] != "EGP" || body["card_integration_id"] != "123" {
		t.Fatalf("unexpected payment key body: %+v", body)
	}
	billing := body["billing_data"].(map[string]any)
	if billing["email"] != "buyer@example.com" {
		t.Fatalf("explicit email lost: %+v", billing)
	}
	for _, field := range []string{"first_name", "last_name", "phone_number", "city", "country", "street", "building", "floor", "apartment"} {
		if billing[field] != "NA" {
			t.Fatalf("field %s not defaulted to NA: %+v", field, billing)
		}
	}
}

func TestPaymobGateway_ChargeCardSendsTokenInBody(t *testing.T) {
	provider := newFakeProvider(t, map[string]string{
		"/acceptance/payments/pay": `{"id":777,"success":true}`,
	})
	g := newAuthenticatedGateway(t, provider)

	card := entities.CardData{Number: "4111111111111111", HolderName: "Jane Roe", ExpiryMonth: "05", ExpiryYear: "27", CVN: "123"}
	contact := entities.BillingContact{FirstName: "Jane", LastName: "Roe", Email: "jane@example.com", PhoneNumber: "0100000000"}

	tx, err := g.ChargeCard(context.Background(), card, contact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.ID == nil || *tx.ID != 777 {
		t.Fatalf("unexpected transaction: %+v", tx)
	}

	req := provider.recorded()[0]
	if _, ok := req.Query["token"]; ok {
		t.Fatalf("charge must not carry a token query parameter: %+v", req.Query)
	}
	if req.Body["payment_token"] != "sess-token" {
		t.Fatalf("payment_token missing from body: %+v", req.Body)
	}
	source := req.Body["source"].(map[string]any)
	if source["identifier"] != card.Number || source["subtype"] != "CARD" || source["sourceholder_name"] != "Jane Roe" {
		t.Fatalf("unexpected source block: %+v", source)
	}
}

func TestPaymobGateway_Capture(t *testing.T) {
	provider := newFakeProvider(t, map[string]string{
		"/acceptance/capture": `{"id":888,"amount_cents":5000}`,
	})
	g := newAuthenticatedGateway(t, provider)

	tx, err := g.Capture(context.Background(), 777, 5000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.ID == nil || *tx.ID != 888 {
		t.Fatalf("unexpected capture result: %+v", tx)
	}

	req := provider.recorded()[0]
	if req.Query["token"] != "sess-token" {
		t.Fatalf("capture must carry the token query parameter: %+v", req.Query)
	}
	if req.Body["transaction_id"] != float64(777) || req.Body["amount_cents"] != float64(5000) {
		t.Fatalf("unexpected capture body: %+v", req.Body)
	}
}

func TestPaymobGateway_Reads(t *testing.T) {
	provider := newFakeProvider(t, map[string]string{
		"/ecommerce/orders":          `{"count":1,"results":[{"id":1,"amount_cents":100}]}`,
		"/ecommerce/orders/1":        `{"id":1,"amount_cents":100}`,
		"/acceptance/transactions":   `{"count":1,"results":[{"id":9}]}`,
		"/acceptance/transactions/9": `{"id":9,"success":false}`,
	})
	g := newAuthenticatedGateway(t, provider)
	ctx := context.Background()

	orders, err := g.ListOrders(ctx, 3)
	if err != nil || len(orders.Results) != 1 {
		t.Fatalf("list orders: %+v err=%v", orders, err)
	}
	order, err := g.GetOrder(ctx, 1)
	if err != nil || !order.Found() {
		t.Fatalf("get order: %+v err=%v", order, err)
	}
	txs, err := g.ListTransactions(ctx, 1)
	if err != nil || len(txs.Results) != 1 {
		t.Fatalf("list transactions: %+v err=%v", txs, err)
	}
	tx, err := g.GetTransaction(ctx, 9)
	if err != nil || !tx.Found() {
		t.Fatalf("get transaction: %+v err=%v", tx, err)
	}
	if tx.Success == nil || *tx.Success {
		t.Fatalf("declined transaction must come back as data: %+v", tx)
	}

	for _, req := range provider.recorded() {
		if req.Method != http.MethodGet {
			t.Fatalf("read issued %s %s", req.Method, req.Path)
		}
		if req.Query["token"] != "sess-token" {
			t.Fatalf("missing token on %s: %+v", req.Path, req.Query)
		}
	}
	if q := provider.recorded()[0].Query["page"]; q != "3" {
		t.Fatalf("page not passed through: %q", q)
	}
}

func TestPaymobGateway_GetPayURL(t *testing.T) {
	t.Run("order without amount yields empty result and no key request", func(t *testing.T) {
		provider := newFakeProvider(t, map[string]string{
			"/ecommerce/orders/5": `{"detail":"not found"}`,
		})
		g := newAuthenticatedGateway(t, provider)

		payURL, err := g.GetPayURL(context.Background(), 5, 0, entities.BillingContact{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payURL != "" {
			t.Fatalf("expected empty pay url, got %q", payURL)
		}
		if n := provider.countPath("/acceptance/payment_keys"); n != 0 {
			t.Fatalf("payment key request must not be sent, got %d", n)
		}
	})

	t.Run("explicit amount builds url from payment key token", func(t *testing.T) {
		provider := newFakeProvider(t, map[string]string{
			"/acceptance/payment_keys": `{"token":"pk123"}`,
		})
		g := newAuthenticatedGateway(t, provider)

		payURL, err := g.GetPayURL(context.Background(), 5, 1000, entities.BillingContact{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := provider.server.URL + "/acceptance/iframes/99?payment_token=pk123"
		if payURL != want {
			t.Fatalf("pay url = %q, want %q", payURL, want)
		}
		if n := provider.countPath("/ecommerce/orders/5"); n != 0 {
			t.Fatalf("order lookup must be skipped when amount is given, got %d", n)
		}
	})

	t.Run("payment key without token yields empty result", func(t *testing.T) {
		provider := newFakeProvider(t, map[string]string{
			"/acceptance/payment_keys": `{"detail":"unauthorized"}`,
		})
		g := newAuthenticatedGateway(t, provider)

		payURL, err := g.GetPayURL(context.Background(), 5, 1000, entities.BillingContact{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payURL != "" {
			t.Fatalf("expected empty pay url, got %q", payURL)
		}
	})
}

func TestPaymobGateway_PaymentURLAgainstProduction(t *testing.T) {
	store := newFakeStore(map[string]string{
		"token":       "cached",
		"merchant_id": "1",
	})
	g, err := NewPaymobGateway(context.Background(), Config{IframeID: "12345"}, store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "https://accept.paymobsolutions.com/api/acceptance/iframes/12345?payment_token=pk123"
	if got := g.PaymentURL("pk123"); got != want {
		t.Fatalf("payment url = %q, want %q", got, want)
	}
}

func TestPaymobGateway_TransportError(t *testing.T) {
	provider := newFakeProvider(t, nil)
	g := newAuthenticatedGateway(t, provider)
	provider.server.Close()

	_, err := g.CreateOrder(context.Background(), 100, "x")
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}

	_, err = g.GetOrder(context.Background(), 1)
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError on reads too, got %v", err)
	}
}

func TestPaymobGateway_ResponseParseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>gateway timeout</html>"))
	}))
	t.Cleanup(server.Close)

	store := newFakeStore(map[string]string{"token": "tk", "merchant_id": "1"})
	g, err := NewPaymobGateway(context.Background(), Config{BaseURL: server.URL}, store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = g.ListOrders(context.Background(), 1)
	var parseErr *ResponseParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ResponseParseError, got %v", err)
	}
}

func TestFillBillingDefaults(t *testing.T) {
	got := fillBillingDefaults(entities.BillingContact{Email: "a@b.c", City: "Cairo"})
	want := entities.BillingContact{
		FirstName:   "NA",
		LastName:    "NA",
		Email:       "a@b.c",
		PhoneNumber: "NA",
		City:        "Cairo",
		Country:     "NA",
	}
	if got != want {
		t.Fatalf("defaults = %+v, want %+v", got, want)
	}
}
