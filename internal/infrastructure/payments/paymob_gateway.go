package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"paymob_service/internal/domain/entities"
	"paymob_service/internal/usecase/interfaces"
)

const (
	// DefaultBaseURL is the production Paymob acceptance API.
	DefaultBaseURL = "https://accept.paymobsolutions.com/api"

	endpointAuthTokens   = "/auth/tokens"
	endpointOrders       = "/ecommerce/orders"
	endpointPaymentKeys  = "/acceptance/payment_keys"
	endpointPay          = "/acceptance/payments/pay"
	endpointCapture      = "/acceptance/capture"
	endpointTransactions = "/acceptance/transactions"
	endpointIframes      = "/acceptance/iframes"

	currencyEGP = "EGP"
	cardSubtype = "CARD"

	// paymentKeyExpiration is the fixed payment-key validity window (seconds).
	paymentKeyExpiration = 36000

	// billingPlaceholder stands in for omitted contact fields. The provider
	// accepts it, but real values should be required before going live.
	billingPlaceholder = "NA"
)

var ErrConfigStoreNotConfigured = errors.New("gateway config store not configured")

// TransportError wraps a failed HTTP round trip (DNS, connect, timeout).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("paymob %s: transport failure: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ResponseParseError wraps a provider body that is not valid JSON.
type ResponseParseError struct {
	Op  string
	Err error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("paymob %s: response parse failure: %v", e.Op, e.Err)
}

func (e *ResponseParseError) Unwrap() error { return e.Err }

// Config carries the construction-time client settings. Credentials and the
// cached session are NOT here; they come from the injected config store.
type Config struct {
	// BaseURL defaults to DefaultBaseURL when empty.
	BaseURL string

	// IframeID / IntegrationID override the values read from the config store.
	IframeID      string
	IntegrationID string

	// HTTPClient defaults to a bare http.Client. No timeout is imposed;
	// callers needing bounded latency set one here.
	HTTPClient *http.Client
}

// PaymobGateway talks to the Paymob acceptance REST API.
//
// The session (token + merchant id) is written once at construction and read
// thereafter; instances are not safe for concurrent use without external
// synchronization. Every operation issues exactly one HTTP request, with no
// retries. Provider-reported business errors (declines, HTTP error statuses)
// are returned inside the parsed body, never as Go errors.

type PaymobGateway struct {
	baseURL       string
	iframeID      string
	integrationID string

	username string
	password string
	session  entities.Session

	store  interfaces.IGatewayConfigStore
	client *http.Client
}

var _ interfaces.IPaymobGateway = (*PaymobGateway)(nil)

// NewPaymobGateway reads credentials and cached session state from the store.
// When token and merchant id are both present it performs zero network calls;
// otherwise it authenticates once and writes the resulting token/merchant id
// back through the store. An auth response without a token leaves the session
// empty without error: later calls go out unauthenticated and the provider
// rejects them server-side.
func NewPaymobGateway(ctx context.Context, cfg Config, store interfaces.IGatewayConfigStore) (*PaymobGateway, error) {
	if store == nil {
		return nil, ErrConfigStoreNotConfigured
	}

	g := &PaymobGateway{
		baseURL: cfg.BaseURL,
		store:   store,
		client:  cfg.HTTPClient,
	}
	if g.baseURL == "" {
		g.baseURL = DefaultBaseURL
	}
	if g.client == nil {
		g.client = &http.Client{}
	}

	values := map[string]string{}
	for _, key := range []string{
		interfaces.ConfigKeyUsername,
		interfaces.ConfigKeyPassword,
		interfaces.ConfigKeyToken,
		interfaces.ConfigKeyMerchantID,
		interfaces.ConfigKeyIframeID,
		interfaces.ConfigKeyIntegrationID,
	} {
		v, err := store.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("read gateway config %q: %w", key, err)
		}
		values[key] = v
	}

	g.username = values[interfaces.ConfigKeyUsername]
	g.password = values[interfaces.ConfigKeyPassword]
	g.iframeID = cfg.IframeID
	if g.iframeID == "" {
		g.iframeID = values[interfaces.ConfigKeyIframeID]
	}
	g.integrationID = cfg.IntegrationID
	if g.integrationID == "" {
		g.integrationID = values[interfaces.ConfigKeyIntegrationID]
	}

	if sess, ok := cachedSession(values); ok {
		log.Printf("[paymob][gateway] using cached session merchant_id=%d", sess.MerchantID)
		g.session = sess
		return g, nil
	}

	auth, err := g.Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	sess := auth.Session()
	if !sess.Authenticated() {
		log.Printf("[paymob][gateway] auth response lacks token/profile; session left empty")
		return g, nil
	}

	g.session = sess
	if err := store.Set(ctx, map[string]string{
		interfaces.ConfigKeyToken:      sess.Token,
		interfaces.ConfigKeyMerchantID: strconv.FormatInt(sess.MerchantID, 10),
	}); err != nil {
		return nil, fmt.Errorf("write back gateway session: %w", err)
	}
	log.Printf("[paymob][gateway] authenticated merchant_id=%d", sess.MerchantID)
	return g, nil
}

func cachedSession(values map[string]string) (entities.Session, bool) {
	token := values[interfaces.ConfigKeyToken]
	rawID := values[interfaces.ConfigKeyMerchantID]
	if token == "" || rawID == "" {
		return entities.Session{}, false
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		log.Printf("[paymob][gateway] cached merchant_id %q not numeric; re-authenticating", rawID)
		return entities.Session{}, false
	}
	return entities.Session{Token: token, MerchantID: id}, true
}

// Session returns the cached authentication state. A zero session means the
// construction-time auth did not produce a token.
func (g *PaymobGateway) Session() entities.Session { return g.session }

func (g *PaymobGateway) SetIframeID(iframeID string) { g.iframeID = iframeID }

func (g *PaymobGateway) SetIntegrationID(integrationID string) { g.integrationID = integrationID }

// Authenticate requests a fresh token from /auth/tokens. Inspecting the
// response for a usable token/profile is left to the caller.
func (g *PaymobGateway) Authenticate(ctx context.Context) (entities.AuthResponse, error) {
	payload := map[string]any{
		"username": g.username,
		"password": g.password,
	}

	var out entities.AuthResponse
	raw, err := g.postJSON(ctx, "authenticate", g.baseURL+endpointAuthTokens, payload, &out)
	if err != nil {
		return entities.AuthResponse{}, err
	}
	out.Raw = raw
	return out, nil
}

// CreateOrder registers an order with the provider and returns its order
// object, including the provider-assigned id.
func (g *PaymobGateway) CreateOrder(ctx context.Context, amountCents int64, merchantOrderID string) (entities.Order, error) {
	payload := map[string]any{
		"merchant_id":            g.session.MerchantID,
		"amount_cents":           amountCents,
		"merchant_order_id":      merchantOrderID,
		"currency":               currencyEGP,
		"notify_user_with_email": true,
	}

	var out entities.Order
	raw, err := g.postJSON(ctx, "create-order", g.tokenURL(endpointOrders), payload, &out)
	if err != nil {
		return entities.Order{}, err
	}
	out.Raw = raw
	log.Printf("[paymob][gateway] create-order done merchant_order_id=%s found=%t", merchantOrderID, out.Found())
	return out, nil
}

// GetPaymentKey requests an order-scoped payment key. Empty contact fields are
// sent as the "NA" placeholder; expiration and currency are fixed.
func (g *PaymobGateway) GetPaymentKey(ctx context.Context, amountCents, orderID int64, contact entities.BillingContact) (entities.PaymentKey, error) {
	contact = fillBillingDefaults(contact)
	payload := map[string]any{
		"amount_cents": amountCents,
		"expiration":   paymentKeyExpiration,
		"order_id":     orderID,
		"billing_data": map[string]any{
			"email":        contact.Email,
			"first_name":   contact.FirstName,
			"last_name":    contact.LastName,
			"phone_number": contact.PhoneNumber,
			"city":         contact.City,
			"country":      contact.Country,
			"street":       billingPlaceholder,
			"building":     billingPlaceholder,
			"floor":        billingPlaceholder,
			"apartment":    billingPlaceholder,
		},
		"currency":            currencyEGP,
		"card_integration_id": g.integrationID,
	}

	var out entities.PaymentKey
	raw, err := g.postJSON(ctx, "payment-key", g.tokenURL(endpointPaymentKeys), payload, &out)
	if err != nil {
		return entities.PaymentKey{}, err
	}
	out.Raw = raw
	return out, nil
}

// ChargeCard executes a direct card payment (mobile/API flow). Unlike every
// other authenticated operation the token travels in the body as
// payment_token, not as a query parameter.
func (g *PaymobGateway) ChargeCard(ctx context.Context, card entities.CardData, contact entities.BillingContact) (entities.Transaction, error) {
	payload := map[string]any{
		"source": map[string]any{
			"identifier":        card.Number,
			"sourceholder_name": card.HolderName,
			"subtype":           cardSubtype,
			"expiry_month":      card.ExpiryMonth,
			"expiry_year":       card.ExpiryYear,
			"cvn":               card.CVN,
		},
		"billing": map[string]any{
			"first_name":   contact.FirstName,
			"last_name":    contact.LastName,
			"email":        contact.Email,
			"phone_number": contact.PhoneNumber,
		},
		"payment_token": g.session.Token,
	}

	var out entities.Transaction
	raw, err := g.postJSON(ctx, "charge", g.baseURL+endpointPay, payload, &out)
	if err != nil {
		return entities.Transaction{}, err
	}
	out.Raw = raw
	log.Printf("[paymob][gateway] charge done found=%t", out.Found())
	return out, nil
}

// Capture finalizes a previously authorized transaction for settlement.
func (g *PaymobGateway) Capture(ctx context.Context, transactionID, amountCents int64) (entities.Transaction, error) {
	payload := map[string]any{
		"transaction_id": transactionID,
		"amount_cents":   amountCents,
	}

	var out entities.Transaction
	raw, err := g.postJSON(ctx, "capture", g.tokenURL(endpointCapture), payload, &out)
	if err != nil {
		return entities.Transaction{}, err
	}
	out.Raw = raw
	log.Printf("[paymob][gateway] capture done transaction_id=%d found=%t", transactionID, out.Found())
	return out, nil
}

// ListOrders fetches one page of orders. Pages are 1-based; the page number is
// passed through untouched.
func (g *PaymobGateway) ListOrders(ctx context.Context, page int) (entities.OrderList, error) {
	var out entities.OrderList
	raw, err := g.getJSON(ctx, "list-orders", g.pagedTokenURL(endpointOrders, page), &out)
	if err != nil {
		return entities.OrderList{}, err
	}
	out.Raw = raw
	return out, nil
}

// GetOrder fetches a single order. A body without order fields is returned
// as-is; callers use Order.Found.
func (g *PaymobGateway) GetOrder(ctx context.Context, orderID int64) (entities.Order, error) {
	var out entities.Order
	raw, err := g.getJSON(ctx, "get-order", g.tokenURL(fmt.Sprintf("%s/%d", endpointOrders, orderID)), &out)
	if err != nil {
		return entities.Order{}, err
	}
	out.Raw = raw
	return out, nil
}

// ListTransactions fetches one page of transactions.
func (g *PaymobGateway) ListTransactions(ctx context.Context, page int) (entities.TransactionList, error) {
	var out entities.TransactionList
	raw, err := g.getJSON(ctx, "list-transactions", g.pagedTokenURL(endpointTransactions, page), &out)
	if err != nil {
		return entities.TransactionList{}, err
	}
	out.Raw = raw
	return out, nil
}

// GetTransaction fetches a single transaction.
func (g *PaymobGateway) GetTransaction(ctx context.Context, transactionID int64) (entities.Transaction, error) {
	var out entities.Transaction
	raw, err := g.getJSON(ctx, "get-transaction", g.tokenURL(fmt.Sprintf("%s/%d", endpointTransactions, transactionID)), &out)
	if err != nil {
		return entities.Transaction{}, err
	}
	out.Raw = raw
	return out, nil
}

// GetPayURL builds the hosted-payment URL for an order. When amountCents is
// zero the amount is resolved via GetOrder first; a missing order amount or a
// payment-key response without a token yields "" with a nil error.
func (g *PaymobGateway) GetPayURL(ctx context.Context, orderID, amountCents int64, contact entities.BillingContact) (string, error) {
	if amountCents <= 0 {
		order, err := g.GetOrder(ctx, orderID)
		if err != nil {
			return "", err
		}
		if order.AmountCents == nil {
			log.Printf("[paymob][gateway] pay-url order_id=%d has no amount_cents; giving up", orderID)
			return "", nil
		}
		amountCents = *order.AmountCents
	}

	key, err := g.GetPaymentKey(ctx, amountCents, orderID, contact)
	if err != nil {
		return "", err
	}
	if key.Token == "" {
		log.Printf("[paymob][gateway] pay-url order_id=%d payment key has no token", orderID)
		return "", nil
	}
	return g.PaymentURL(key.Token), nil
}

// PaymentURL formats the hosted iframe URL for a payment token.
func (g *PaymobGateway) PaymentURL(paymentToken string) string {
	return fmt.Sprintf("%s%s/%s?payment_token=%s", g.baseURL, endpointIframes, g.iframeID, paymentToken)
}

func fillBillingDefaults(c entities.BillingContact) entities.BillingContact {
	for _, f := range []*string{&c.Email, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.City, &c.Country} {
		if *f == "" {
			*f = billingPlaceholder
		}
	}
	return c
}

// tokenURL appends the session token as a query parameter. An empty token is
// sent as-is; the provider rejects the call server-side.
func (g *PaymobGateway) tokenURL(path string) string {
	return fmt.Sprintf("%s%s?token=%s", g.baseURL, path, url.QueryEscape(g.session.Token))
}

func (g *PaymobGateway) pagedTokenURL(path string, page int) string {
	return fmt.Sprintf("%s%s?page=%d&token=%s", g.baseURL, path, page, url.QueryEscape(g.session.Token))
}

func (g *PaymobGateway) postJSON(ctx context.Context, op, endpoint string, payload, out any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return g.do(op, req, out)
}

func (g *PaymobGateway) getJSON(ctx context.Context, op, endpoint string, out any) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return g.do(op, req, out)
}

// do performs the round trip and parses the JSON body into out. HTTP error
// statuses are not treated specially: the provider reports business errors in
// the body and this client hands them back unmodified.
func (g *PaymobGateway) do(op string, req *http.Request, out any) (json.RawMessage, error) {
	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[paymob][gateway] %s transport failure err=%v", op, err)
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[paymob][gateway] %s body read failure err=%v", op, err)
		return nil, &TransportError{Op: op, Err: err}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("[paymob][gateway] %s response parse failure status=%d err=%v", op, resp.StatusCode, err)
		return nil, &ResponseParseError{Op: op, Err: err}
	}
	return raw, nil
}
