package interfaces

import (
	"context"

	"paymob_service/internal/domain/entities"
)

// IPaymobGateway abstracts the Paymob acceptance API client.
//
// Each operation maps to exactly one provider HTTP call. Missing provider
// fields are data, not errors: callers check entities for presence (Found,
// empty token) instead of relying on returned errors for those cases.
type IPaymobGateway interface {
	Authenticate(ctx context.Context) (entities.AuthResponse, error)
	CreateOrder(ctx context.Context, amountCents int64, merchantOrderID string) (entities.Order, error)
	GetPaymentKey(ctx context.Context, amountCents, orderID int64, contact entities.BillingContact) (entities.PaymentKey, error)
	ChargeCard(ctx context.Context, card entities.CardData, contact entities.BillingContact) (entities.Transaction, error)
	Capture(ctx context.Context, transactionID, amountCents int64) (entities.Transaction, error)
	ListOrders(ctx context.Context, page int) (entities.OrderList, error)
	GetOrder(ctx context.Context, orderID int64) (entities.Order, error)
	ListTransactions(ctx context.Context, page int) (entities.TransactionList, error)
	GetTransaction(ctx context.Context, transactionID int64) (entities.Transaction, error)

	// GetPayURL resolves the order amount when amountCents is zero and returns
	// the hosted-payment URL, or "" when the order or payment key is missing.
	GetPayURL(ctx context.Context, orderID, amountCents int64, contact entities.BillingContact) (string, error)

	// PaymentURL formats the hosted-payment iframe URL. No network call.
	PaymentURL(paymentToken string) string

	Session() entities.Session
}
