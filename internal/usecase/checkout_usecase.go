package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"paymob_service/internal/domain/entities"
	"paymob_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount        = errors.New("invalid amount_cents")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidTransactionID = errors.New("invalid transaction id")
	ErrInvalidCard          = errors.New("invalid card data")
	ErrOrderNotFound        = errors.New("order not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrPayURLUnavailable    = errors.New("pay url unavailable")
)

// ICheckoutUseCase exposes the gateway operations to the HTTP adapter.
//
// The use case validates its own inputs and turns the client's "field not
// present" results into not-found sentinels at the service boundary; inside
// the client those conditions stay data, per the provider's permissive
// contract.

type ICheckoutUseCase interface {
	CreateOrder(ctx context.Context, amountCents int64, merchantOrderID string) (entities.Order, error)
	GetOrder(ctx context.Context, orderID int64) (entities.Order, error)
	ListOrders(ctx context.Context, page int) (entities.OrderList, error)
	GetPayURL(ctx context.Context, orderID, amountCents int64, contact entities.BillingContact) (string, error)
	ChargeCard(ctx context.Context, card entities.CardData, contact entities.BillingContact) (entities.Transaction, error)
	Capture(ctx context.Context, transactionID, amountCents int64) (entities.Transaction, error)
	ListTransactions(ctx context.Context, page int) (entities.TransactionList, error)
	GetTransaction(ctx context.Context, transactionID int64) (entities.Transaction, error)
}

type CheckoutUseCase struct {
	gateway interfaces.IPaymobGateway
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(gateway interfaces.IPaymobGateway) *CheckoutUseCase {
	return &CheckoutUseCase{gateway: gateway}
}

func (u *CheckoutUseCase) CreateOrder(ctx context.Context, amountCents int64, merchantOrderID string) (entities.Order, error) {
	if amountCents <= 0 {
		return entities.Order{}, ErrInvalidAmount
	}
	if u.gateway == nil {
		return entities.Order{}, errors.New("payment gateway not configured")
	}

	merchantOrderID = strings.TrimSpace(merchantOrderID)
	if merchantOrderID == "" {
		merchantOrderID = uuid.NewString()
		log.Printf("[checkout][usecase] generated merchant_order_id=%s", merchantOrderID)
	}

	log.Printf("[checkout][usecase] create-order start merchant_order_id=%s amount_cents=%d", merchantOrderID, amountCents)
	order, err := u.gateway.CreateOrder(ctx, amountCents, merchantOrderID)
	if err != nil {
		log.Printf("[checkout][usecase] create-order failed merchant_order_id=%s err=%v", merchantOrderID, err)
		return entities.Order{}, err
	}
	return order, nil
}

func (u *CheckoutUseCase) GetOrder(ctx context.Context, orderID int64) (entities.Order, error) {
	if orderID <= 0 {
		return entities.Order{}, ErrInvalidOrderID
	}
	if u.gateway == nil {
		return entities.Order{}, errors.New("payment gateway not configured")
	}

	order, err := u.gateway.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !order.Found() {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *CheckoutUseCase) ListOrders(ctx context.Context, page int) (entities.OrderList, error) {
	if u.gateway == nil {
		return entities.OrderList{}, errors.New("payment gateway not configured")
	}
	if page <= 0 {
		page = 1
	}
	return u.gateway.ListOrders(ctx, page)
}

func (u *CheckoutUseCase) GetPayURL(ctx context.Context, orderID, amountCents int64, contact entities.BillingContact) (string, error) {
	if orderID <= 0 {
		return "", ErrInvalidOrderID
	}
	if u.gateway == nil {
		return "", errors.New("payment gateway not configured")
	}

	log.Printf("[checkout][usecase] pay-url start order_id=%d amount_cents=%d", orderID, amountCents)
	payURL, err := u.gateway.GetPayURL(ctx, orderID, amountCents, contact)
	if err != nil {
		log.Printf("[checkout][usecase] pay-url failed order_id=%d err=%v", orderID, err)
		return "", err
	}
	if payURL == "" {
		return "", ErrPayURLUnavailable
	}
	return payURL, nil
}

func (u *CheckoutUseCase) ChargeCard(ctx context.Context, card entities.CardData, contact entities.BillingContact) (entities.Transaction, error) {
	if card.Number == "" || card.HolderName == "" || card.ExpiryMonth == "" || card.ExpiryYear == "" || card.CVN == "" {
		return entities.Transaction{}, ErrInvalidCard
	}
	if u.gateway == nil {
		return entities.Transaction{}, errors.New("payment gateway not configured")
	}

	log.Printf("[checkout][usecase] charge start holder=%s", card.HolderName)
	tx, err := u.gateway.ChargeCard(ctx, card, contact)
	if err != nil {
		log.Printf("[checkout][usecase] charge failed err=%v", err)
		return entities.Transaction{}, err
	}
	return tx, nil
}

func (u *CheckoutUseCase) Capture(ctx context.Context, transactionID, amountCents int64) (entities.Transaction, error) {
	if transactionID <= 0 {
		return entities.Transaction{}, ErrInvalidTransactionID
	}
	if amountCents <= 0 {
		return entities.Transaction{}, ErrInvalidAmount
	}
	if u.gateway == nil {
		return entities.Transaction{}, errors.New("payment gateway not configured")
	}

	log.Printf("[checkout][usecase] capture start transaction_id=%d amount_cents=%d", transactionID, amountCents)
	tx, err := u.gateway.Capture(ctx, transactionID, amountCents)
	if err != nil {
		log.Printf("[checkout][usecase] capture failed transaction_id=%d err=%v", transactionID, err)
		return entities.Transaction{}, err
	}
	return tx, nil
}

func (u *CheckoutUseCase) ListTransactions(ctx context.Context, page int) (entities.TransactionList, error) {
	if u.gateway == nil {
		return entities.TransactionList{}, errors.New("payment gateway not configured")
	}
	if page <= 0 {
		page = 1
	}
	return u.gateway.ListTransactions(ctx, page)
}

func (u *CheckoutUseCase) GetTransaction(ctx context.Context, transactionID int64) (entities.Transaction, error) {
	if transactionID <= 0 {
		return entities.Transaction{}, ErrInvalidTransactionID
	}
	if u.gateway == nil {
		return entities.Transaction{}, errors.New("payment gateway not configured")
	}

	tx, err := u.gateway.GetTransaction(ctx, transactionID)
	if err != nil {
		return entities.Transaction{}, err
	}
	if !tx.Found() {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return tx, nil
}
