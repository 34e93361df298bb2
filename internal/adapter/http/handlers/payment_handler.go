package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"paymob_service/internal/adapter/http/dto/request"
	"paymob_service/internal/adapter/http/dto/response"
	"paymob_service/internal/infrastructure/payments"
	"paymob_service/internal/usecase"
	"paymob_service/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for direct card payments, captures and
// transaction lookups.

type PaymentHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewPaymentHandler(uc usecase.ICheckoutUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// ChargeCard executes a direct card payment (mobile/API flow).
//
// @Summary  Charge a card
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    payment  body  request.ChargeCardRequest  true  "card and billing contact"
// @Success  200  {object}  response.TransactionResponse
// @Router   /payments [post]
func (h *PaymentHandler) ChargeCard(c *gin.Context) {
	var req request.ChargeCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] charge invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] charge start holder=%q", req.Card.HolderName)
	tx, err := h.usecase.ChargeCard(c.Request.Context(), req.Card.ToEntity(), req.Billing.ToEntity())
	if err != nil {
		log.Printf("[payment][handler] charge failed err=%v", err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// Capture finalizes a previously authorized transaction.
//
// @Summary  Capture an authorized transaction
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    transaction_id  path  int                     true  "provider transaction id"
// @Param    capture         body  request.CaptureRequest  true  "capture amount"
// @Success  200  {object}  response.TransactionResponse
// @Router   /payments/{transaction_id}/capture [post]
func (h *PaymentHandler) Capture(c *gin.Context) {
	transactionID, err := strconv.ParseInt(c.Param("transaction_id"), 10, 64)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid transaction id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	var req request.CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] capture invalid payload transaction_id=%d err=%v", transactionID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] capture start transaction_id=%d amount_cents=%d", transactionID, req.AmountCents)
	tx, err := h.usecase.Capture(c.Request.Context(), transactionID, req.AmountCents)
	if err != nil {
		log.Printf("[payment][handler] capture failed transaction_id=%d err=%v", transactionID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// ListTransactions returns one page of provider transactions.
//
// @Summary  List transactions
// @Tags     transactions
// @Produce  json
// @Param    page  query  int  false  "1-based page number"
// @Success  200  {object}  response.TransactionListResponse
// @Router   /transactions [get]
func (h *PaymentHandler) ListTransactions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	txs, err := h.usecase.ListTransactions(c.Request.Context(), page)
	if err != nil {
		log.Printf("[payment][handler] list failed page=%d err=%v", page, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransactionList(txs))
}

// GetTransaction returns a single provider transaction.
//
// @Summary  Get a transaction
// @Tags     transactions
// @Produce  json
// @Param    transaction_id  path  int  true  "provider transaction id"
// @Success  200  {object}  response.TransactionResponse
// @Router   /transactions/{transaction_id} [get]
func (h *PaymentHandler) GetTransaction(c *gin.Context) {
	transactionID, err := strconv.ParseInt(c.Param("transaction_id"), 10, 64)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid transaction id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	tx, err := h.usecase.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		log.Printf("[payment][handler] get failed transaction_id=%d err=%v", transactionID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// mapCheckoutError translates use case and gateway errors into AppErrors.
// Provider-declined payments are not errors; they come back inside the
// transaction body.
func mapCheckoutError(err error) *pkg.AppError {
	var transportErr *payments.TransportError
	var parseErr *payments.ResponseParseError

	switch {
	case errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidTransactionID),
		errors.Is(err, usecase.ErrInvalidCard):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPayURLUnavailable):
		return pkg.NewDomainErrorSimple("PAY_URL_UNAVAILABLE", "Pay URL unavailable for this order", http.StatusNotFound)
	case errors.As(err, &transportErr):
		return pkg.NewDomainError("GATEWAY_UNREACHABLE", "Payment gateway unreachable", http.StatusBadGateway, err)
	case errors.As(err, &parseErr):
		return pkg.NewDomainError("GATEWAY_BAD_RESPONSE", "Payment gateway returned an unreadable response", http.StatusBadGateway, err)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal error", http.StatusInternalServerError, err)
	}
}
