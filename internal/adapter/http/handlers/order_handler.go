package handlers

import (
	"log"
	"net/http"
	"strconv"

	"paymob_service/internal/adapter/http/dto/request"
	"paymob_service/internal/adapter/http/dto/response"
	"paymob_service/internal/domain/entities"
	"paymob_service/internal/usecase"
	"paymob_service/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles HTTP requests for provider orders.

type OrderHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewOrderHandler(uc usecase.ICheckoutUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder registers a new order with the payment provider.
//
// @Summary  Register an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    order  body  request.CreateOrderRequest  true  "order to register"
// @Success  200  {object}  response.OrderResponse
// @Router   /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[order][handler] create invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[order][handler] create start amount_cents=%d merchant_order_id=%q", req.AmountCents, req.MerchantOrderID)
	order, err := h.usecase.CreateOrder(c.Request.Context(), req.AmountCents, req.MerchantOrderID)
	if err != nil {
		log.Printf("[order][handler] create failed err=%v", err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListOrders returns one page of provider orders.
//
// @Summary  List orders
// @Tags     orders
// @Produce  json
// @Param    page  query  int  false  "1-based page number"
// @Success  200  {object}  response.OrderListResponse
// @Router   /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	orders, err := h.usecase.ListOrders(c.Request.Context(), page)
	if err != nil {
		log.Printf("[order][handler] list failed page=%d err=%v", page, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderList(orders))
}

// GetOrder returns a single provider order.
//
// @Summary  Get an order
// @Tags     orders
// @Produce  json
// @Param    order_id  path  int  true  "provider order id"
// @Success  200  {object}  response.OrderResponse
// @Router   /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid order id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[order][handler] get failed order_id=%d err=%v", orderID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// GetPayURL builds the hosted-payment URL for an order. When `amount_cents`
// is absent the amount is resolved from the provider order first.
//
// @Summary  Get the hosted-payment URL for an order
// @Tags     orders
// @Produce  json
// @Param    order_id      path   int     true   "provider order id"
// @Param    amount_cents  query  int     false  "override amount in cents"
// @Param    email         query  string  false  "billing email"
// @Success  200  {object}  response.PayURLResponse
// @Router   /orders/{order_id}/pay-url [get]
func (h *OrderHandler) GetPayURL(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid order id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	amountCents, _ := strconv.ParseInt(c.Query("amount_cents"), 10, 64)
	contact := entities.BillingContact{
		FirstName:   c.Query("first_name"),
		LastName:    c.Query("last_name"),
		Email:       c.Query("email"),
		PhoneNumber: c.Query("phone"),
		City:        c.Query("city"),
		Country:     c.Query("country"),
	}

	log.Printf("[order][handler] pay-url start order_id=%d amount_cents=%d", orderID, amountCents)
	payURL, err := h.usecase.GetPayURL(c.Request.Context(), orderID, amountCents, contact)
	if err != nil {
		log.Printf("[order][handler] pay-url failed order_id=%d err=%v", orderID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PayURLResponse{OrderID: orderID, PayURL: payURL})
}
