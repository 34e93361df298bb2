package routes

import (
	"paymob_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders       = "/orders"
	PathPayments     = "/payments"
	PathTransactions = "/transactions"
)

func addAcceptanceRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, paymentHandler *handlers.PaymentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.GET("/:order_id/pay-url", orderHandler.GetPayURL)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.ChargeCard)
		payments.POST("/:transaction_id/capture", paymentHandler.Capture)
	}

	transactions := rg.Group(PathTransactions)
	{
		transactions.GET("", paymentHandler.ListTransactions)
		transactions.GET("/:transaction_id", paymentHandler.GetTransaction)
	}
}
