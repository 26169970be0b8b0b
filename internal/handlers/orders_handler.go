package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusquick/orders-api/internal/aws"
	"github.com/campusquick/orders-api/internal/orders"
	"github.com/campusquick/orders-api/internal/products"
	"github.com/campusquick/orders-api/internal/validation"
)

// HandlerConfig groups dependencies for the API handlers.
type HandlerConfig struct {
	DynamoDBClient aws.DynamoDBAPI
	SQSClient      aws.SQSAPI
	ProductsTable  string
	OrdersTable    string
	EventsQueueURL string // empty disables order-placed events
}

// respondError writes the uniform failure envelope.
func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// RegisterRoutes registers the product and order routes.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()
	productStore := products.NewStore(cfg.DynamoDBClient, cfg.ProductsTable)
	orderStore := orders.NewStore(cfg.DynamoDBClient, cfg.OrdersTable)

	var publisher *aws.Publisher
	if cfg.SQSClient != nil && cfg.EventsQueueURL != "" {
		publisher = aws.NewPublisher(cfg.SQSClient, cfg.EventsQueueURL)
	}
	orderService := orders.NewService(productStore, orderStore, publisher)

	r.GET("/products", func(c *gin.Context) {
		list, err := productStore.List(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"count":    len(list),
			"products": list,
		})
	})

	r.GET("/orders", func(c *gin.Context) {
		list, err := orderStore.List(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"count":   len(list),
			"orders":  list,
		})
	})

	r.POST("/orders", func(c *gin.Context) {
		var req validation.CreateOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 400
			return
		}

		in := orders.CreateOrderInput{
			CustomerID:           req.CustomerID,
			DeliveryAddress:      req.DeliveryAddress,
			DeliveryInstructions: req.DeliveryInstructions,
			Items:                make([]orders.ItemInput, 0, len(req.Items)),
		}
		for _, it := range req.Items {
			in.Items = append(in.Items, orders.ItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
		}

		order, err := orderService.Create(c.Request.Context(), in)
		if err != nil {
			var notFound *orders.ProductNotFoundError
			var noStock *orders.InsufficientStockError
			if errors.As(err, &notFound) || errors.As(err, &noStock) {
				respondError(c, http.StatusBadRequest, err.Error())
				return
			}
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Order created successfully",
			"order":   order,
		})
	})

	r.PUT("/orders/:orderId", func(c *gin.Context) {
		orderID := c.Param("orderId")
		if orderID == "" {
			respondError(c, http.StatusBadRequest, "orderId is required")
			return
		}

		var req validation.UpdateOrderStatusRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}
		if !orders.ValidStatus(req.Status) {
			respondError(c, http.StatusBadRequest,
				fmt.Sprintf("Invalid status. Must be one of: %s", strings.Join(orders.AllowedStatuses, ", ")))
			return
		}

		if err := orderStore.UpdateStatus(c.Request.Context(), orderID, req.Status); err != nil {
			if errors.Is(err, orders.ErrOrderNotFound) {
				respondError(c, http.StatusNotFound, "Order not found")
				return
			}
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   fmt.Sprintf("Order %s status updated to %s", orderID, req.Status),
			"orderId":   orderID,
			"newStatus": req.Status,
		})
	})
}
