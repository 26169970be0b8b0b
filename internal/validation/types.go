package validation

// ItemRequest is a single requested order line.
type ItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest is the payload for POST /orders.
type CreateOrderRequest struct {
	CustomerID           string        `json:"customerId" validate:"required"`
	Items                []ItemRequest `json:"items" validate:"required,min=1,dive"` // at least one item
	DeliveryAddress      string        `json:"deliveryAddress" validate:"required"`
	DeliveryInstructions string        `json:"deliveryInstructions"` // optional, defaults to empty
}

// UpdateOrderStatusRequest is the payload for PUT /orders/{orderId}.
// Status membership is checked against the allowed set by the handler
// so the error can list the valid values.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
