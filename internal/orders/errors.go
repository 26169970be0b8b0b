package orders

import (
	"errors"
	"fmt"
)

// ErrOrderNotFound indicates no order exists for the given id.
var ErrOrderNotFound = errors.New("Order not found")

// ProductNotFoundError is returned when an order references an unknown product.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product not found: %s", e.ProductID)
}

// InsufficientStockError is returned when a requested quantity exceeds stock.
type InsufficientStockError struct {
	ProductName string
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for %s. Available: %d", e.ProductName, e.Available)
}
