package orders

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/campusquick/orders-api/internal/aws"
	"github.com/campusquick/orders-api/internal/money"
	"github.com/campusquick/orders-api/internal/products"
	"github.com/google/uuid"
)

// ItemInput is one requested line: a product reference and a quantity.
type ItemInput struct {
	ProductID string
	Quantity  int
}

// CreateOrderInput carries the validated create-order request.
type CreateOrderInput struct {
	CustomerID           string
	Items                []ItemInput
	DeliveryAddress      string
	DeliveryInstructions string
}

// Service implements order creation: catalog validation, total
// computation and the single persisting write.
type Service struct {
	products  *products.Store
	orders    *Store
	publisher *aws.Publisher // optional; nil disables event publishing
	nowFunc   func() time.Time
	newID     func() string
}

// NewService wires the order service. publisher may be nil when no
// event queue is configured.
func NewService(productStore *products.Store, orderStore *Store, publisher *aws.Publisher) *Service {
	return &Service{
		products:  productStore,
		orders:    orderStore,
		publisher: publisher,
		nowFunc:   time.Now,
		newID:     func() string { return "order_" + uuid.NewString() },
	}
}

// Create validates the request against the catalog, computes totals and
// persists the order. Items are checked in input order and the first
// failure wins; nothing is written before every item passes. Stock is
// checked but not decremented here — inventory is managed outside this
// service, so concurrent orders can oversell.
func (s *Service) Create(ctx context.Context, in CreateOrderInput) (*Order, error) {
	subtotal := money.Zero
	items := make([]OrderItem, 0, len(in.Items))

	for _, it := range in.Items {
		product, err := s.products.Get(ctx, it.ProductID)
		if err != nil {
			return nil, fmt.Errorf("look up product %s: %w", it.ProductID, err)
		}
		if product == nil {
			return nil, &ProductNotFoundError{ProductID: it.ProductID}
		}
		if product.Stock < it.Quantity {
			return nil, &InsufficientStockError{ProductName: product.Name, Available: product.Stock}
		}

		itemTotal := product.Price.MulInt(it.Quantity)
		subtotal = subtotal.Add(itemTotal)
		items = append(items, OrderItem{
			ProductID: it.ProductID,
			Name:      product.Name,
			Quantity:  it.Quantity,
			Price:     product.Price,
			ItemTotal: itemTotal,
		})
	}

	now := s.nowFunc()
	order := &Order{
		OrderID:              s.newID(),
		CustomerID:           in.CustomerID,
		CreatedAt:            now.UnixMilli(),
		Items:                items,
		Subtotal:             subtotal,
		DeliveryFee:          DeliveryFee,
		Total:                subtotal.Add(DeliveryFee),
		DeliveryAddress:      in.DeliveryAddress,
		DeliveryInstructions: in.DeliveryInstructions,
		Status:               StatusPending,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	// Best-effort: the order is already committed, so a publish failure
	// must not fail the request.
	if s.publisher != nil {
		ev := aws.OrderPlacedEvent{
			OrderID:    order.OrderID,
			CustomerID: order.CustomerID,
			Total:      order.Total.String(),
			CreatedAt:  order.CreatedAt,
		}
		if err := s.publisher.PublishOrderPlaced(ctx, ev, map[string]string{"order_id": order.OrderID}); err != nil {
			log.Printf("publish order placed event for %s: %v", order.OrderID, err)
		}
	}

	return order, nil
}
