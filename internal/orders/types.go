package orders

import "github.com/campusquick/orders-api/internal/money"

// Order statuses, in lifecycle order. Only set membership is enforced:
// the updater accepts any of these regardless of the current status.
const (
	StatusPending        = "pending"
	StatusAccepted       = "accepted"
	StatusPicking        = "picking"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
)

// AllowedStatuses lists every accepted status value.
var AllowedStatuses = []string{
	StatusPending,
	StatusAccepted,
	StatusPicking,
	StatusOutForDelivery,
	StatusDelivered,
}

// ValidStatus reports whether s is one of the allowed status values.
func ValidStatus(s string) bool {
	for _, v := range AllowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// DeliveryFee is the flat fee added to every order.
var DeliveryFee = money.MustFromString("2.00")

// OrderItem is a line item embedded in an Order. Name and Price are
// snapshots of the product at order time; later catalog changes do not
// affect existing orders.
type OrderItem struct {
	ProductID string       `json:"productId" dynamodbav:"productId"`
	Name      string       `json:"name" dynamodbav:"name"`
	Quantity  int          `json:"quantity" dynamodbav:"quantity"`
	Price     money.Amount `json:"price" dynamodbav:"price"`
	ItemTotal money.Amount `json:"itemTotal" dynamodbav:"itemTotal"`
}

// Order represents the item stored in the orders DynamoDB table.
// Items, totals and the delivery address are immutable after creation;
// only status and its derived timestamps change.
type Order struct {
	OrderID              string       `json:"orderId" dynamodbav:"orderId"` // PK
	CustomerID           string       `json:"customerId" dynamodbav:"customerId"`
	CreatedAt            int64        `json:"createdAt" dynamodbav:"createdAt"` // epoch millis
	Items                []OrderItem  `json:"items" dynamodbav:"items"`
	Subtotal             money.Amount `json:"subtotal" dynamodbav:"subtotal"`
	DeliveryFee          money.Amount `json:"deliveryFee" dynamodbav:"deliveryFee"`
	Total                money.Amount `json:"total" dynamodbav:"total"`
	DeliveryAddress      string       `json:"deliveryAddress" dynamodbav:"deliveryAddress"`
	DeliveryInstructions string       `json:"deliveryInstructions" dynamodbav:"deliveryInstructions"`
	Status               string       `json:"status" dynamodbav:"status"`
	RunnerID             *string      `json:"runnerId" dynamodbav:"runnerId,omitempty"`
	AcceptedAt           *int64       `json:"acceptedAt" dynamodbav:"acceptedAt,omitempty"` // epoch millis, set once
	DeliveredAt          *int64       `json:"deliveredAt" dynamodbav:"deliveredAt,omitempty"`
	UpdatedAt            int64        `json:"updatedAt,omitempty" dynamodbav:"updatedAt,omitempty"`
}
