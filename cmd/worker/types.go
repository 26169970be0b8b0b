package main

// queueMessage is the order-placed payload sent from API -> SQS -> worker.
// Mirrors aws.OrderPlacedEvent on the wire.
type queueMessage struct {
	OrderID    string `json:"orderId"`
	CustomerID string `json:"customerId"`
	Total      string `json:"total"`
	CreatedAt  int64  `json:"createdAt"`
}
