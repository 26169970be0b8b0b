package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/events"

	"github.com/campusquick/orders-api/internal/aws"
	"github.com/campusquick/orders-api/internal/orders"
)

// Processor consumes order-placed events and records order metrics.
// It never writes to the orders table; the API is the sole writer.
type Processor struct {
	orderStore *orders.Store
	metrics    *aws.Metrics
}

// NewProcessor creates a worker processor with AWS clients injected.
func NewProcessor(clients *aws.AWSClients, ordersTable string) *Processor {
	return &Processor{
		orderStore: orders.NewStore(clients.DynamoDB, ordersTable),
		metrics:    aws.NewMetrics(clients.CloudWatch),
	}
}

// Handle receives an SQS batch event and processes each message.
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) error {
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			// Return error: Lambda will retry. If failed too many times, message goes to DLQ.
			log.Printf("worker error: %v", err)
			return err
		}
	}
	return nil
}

func (p *Processor) processMessage(ctx context.Context, rec events.SQSMessage) error {
	var msg queueMessage
	if err := json.Unmarshal([]byte(rec.Body), &msg); err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}

	log.Printf("[worker] received order=%s customer=%s", msg.OrderID, msg.CustomerID)

	// The event races the read-after-write only in theory (DynamoDB puts
	// are durable before the API publishes), so a missing order means a
	// bad message, not an ordering problem.
	order, err := p.orderStore.Get(ctx, msg.OrderID)
	if err != nil {
		return fmt.Errorf("failed to fetch order: %w", err)
	}
	if order == nil {
		return fmt.Errorf("order not found: %s", msg.OrderID)
	}

	if err := p.metrics.RecordOrderPlaced(ctx, order.Total.Float64()); err != nil {
		return fmt.Errorf("failed to record metrics: %w", err)
	}

	log.Printf("[worker] recorded metrics for order=%s total=%s", order.OrderID, order.Total)
	return nil
}
