package orders

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/campusquick/orders-api/internal/aws"
)

// Store encapsulates operations on the orders table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewStore creates a new orders Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// Create persists a new order. The order id must be set by the caller.
// Fails if an order with the same id already exists.
func (s *Store) Create(ctx context.Context, order *Order) error {
	item, err := attributevalue.MarshalMap(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	input := &dyn.PutItemInput{
		TableName:           &s.tableName,
		Item:                item,
		ConditionExpression: awsString("attribute_not_exists(orderId)"),
	}
	if _, err := s.client.PutItem(ctx, input); err != nil {
		return fmt.Errorf("put order: %w", err)
	}
	return nil
}

// Get fetches an order by orderId. Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, orderID string) (*Order, error) {
	key := map[string]types.AttributeValue{
		"orderId": &types.AttributeValueMemberS{Value: orderID},
	}
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var o Order
	if err := attributevalue.UnmarshalMap(out.Item, &o); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return &o, nil
}

// List returns every order, newest first by createdAt. The scan is
// unbounded and unfiltered.
func (s *Store) List(ctx context.Context) ([]Order, error) {
	out, err := s.client.Scan(ctx, &dyn.ScanInput{
		TableName: &s.tableName,
	})
	if err != nil {
		return nil, fmt.Errorf("scan orders: %w", err)
	}

	list := make([]Order, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &list); err != nil {
		return nil, fmt.Errorf("unmarshal orders: %w", err)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt > list[j].CreatedAt
	})
	return list, nil
}

// UpdateStatus sets the order status and updatedAt. When newStatus is
// accepted or delivered, the matching timestamp is set once and never
// overwritten on repeat updates. No transition check: any allowed status
// value is applied regardless of the current one.
// Returns ErrOrderNotFound if no order has the given id.
func (s *Store) UpdateStatus(ctx context.Context, orderID, newStatus string) error {
	nowMillis := s.nowFunc().UnixMilli()

	updateExpr := "SET #s = :status, updatedAt = :ua"
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: newStatus},
		":ua":     &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", nowMillis)},
	}

	switch newStatus {
	case StatusAccepted:
		updateExpr += ", acceptedAt = if_not_exists(acceptedAt, :ts)"
		values[":ts"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", nowMillis)}
	case StatusDelivered:
		updateExpr += ", deliveredAt = if_not_exists(deliveredAt, :ts)"
		values[":ts"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", nowMillis)}
	}

	input := &dyn.UpdateItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"orderId": &types.AttributeValueMemberS{Value: orderID},
		},
		UpdateExpression:          &updateExpr,
		ExpressionAttributeNames:  map[string]string{"#s": "status"},
		ExpressionAttributeValues: values,
		ConditionExpression:       awsString("attribute_exists(orderId)"),
	}

	if _, err := s.client.UpdateItem(ctx, input); err != nil {
		// the conditional check doubles as the existence check
		var cf *types.ConditionalCheckFailedException
		if errors.As(err, &cf) {
			return ErrOrderNotFound
		}
		var ae smithy.APIError
		if errors.As(err, &ae) && ae.ErrorCode() == "ConditionalCheckFailedException" {
			return ErrOrderNotFound
		}
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

func awsString(s string) *string { return &s }
