package products

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/campusquick/orders-api/internal/aws"
)

// Store encapsulates read operations on the products table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
}

// NewStore creates a new products Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
	}
}

// List returns every product in the table. Ordering is whatever the
// store returns; callers must not rely on it.
func (s *Store) List(ctx context.Context) ([]Product, error) {
	out, err := s.client.Scan(ctx, &dyn.ScanInput{
		TableName: &s.tableName,
	})
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}

	prods := make([]Product, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &prods); err != nil {
		return nil, fmt.Errorf("unmarshal products: %w", err)
	}
	return prods, nil
}

// Get fetches a product by productId. Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, productID string) (*Product, error) {
	key := map[string]types.AttributeValue{
		"productId": &types.AttributeValueMemberS{Value: productID},
	}
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var p Product
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	return &p, nil
}
