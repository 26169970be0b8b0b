package orders

import (
	"context"
	"errors"
	"strings"
	"sync"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// mockDynamo is a small in-memory stand-in for DynamoDB covering the
// calls our stores make: conditional PutItem, GetItem, UpdateItem with
// the status update expression, and Scan. Tables are keyed by name;
// items by their orderId/productId attribute.
type mockDynamo struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue

	putCalls    int
	updateCalls int
	scanErr     error
}

func newMockDynamo(tableNames ...string) *mockDynamo {
	m := &mockDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
	for _, n := range tableNames {
		m.tables[n] = map[string]map[string]types.AttributeValue{}
	}
	return m
}

func itemKey(attrs map[string]types.AttributeValue) (string, error) {
	for _, name := range []string{"orderId", "productId"} {
		if av, ok := attrs[name]; ok {
			s, ok := av.(*types.AttributeValueMemberS)
			if !ok {
				return "", errors.New("key attribute is not a string")
			}
			return s.Value, nil
		}
	}
	return "", errors.New("no key attribute")
}

func (m *mockDynamo) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putCalls++
	table, ok := m.tables[*params.TableName]
	if !ok {
		return nil, errors.New("unknown table " + *params.TableName)
	}
	k, err := itemKey(params.Item)
	if err != nil {
		return nil, err
	}
	if params.ConditionExpression != nil && strings.HasPrefix(*params.ConditionExpression, "attribute_not_exists") {
		if _, exists := table[k]; exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	table[k] = params.Item
	return &dyn.PutItemOutput{}, nil
}

func (m *mockDynamo) GetItem(ctx context.Context, params *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	table, ok := m.tables[*params.TableName]
	if !ok {
		return nil, errors.New("unknown table " + *params.TableName)
	}
	k, err := itemKey(params.Key)
	if err != nil {
		return nil, err
	}
	item, ok := table[k]
	if !ok {
		return &dyn.GetItemOutput{}, nil
	}
	return &dyn.GetItemOutput{Item: item}, nil
}

func (m *mockDynamo) UpdateItem(ctx context.Context, params *dyn.UpdateItemInput, optFns ...func(*dyn.Options)) (*dyn.UpdateItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateCalls++
	table, ok := m.tables[*params.TableName]
	if !ok {
		return nil, errors.New("unknown table " + *params.TableName)
	}
	k, err := itemKey(params.Key)
	if err != nil {
		return nil, err
	}
	item, exists := table[k]
	if params.ConditionExpression != nil && strings.HasPrefix(*params.ConditionExpression, "attribute_exists") && !exists {
		return nil, &types.ConditionalCheckFailedException{}
	}
	if !exists {
		item = map[string]types.AttributeValue{}
	}

	// enough of the update expression for our store:
	// SET #s = :status, updatedAt = :ua [, acceptedAt|deliveredAt = if_not_exists(..., :ts)]
	expr := *params.UpdateExpression
	if v, ok := params.ExpressionAttributeValues[":status"]; ok {
		item["status"] = v
	}
	if v, ok := params.ExpressionAttributeValues[":ua"]; ok {
		item["updatedAt"] = v
	}
	if v, ok := params.ExpressionAttributeValues[":ts"]; ok {
		switch {
		case strings.Contains(expr, "acceptedAt = if_not_exists"):
			if _, set := item["acceptedAt"]; !set {
				item["acceptedAt"] = v
			}
		case strings.Contains(expr, "deliveredAt = if_not_exists"):
			if _, set := item["deliveredAt"]; !set {
				item["deliveredAt"] = v
			}
		}
	}
	table[k] = item
	return &dyn.UpdateItemOutput{Attributes: item}, nil
}

func (m *mockDynamo) Scan(ctx context.Context, params *dyn.ScanInput, optFns ...func(*dyn.Options)) (*dyn.ScanOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.scanErr != nil {
		return nil, m.scanErr
	}
	table, ok := m.tables[*params.TableName]
	if !ok {
		return nil, errors.New("unknown table " + *params.TableName)
	}
	items := make([]map[string]types.AttributeValue, 0, len(table))
	for _, it := range table {
		items = append(items, it)
	}
	return &dyn.ScanOutput{Items: items}, nil
}
