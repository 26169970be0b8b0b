// Package money provides an exact decimal amount for prices and totals.
// Amounts are stored in DynamoDB as native Numbers and serialized to JSON
// as plain (unquoted) numbers; arithmetic never goes through float64.
package money

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// Amount is an exact decimal monetary value.
type Amount struct {
	d decimal.Decimal
}

// Zero is the zero amount.
var Zero = Amount{}

// FromString parses a decimal string like "2.00".
func FromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return Amount{d: d}, nil
}

// MustFromString parses a decimal string and panics on failure.
// For constants known at compile time.
func MustFromString(s string) Amount {
	return Amount{d: decimal.RequireFromString(s)}
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

// MulInt returns a multiplied by an integer quantity.
func (a Amount) MulInt(n int) Amount {
	return Amount{d: a.d.Mul(decimal.NewFromInt(int64(n)))}
}

// Equal reports exact decimal equality (2.0 == 2.00).
func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a.d.IsNegative()
}

// String renders the amount as a plain decimal number.
func (a Amount) String() string {
	return a.d.String()
}

// Float64 converts to float64 for transports that cannot carry decimals
// (CloudWatch metric values). Lossy; never feed the result back into totals.
func (a Amount) Float64() float64 {
	f, _ := a.d.Float64()
	return f
}

// MarshalJSON writes the amount as a plain JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.d.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (a *Amount) UnmarshalJSON(b []byte) error {
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		b = b[1 : len(b)-1]
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return fmt.Errorf("parse amount %q: %w", b, err)
	}
	a.d = d
	return nil
}

// MarshalDynamoDBAttributeValue stores the amount as a DynamoDB Number.
func (a Amount) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: a.d.String()}, nil
}

// UnmarshalDynamoDBAttributeValue reads a DynamoDB Number (or numeric string).
func (a *Amount) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	var raw string
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		raw = v.Value
	case *types.AttributeValueMemberS:
		raw = v.Value
	default:
		return fmt.Errorf("amount: unexpected attribute type %T", av)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("parse amount %q: %w", raw, err)
	}
	a.d = d
	return nil
}
