package products

import "github.com/campusquick/orders-api/internal/money"

// Product is an item in the catalog table. Products are seeded and
// mutated outside this service; handlers only ever read them.
type Product struct {
	ProductID string       `json:"productId" dynamodbav:"productId"` // PK
	Name      string       `json:"name" dynamodbav:"name"`
	Price     money.Amount `json:"price" dynamodbav:"price"`
	Stock     int          `json:"stock" dynamodbav:"stock"`
}
