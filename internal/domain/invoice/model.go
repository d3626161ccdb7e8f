// Package invoice provides the Invoice entity: one delivery event tying
// a product to the provider that delivered it.
package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents a delivery record.
type Invoice struct {
	ID         int64           `db:"id" json:"id"`
	ProductID  int64           `db:"product_id" json:"product_id"`
	ProviderID int64           `db:"provider_id" json:"provider_id"`
	Status     string          `db:"status" json:"status"`
	Quantity   int             `db:"quantity" json:"quantity"`
	ReceivedAt time.Time       `db:"recivedat" json:"recivedat"`
	Price      decimal.Decimal `db:"price" json:"price"`
	Discount   decimal.Decimal `db:"discount" json:"discount"`
	Total      decimal.Decimal `db:"total" json:"total"`
	CreatedAt  time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updatedAt"`
}

// Input is the submitted field set for create and update operations.
type Input struct {
	ProductID  int64
	ProviderID int64
	Status     string
	Quantity   int
	ReceivedAt time.Time
	Price      decimal.Decimal
	Discount   decimal.Decimal
	Total      decimal.Decimal
}

// Validate checks the input against the invoice rules and returns a
// field -> reason map. An empty map means the input is accepted.
// Referential integrity of product_id and provider_id is enforced by
// the store's foreign keys.
func (in Input) Validate() map[string]string {
	fields := make(map[string]string)

	if in.ProductID < 1 {
		fields["product_id"] = "must be at least 1"
	}
	if in.ProviderID < 1 {
		fields["provider_id"] = "must be at least 1"
	}
	if in.Status == "" {
		fields["status"] = "is required"
	}
	if in.Quantity < 1 {
		fields["quantity"] = "must be at least 1"
	}
	if in.ReceivedAt.IsZero() {
		fields["recivedat"] = "is required"
	}
	if in.Price.IsNegative() {
		fields["price"] = "must not be negative"
	}
	if in.Discount.IsNegative() {
		fields["discount"] = "must not be negative"
	}
	if in.Total.IsNegative() {
		fields["total"] = "must not be negative"
	}

	return fields
}
