// Package product provides the Product entity: an inventory item stored
// in a depot.
package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents an inventory item.
type Product struct {
	ID        int64           `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Size      string          `db:"size" json:"size"`
	Weight    decimal.Decimal `db:"weight" json:"weight"`
	Cost      decimal.Decimal `db:"cost" json:"cost"`
	Quantity  int             `db:"quantity" json:"quantity"`
	Type      string          `db:"type" json:"type"`
	ExpiredAt *time.Time      `db:"expiredat" json:"expiredat,omitempty"`
	DepotID   int64           `db:"depot_id" json:"depot_id"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}

// Input is the submitted field set for create and update operations.
// ExpiredAt is the one optional field; when nil the persisted statement
// omits the column entirely.
type Input struct {
	Name      string
	Size      string
	Weight    decimal.Decimal
	Cost      decimal.Decimal
	Quantity  int
	Type      string
	ExpiredAt *time.Time
	DepotID   int64
}

// Validate checks the input against the product rules and returns a
// field -> reason map. An empty map means the input is accepted.
// Name uniqueness is checked separately against the store.
func (in Input) Validate() map[string]string {
	fields := make(map[string]string)

	if len(in.Name) < 2 {
		fields["name"] = "must be at least 2 characters"
	}
	if len(in.Size) < 3 {
		fields["size"] = "must be at least 3 characters"
	}
	if in.Weight.LessThan(decimal.NewFromInt(1)) {
		fields["weight"] = "must be at least 1"
	}
	if in.Cost.LessThan(decimal.NewFromInt(1)) {
		fields["cost"] = "must be at least 1"
	}
	if in.Quantity < 1 {
		fields["quantity"] = "must be at least 1"
	}
	if in.Type == "" {
		fields["type"] = "is required"
	}
	if in.DepotID < 1 {
		fields["depot_id"] = "must be at least 1"
	}

	return fields
}
