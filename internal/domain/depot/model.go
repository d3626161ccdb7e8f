// Package depot provides the Depot entity: a physical storage location
// that products are assigned to.
package depot

import (
	"time"

	"github.com/shopspring/decimal"
)

// Depot represents a storage location.
type Depot struct {
	ID        int64           `db:"id" json:"id"`
	Location  string          `db:"location" json:"location"`
	Size      string          `db:"size" json:"size"`
	Capacity  int             `db:"capacity" json:"capacity"`
	Type      string          `db:"type" json:"type"`
	IsRented  bool            `db:"is_rented" json:"isRented"`
	Rent      decimal.Decimal `db:"rent" json:"rent"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}

// Input is the submitted field set for create and update operations.
// Both operations replace the full field set.
type Input struct {
	Location string
	Size     string
	Capacity int
	Type     string
	IsRented bool
	Rent     decimal.Decimal
}

// Validate checks the input against the depot rules and returns a
// field -> reason map. An empty map means the input is accepted.
func (in Input) Validate() map[string]string {
	fields := make(map[string]string)

	if len(in.Location) < 2 {
		fields["location"] = "must be at least 2 characters"
	}
	if len(in.Size) < 3 {
		fields["size"] = "must be at least 3 characters"
	}
	if in.Capacity < 1 {
		fields["capacity"] = "must be at least 1"
	}
	if len(in.Type) < 2 {
		fields["type"] = "must be at least 2 characters"
	}
	if in.Rent.IsNegative() {
		fields["rent"] = "must not be negative"
	}

	return fields
}
