package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"stockyard/internal/domain/depot"
)

// DepotRequest is the submitted field set for depot create and update.
type DepotRequest struct {
	Location string          `json:"location"`
	Size     string          `json:"size"`
	Capacity int             `json:"capacity"`
	Type     string          `json:"type"`
	IsRented bool            `json:"isRented"`
	Rent     decimal.Decimal `json:"rent"`
}

// ToInput projects the request into the domain input.
func (r DepotRequest) ToInput() depot.Input {
	return depot.Input{
		Location: r.Location,
		Size:     r.Size,
		Capacity: r.Capacity,
		Type:     r.Type,
		IsRented: r.IsRented,
		Rent:     r.Rent,
	}
}

// DepotResponse renders a depot.
type DepotResponse struct {
	ID        int64           `json:"id"`
	Location  string          `json:"location"`
	Size      string          `json:"size"`
	Capacity  int             `json:"capacity"`
	Type      string          `json:"type"`
	IsRented  bool            `json:"isRented"`
	Rent      decimal.Decimal `json:"rent"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// FromDepot creates a DepotResponse from the entity.
func FromDepot(d *depot.Depot) DepotResponse {
	return DepotResponse{
		ID:        d.ID,
		Location:  d.Location,
		Size:      d.Size,
		Capacity:  d.Capacity,
		Type:      d.Type,
		IsRented:  d.IsRented,
		Rent:      d.Rent,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// FromDepots maps a depot listing.
func FromDepots(depots []depot.Depot) []DepotResponse {
	out := make([]DepotResponse, len(depots))
	for i := range depots {
		out[i] = FromDepot(&depots[i])
	}
	return out
}
