package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"stockyard/internal/core/apperror"
	"stockyard/internal/domain/product"
)

// ProductRequest is the submitted field set for product create and
// update. The expiration date is optional; an empty string means the
// product does not expire.
type ProductRequest struct {
	Name      string          `json:"name"`
	Size      string          `json:"size"`
	Weight    decimal.Decimal `json:"weight"`
	Cost      decimal.Decimal `json:"cost"`
	Quantity  int             `json:"quantity"`
	Type      string          `json:"type"`
	ExpiredAt string          `json:"expiredat"`
	DepotID   int64           `json:"depot_id"`
}

// ToInput projects the request into the domain input, parsing the
// optional expiration date.
func (r ProductRequest) ToInput() (product.Input, *apperror.AppError) {
	expiredAt, aerr := parseOptionalDate("expiredat", r.ExpiredAt)
	if aerr != nil {
		return product.Input{}, aerr
	}
	return product.Input{
		Name:      r.Name,
		Size:      r.Size,
		Weight:    r.Weight,
		Cost:      r.Cost,
		Quantity:  r.Quantity,
		Type:      r.Type,
		ExpiredAt: expiredAt,
		DepotID:   r.DepotID,
	}, nil
}

// ProductResponse renders a product.
type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Size      string          `json:"size"`
	Weight    decimal.Decimal `json:"weight"`
	Cost      decimal.Decimal `json:"cost"`
	Quantity  int             `json:"quantity"`
	Type      string          `json:"type"`
	ExpiredAt *string         `json:"expiredat,omitempty"`
	DepotID   int64           `json:"depot_id"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// FromProduct creates a ProductResponse from the entity.
func FromProduct(p *product.Product) ProductResponse {
	resp := ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Size:      p.Size,
		Weight:    p.Weight,
		Cost:      p.Cost,
		Quantity:  p.Quantity,
		Type:      p.Type,
		DepotID:   p.DepotID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.ExpiredAt != nil {
		formatted := formatDate(*p.ExpiredAt)
		resp.ExpiredAt = &formatted
	}
	return resp
}

// FromProducts maps a product listing.
func FromProducts(products []product.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = FromProduct(&products[i])
	}
	return out
}
