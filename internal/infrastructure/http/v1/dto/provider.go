package dto

import (
	"time"

	"stockyard/internal/domain/provider"
)

// ProviderRequest is the submitted field set for provider create and
// update. Fax, phone and mat are optional; empty values count as absent.
type ProviderRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Fax     string `json:"fax"`
	Phone   string `json:"phone"`
	Mat     string `json:"mat"`
	Address string `json:"address"`
	Country string `json:"country"`
}

// ToInput projects the request into the domain input.
func (r ProviderRequest) ToInput() provider.Input {
	return provider.Input{
		Name:    r.Name,
		Email:   r.Email,
		Fax:     optionalString(r.Fax),
		Phone:   optionalString(r.Phone),
		Mat:     optionalString(r.Mat),
		Address: r.Address,
		Country: r.Country,
	}
}

// ProviderResponse renders a provider.
type ProviderResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Fax       *string   `json:"fax,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Mat       *string   `json:"mat,omitempty"`
	Address   string    `json:"address"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromProvider creates a ProviderResponse from the entity.
func FromProvider(p *provider.Provider) ProviderResponse {
	return ProviderResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Fax:       p.Fax,
		Phone:     p.Phone,
		Mat:       p.Mat,
		Address:   p.Address,
		Country:   p.Country,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// FromProviders maps a provider listing.
func FromProviders(providers []provider.Provider) []ProviderResponse {
	out := make([]ProviderResponse, len(providers))
	for i := range providers {
		out[i] = FromProvider(&providers[i])
	}
	return out
}
