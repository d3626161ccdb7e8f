package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"stockyard/internal/core/apperror"
	"stockyard/internal/domain/invoice"
)

// InvoiceRequest is the submitted field set for invoice create and update.
type InvoiceRequest struct {
	ProductID  int64           `json:"product_id"`
	ProviderID int64           `json:"provider_id"`
	Status     string          `json:"status"`
	Quantity   int             `json:"quantity"`
	ReceivedAt string          `json:"recivedat"`
	Price      decimal.Decimal `json:"price"`
	Discount   decimal.Decimal `json:"discount"`
	Total      decimal.Decimal `json:"total"`
}

// ToInput projects the request into the domain input, parsing the
// required receipt date.
func (r InvoiceRequest) ToInput() (invoice.Input, *apperror.AppError) {
	receivedAt, aerr := parseRequiredDate("recivedat", r.ReceivedAt)
	if aerr != nil {
		return invoice.Input{}, aerr
	}
	return invoice.Input{
		ProductID:  r.ProductID,
		ProviderID: r.ProviderID,
		Status:     r.Status,
		Quantity:   r.Quantity,
		ReceivedAt: receivedAt,
		Price:      r.Price,
		Discount:   r.Discount,
		Total:      r.Total,
	}, nil
}

// InvoiceResponse renders an invoice.
type InvoiceResponse struct {
	ID         int64           `json:"id"`
	ProductID  int64           `json:"product_id"`
	ProviderID int64           `json:"provider_id"`
	Status     string          `json:"status"`
	Quantity   int             `json:"quantity"`
	ReceivedAt string          `json:"recivedat"`
	Price      decimal.Decimal `json:"price"`
	Discount   decimal.Decimal `json:"discount"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// FromInvoice creates an InvoiceResponse from the entity.
func FromInvoice(inv *invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:         inv.ID,
		ProductID:  inv.ProductID,
		ProviderID: inv.ProviderID,
		Status:     inv.Status,
		Quantity:   inv.Quantity,
		ReceivedAt: formatDate(inv.ReceivedAt),
		Price:      inv.Price,
		Discount:   inv.Discount,
		Total:      inv.Total,
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
	}
}

// FromInvoices maps an invoice listing.
func FromInvoices(invoices []invoice.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = FromInvoice(&invoices[i])
	}
	return out
}
