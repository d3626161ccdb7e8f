package handlers

import (
	"github.com/gin-gonic/gin"

	"stockyard/internal/core/apperror"
	"stockyard/internal/domain/invoice"
	"stockyard/internal/infrastructure/http/v1/dto"
)

// InvoiceHandler serves the invoice resource group.
type InvoiceHandler struct {
	*BaseHandler
	service *invoice.Service
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(base *BaseHandler, service *invoice.Service) *InvoiceHandler {
	return &InvoiceHandler{BaseHandler: base, service: service}
}

// List handles GET /invoices/all.
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	if len(invoices) == 0 {
		h.Error(c, apperror.NewEmpty("invoices"))
		return
	}
	h.Data(c, dto.FromInvoices(invoices))
}

// Create handles POST /invoices/create.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.InvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	in, aerr := req.ToInput()
	if aerr != nil {
		h.Error(c, aerr)
		return
	}

	id, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, id)
}

// Get handles GET /invoices/invoice/:id.
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	inv, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Data(c, dto.FromInvoice(inv))
}

// Update handles PUT /invoices/update/:id.
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.InvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	in, aerr := req.ToInput()
	if aerr != nil {
		h.Error(c, aerr)
		return
	}

	if err := h.service.Update(c.Request.Context(), id, in); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "invoice has been updated")
}

// Delete handles DELETE /invoices/delete/:id.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "invoice has been deleted")
}
