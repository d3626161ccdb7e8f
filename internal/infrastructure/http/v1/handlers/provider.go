package handlers

import (
	"github.com/gin-gonic/gin"

	"stockyard/internal/core/apperror"
	"stockyard/internal/domain/provider"
	"stockyard/internal/infrastructure/http/v1/dto"
)

// ProviderHandler serves the provider resource group.
type ProviderHandler struct {
	*BaseHandler
	service *provider.Service
}

// NewProviderHandler creates a new provider handler.
func NewProviderHandler(base *BaseHandler, service *provider.Service) *ProviderHandler {
	return &ProviderHandler{BaseHandler: base, service: service}
}

// List handles GET /providers/all.
func (h *ProviderHandler) List(c *gin.Context) {
	providers, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	if len(providers) == 0 {
		h.Error(c, apperror.NewEmpty("providers"))
		return
	}
	h.Data(c, dto.FromProviders(providers))
}

// Create handles POST /providers/create.
func (h *ProviderHandler) Create(c *gin.Context) {
	var req dto.ProviderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	id, err := h.service.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, id)
}

// Get handles GET /providers/provider/:id.
func (h *ProviderHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Data(c, dto.FromProvider(p))
}

// Update handles PUT /providers/update/:id.
func (h *ProviderHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.ProviderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "provider has been updated")
}

// Delete handles DELETE /providers/delete/:id.
func (h *ProviderHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "provider has been deleted")
}
