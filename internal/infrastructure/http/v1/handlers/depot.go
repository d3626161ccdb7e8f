package handlers

import (
	"github.com/gin-gonic/gin"

	"stockyard/internal/core/apperror"
	"stockyard/internal/domain/depot"
	"stockyard/internal/infrastructure/http/v1/dto"
)

// DepotHandler serves the depot resource group.
type DepotHandler struct {
	*BaseHandler
	service *depot.Service
}

// NewDepotHandler creates a new depot handler.
func NewDepotHandler(base *BaseHandler, service *depot.Service) *DepotHandler {
	return &DepotHandler{BaseHandler: base, service: service}
}

// List handles GET /depots/all.
func (h *DepotHandler) List(c *gin.Context) {
	depots, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	if len(depots) == 0 {
		h.Error(c, apperror.NewEmpty("depots"))
		return
	}
	h.Data(c, dto.FromDepots(depots))
}

// Create handles POST /depots/create.
func (h *DepotHandler) Create(c *gin.Context) {
	var req dto.DepotRequest
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

// Get handles GET /depots/depot/:id.
func (h *DepotHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	d, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Data(c, dto.FromDepot(d))
}

// Update handles PUT /depots/update/:id.
func (h *DepotHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.DepotRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "depot has been updated")
}

// Delete handles DELETE /depots/delete/:id.
func (h *DepotHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "depot has been deleted")
}
