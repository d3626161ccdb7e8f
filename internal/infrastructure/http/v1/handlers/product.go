package handlers

import (
	"github.com/gin-gonic/gin"

	"stockyard/internal/core/apperror"
	"stockyard/internal/domain/product"
	"stockyard/internal/infrastructure/http/v1/dto"
)

// ProductHandler serves the product resource group.
type ProductHandler struct {
	*BaseHandler
	service *product.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	return &ProductHandler{BaseHandler: base, service: service}
}

// List handles GET /products/all.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	if len(products) == 0 {
		h.Error(c, apperror.NewEmpty("products"))
		return
	}
	h.Data(c, dto.FromProducts(products))
}

// Create handles POST /products/create.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
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

// Get handles GET /products/product/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Data(c, dto.FromProduct(p))
}

// Update handles PUT /products/update/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.ProductRequest
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
	h.Success(c, "product has been updated")
}

// Delete handles DELETE /products/delete/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "product has been deleted")
}
