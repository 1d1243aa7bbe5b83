package handler

import (
	"github.com/DonIsaac10/Sistema-POS/internal/application/service"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/request"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CatalogHandler handles product and variant HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List returns the catalog, optionally filtered by search
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products retrieved", products)
}

// Get retrieves a product with its variants
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	product, err := h.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved", product)
}

// Create creates a product with its variants
func (h *CatalogHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateProductInput{
		Name:     req.Name,
		Category: req.Category,
	}
	for _, v := range req.Variants {
		input.Variants = append(input.Variants, service.VariantInput{Name: v.Name, Price: v.Price})
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Product created", product)
}

// Update applies a partial product update
func (h *CatalogHandler) Update(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), id, &service.UpdateProductInput{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product updated", product)
}

// Delete removes a product and its variants
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AddVariant adds a priced option to a product
func (h *CatalogHandler) AddVariant(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req request.VariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	variant, err := h.catalogService.AddVariant(c.Request.Context(), id, &service.VariantInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Variant created", variant)
}

// UpdateVariant replaces a variant's name and price
func (h *CatalogHandler) UpdateVariant(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req request.VariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	variant, err := h.catalogService.UpdateVariant(c.Request.Context(), id, &service.VariantInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Variant updated", variant)
}

// DeleteVariant removes a variant
func (h *CatalogHandler) DeleteVariant(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.catalogService.DeleteVariant(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
