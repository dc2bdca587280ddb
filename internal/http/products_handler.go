package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/packline/packaging-service/internal/domain/dto"
	"github.com/packline/packaging-service/internal/domain/model"
	"github.com/packline/packaging-service/internal/i18n"
	"github.com/packline/packaging-service/internal/service"
)

// ProductHandler provides HTTP handlers for catalog product routes.
type ProductHandler struct {
	products service.ProductService
}

// NewProductHandler creates a new ProductHandler instance.
func NewProductHandler(products service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// CreateProduct handles POST /api/v1/products requests.
//
// @Summary      Create a product
// @Description  Adds a product to the catalog. The product code is normalized to upper case and must be unique.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateProductRequest true "Product to create"
// @Success      201 {object} dto.SuccessResponse "Created product"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Conflict - product code already exists"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateProductRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	product, err := h.products.CreateProduct(c.Request.Context(), *req)
	if err != nil {
		if errors.Is(err, model.ErrProductAlreadyExists) {
			builder.Error(http.StatusConflict, i18n.ErrKeyProductExists, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessCreated(dto.FromProduct(*product))
}

// GetProduct handles GET /api/v1/products/:code requests.
//
// @Summary      Get a product
// @Description  Returns a single catalog product by its code. Lookup is case-insensitive.
// @Tags         Products
// @Produce      json
// @Param        code path string true "Product code"
// @Success      200 {object} dto.SuccessResponse "Product"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown product code"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/products/{code} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	product, err := h.products.GetProductByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.FromProduct(*product))
}

// ListProducts handles GET /api/v1/products requests.
//
// @Summary      List products
// @Description  Returns the full product catalog.
// @Tags         Products
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Products"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	products, err := h.products.GetAllProducts(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	responses := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, dto.FromProduct(product))
	}
	builder.SuccessOK(responses)
}

// UpdateProduct handles PUT /api/v1/products/:code requests.
//
// @Summary      Update a product
// @Description  Replaces a product's name and base price. The code is immutable. Existing orders keep their captured prices.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        code path string true "Product code"
// @Param        request body dto.UpdateProductRequest true "New product fields"
// @Success      200 {object} dto.SuccessResponse "Updated product"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown product code"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/products/{code} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateProductRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	product, err := h.products.UpdateProduct(c.Request.Context(), c.Param("code"), *req)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.FromProduct(*product))
}

// DeleteProduct handles DELETE /api/v1/products/:code requests.
//
// @Summary      Delete a product
// @Description  Removes a product and all its packaging options. Orders already placed are unaffected.
// @Tags         Products
// @Produce      json
// @Param        code path string true "Product code"
// @Success      204 "Deleted"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown product code"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/products/{code} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.products.DeleteProduct(c.Request.Context(), c.Param("code")); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessNoContent()
}
