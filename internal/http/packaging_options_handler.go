package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/packline/packaging-service/internal/domain/dto"
	"github.com/packline/packaging-service/internal/domain/model"
	"github.com/packline/packaging-service/internal/i18n"
	"github.com/packline/packaging-service/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PackagingOptionHandler provides HTTP handlers for packaging option routes.
type PackagingOptionHandler struct {
	options service.PackagingOptionService
}

// NewPackagingOptionHandler creates a new PackagingOptionHandler instance.
func NewPackagingOptionHandler(options service.PackagingOptionService) *PackagingOptionHandler {
	return &PackagingOptionHandler{options: options}
}

// CreateOption handles POST /api/v1/packaging-options requests.
//
// @Summary      Create a packaging option
// @Description  Adds a bundle option for an existing product. Duplicate bundle sizes are allowed.
// @Tags         PackagingOptions
// @Accept       json
// @Produce      json
// @Param        request body dto.PackagingOptionRequest true "Packaging option to create"
// @Success      201 {object} dto.SuccessResponse "Created packaging option"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown product code"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/packaging-options [post]
func (h *PackagingOptionHandler) CreateOption(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.PackagingOptionRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	option, err := h.options.CreateOption(c.Request.Context(), *req)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessCreated(dto.FromPackagingOption(*option))
}

// GetOption handles GET /api/v1/packaging-options/:id requests.
//
// @Summary      Get a packaging option
// @Description  Returns a single packaging option by its id.
// @Tags         PackagingOptions
// @Produce      json
// @Param        id path string true "Packaging option id"
// @Success      200 {object} dto.SuccessResponse "Packaging option"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed id"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown packaging option"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/packaging-options/{id} [get]
func (h *PackagingOptionHandler) GetOption(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	option, err := h.options.GetOptionByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrPackagingOptionNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyPackagingOptionNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.FromPackagingOption(*option))
}

// ListOptions handles GET /api/v1/packaging-options requests. With a
// product_code query parameter it returns only that product's options.
//
// @Summary      List packaging options
// @Description  Returns packaging options, optionally filtered by product code. Options are sorted largest bundle first.
// @Tags         PackagingOptions
// @Produce      json
// @Param        product_code query string false "Filter by product code"
// @Success      200 {object} dto.SuccessResponse "Packaging options"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown product code"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/packaging-options [get]
func (h *PackagingOptionHandler) ListOptions(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var options []model.PackagingOption
	var err error

	if productCode := c.Query("product_code"); productCode != "" {
		options, err = h.options.GetOptionsByProductCode(c.Request.Context(), productCode)
	} else {
		options, err = h.options.GetAllOptions(c.Request.Context())
	}
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	responses := make([]dto.PackagingOptionResponse, 0, len(options))
	for _, option := range options {
		responses = append(responses, dto.FromPackagingOption(option))
	}
	builder.SuccessOK(responses)
}

// UpdateOption handles PUT /api/v1/packaging-options/:id requests.
//
// @Summary      Update a packaging option
// @Description  Replaces a packaging option's product code, bundle size and price. Existing orders keep their captured prices.
// @Tags         PackagingOptions
// @Accept       json
// @Produce      json
// @Param        id path string true "Packaging option id"
// @Param        request body dto.PackagingOptionRequest true "New option fields"
// @Success      200 {object} dto.SuccessResponse "Updated packaging option"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown option or product"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/packaging-options/{id} [put]
func (h *PackagingOptionHandler) UpdateOption(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	req, err := BuildRequestAndValidate[dto.PackagingOptionRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	option, err := h.options.UpdateOption(c.Request.Context(), id, *req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPackagingOptionNotFound):
			builder.Error(http.StatusNotFound, i18n.ErrKeyPackagingOptionNotFound, err)
		case errors.Is(err, model.ErrProductNotFound):
			builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessOK(dto.FromPackagingOption(*option))
}

// DeleteOption handles DELETE /api/v1/packaging-options/:id requests.
//
// @Summary      Delete a packaging option
// @Description  Removes a packaging option. Future orders fall back to the remaining options or unit pricing.
// @Tags         PackagingOptions
// @Produce      json
// @Param        id path string true "Packaging option id"
// @Success      204 "Deleted"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed id"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown packaging option"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/packaging-options/{id} [delete]
func (h *PackagingOptionHandler) DeleteOption(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	if err := h.options.DeleteOption(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrPackagingOptionNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyPackagingOptionNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessNoContent()
}
