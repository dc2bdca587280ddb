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

// OrderHandler provides HTTP handlers for order routes.
type OrderHandler struct {
	orders service.OrderService
}

// NewOrderHandler creates a new OrderHandler instance.
func NewOrderHandler(orders service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// CreateOrder handles POST /api/v1/orders requests.
//
// @Summary      Create an order
// @Description  Prices the requested product lines with greedy largest-bundle-first packing and persists the order atomically. Any unknown product code rejects the whole order. Supports idempotency via Idempotency-Key header.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CreateOrderRequest true "Order lines"
// @Success      201 {object} dto.SuccessResponse "Itemized order breakdown"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown product code"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateOrderRequest](c)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationQuantity, err)
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	response, err := h.orders.CreateOrder(c.Request.Context(), *req)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessCreated(response)
}

// GetOrder handles GET /api/v1/orders/:id requests.
//
// @Summary      Get an order
// @Description  Returns the itemized breakdown of a stored order, rebuilt from the prices captured at creation.
// @Tags         Orders
// @Produce      json
// @Param        id path string true "Order id"
// @Success      200 {object} dto.SuccessResponse "Itemized order breakdown"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown order id"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	response, err := h.orders.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyOrderNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(response)
}

// ListOrders handles GET /api/v1/orders requests.
//
// @Summary      List orders
// @Description  Returns the breakdowns of all stored orders, oldest first.
// @Tags         Orders
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Order breakdowns"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	builder := NewResponseBuilder(c)

	responses, err := h.orders.GetAllOrders(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(responses)
}

// DeleteOrder handles DELETE /api/v1/orders/:id requests.
//
// @Summary      Delete an order
// @Description  Removes an order together with all its items.
// @Tags         Orders
// @Produce      json
// @Param        id path string true "Order id"
// @Success      204 "Deleted"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown order id"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.orders.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyOrderNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessNoContent()
}
