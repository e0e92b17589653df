package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dealer-orders/internal/models"
)

type createOrderResponse struct {
	Message string       `json:"message"`
	Order   models.Order `json:"order"`
}

// CreateOrder
// @Summary CreateOrder
// @Description Places an order from the checkout page and mails the buyer and the sales desk
// @ID create-order
// @Accept json
// @Produce json
// @Param input body models.Checkout true "checkout payload"
// @Success 201 {object} createOrderResponse
// @Failure 400,409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/order [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	var in models.Checkout
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), in)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createOrderResponse{
		Message: "Order created successfully",
		Order:   order,
	})
}

// TrackOrder
// @Summary TrackOrder
// @Description Returns the tracking projection of an order; both the order id and the buyer email must match
// @ID track-order
// @Produce json
// @Param orderId path string true "public order id, ORD-XXXXXXXXX"
// @Param email query string true "buyer email"
// @Success 200 {object} models.TrackingView
// @Failure 400,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/order/track/{orderId} [get]
func (h *Handler) TrackOrder(c *gin.Context) {
	orderID := strings.TrimSpace(c.Param("orderId"))
	email := strings.TrimSpace(c.Query("email"))
	if orderID == "" || email == "" {
		newErrorResponse(c, http.StatusBadRequest, "order id and email are required")
		return
	}

	view, err := h.orders.TrackOrder(c.Request.Context(), orderID, email)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
