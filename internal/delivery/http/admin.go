package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"dealer-orders/internal/models"
	"dealer-orders/internal/notify"
	"dealer-orders/internal/service"
)

type listOrdersResponse struct {
	Data []models.Order `json:"data"`
}

// ListOrders
// @Summary ListOrders
// @Description Lists all orders, newest first
// @ID list-orders
// @Produce json
// @Success 200 {object} listOrdersResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/admin/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.admin.ListOrders(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listOrdersResponse{Data: orders})
}

// GetOrder
// @Summary GetOrder
// @Description Returns one order by its internal id
// @ID get-order
// @Produce json
// @Param id path string true "internal order id"
// @Success 200 {object} models.Order
// @Failure 401,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/admin/orders/{id} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.admin.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrder
// @Summary UpdateOrder
// @Description Sets the status and/or replaces the tracking details of an order
// @ID update-order
// @Accept json
// @Produce json
// @Param id path string true "internal order id"
// @Param input body models.OrderUpdate true "partial update"
// @Success 200 {object} models.Order
// @Failure 400,401,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/admin/orders/{id} [put]
func (h *Handler) UpdateOrder(c *gin.Context) {
	var upd models.OrderUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	order, err := h.admin.UpdateOrder(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder
// @Summary DeleteOrder
// @ID delete-order
// @Produce json
// @Param id path string true "internal order id"
// @Success 200 {object} messageResponse
// @Failure 401,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/admin/orders/{id} [delete]
func (h *Handler) DeleteOrder(c *gin.Context) {
	if err := h.admin.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Order deleted successfully"})
}

// ReplyToOrder
// @Summary ReplyToOrder
// @Description Mails the buyer a message from the back office, optionally with one attachment
// @ID reply-to-order
// @Accept mpfd
// @Produce json
// @Param id path string true "internal order id"
// @Param subject formData string false "subject, defaults to Regarding Your Order {orderId}"
// @Param message formData string true "message body"
// @Param attachment formData file false "attachment"
// @Success 200 {object} messageResponse
// @Failure 400,401,404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /api/admin/orders/{id}/reply [post]
func (h *Handler) ReplyToOrder(c *gin.Context) {
	reply := service.Reply{
		Subject: c.PostForm("subject"),
		Message: c.PostForm("message"),
	}
	if strings.TrimSpace(reply.Message) == "" {
		newErrorResponse(c, http.StatusBadRequest, "message is required")
		return
	}

	att, err := readAttachment(c)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	reply.Attachment = att

	if err := h.admin.ReplyToOrder(c.Request.Context(), c.Param("id"), reply); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Reply sent"})
}

func readAttachment(c *gin.Context) (*notify.Attachment, error) {
	fh, err := c.FormFile("attachment")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("invalid attachment: %w", err)
	}
	if fh.Size > maxAttachmentSize {
		return nil, fmt.Errorf("attachment exceeds %d bytes", maxAttachmentSize)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("invalid attachment: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxAttachmentSize+1))
	if err != nil {
		return nil, fmt.Errorf("read attachment: %w", err)
	}
	if len(data) > maxAttachmentSize {
		return nil, fmt.Errorf("attachment exceeds %d bytes", maxAttachmentSize)
	}
	return &notify.Attachment{Name: filepath.Base(fh.Filename), Data: data}, nil
}
