package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"dealer-orders/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	if statusCode >= http.StatusInternalServerError {
		logrus.WithField("path", c.FullPath()).Error(message)
	}
	c.AbortWithStatusJSON(statusCode, errorResponse{Error: message})
}

// serviceError maps service sentinels onto HTTP codes. Store internals are
// never echoed to the client.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		newErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		newErrorResponse(c, http.StatusNotFound, service.ErrNotFound.Error())
	case errors.Is(err, service.ErrUnauthorized):
		newErrorResponse(c, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, service.ErrDuplicateOrder):
		newErrorResponse(c, http.StatusConflict, service.ErrDuplicateOrder.Error())
	case errors.Is(err, service.ErrNotification):
		newErrorResponse(c, http.StatusBadGateway, "failed to send email")
	default:
		logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		newErrorResponse(c, http.StatusInternalServerError, "internal server error")
	}
}
