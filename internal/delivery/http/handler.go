package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "dealer-orders/docs"
	"dealer-orders/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const maxAttachmentSize = 10 << 20

type Handler struct {
	orders service.Order
	admin  service.Admin
	auth   service.Auth

	// SecureCookies marks the admin session cookie Secure; enable behind TLS.
	SecureCookies bool
}

func NewHandler(orders service.Order, admin service.Admin, auth service.Auth) *Handler {
	return &Handler{orders: orders, admin: admin, auth: auth}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.Default()
	router.MaxMultipartMemory = maxAttachmentSize

	api := router.Group("/api")
	{
		api.POST("/order", h.CreateOrder)
		api.GET("/order/track/:orderId", h.TrackOrder)

		api.POST("/admin/login", h.Login)
		api.POST("/admin/logout", h.Logout)

		admin := api.Group("/admin", h.requireAdmin)
		{
			admin.GET("/orders", h.ListOrders)
			admin.GET("/orders/:id", h.GetOrder)
			admin.PUT("/orders/:id", h.UpdateOrder)
			admin.DELETE("/orders/:id", h.DeleteOrder)
			admin.POST("/orders/:id/reply", h.ReplyToOrder)
		}
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
			return
		}
		c.JSON(http.StatusNotFound, errorResponse{Error: "page not found"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
