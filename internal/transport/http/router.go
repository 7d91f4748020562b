package rest

import (
	"github.com/Bandhan203/Practicum-RMS-sub000/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter — маршруты шлюза. otelServiceName пустой — без трейсинг-middleware.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := r.Group("/api")
	{
		menu := apiGroup.Group("/menu")
		{
			menu.GET("", h.listMenu)
			menu.GET("/categories", h.menuCategories)
			menu.GET("/stream", h.streamMenu)
			menu.POST("", h.createMenuItem)
			menu.PUT("/:id", h.updateMenuItem)
			menu.DELETE("/:id", h.deleteMenuItem)
		}

		orders := apiGroup.Group("/orders")
		{
			orders.GET("", h.listOrders)
			orders.GET("/statuses", h.orderStatuses)
			orders.GET("/stream", h.streamOrders)
			orders.GET("/:id", h.getOrder)
			orders.POST("", h.createOrder)
			orders.PATCH("/:id/status", h.changeOrderStatus)
			orders.DELETE("/:id", h.deleteOrder)
		}

		apiGroup.GET("/settings", h.getSettings)
		apiGroup.PUT("/settings", h.putSettings)
	}

	return r
}
