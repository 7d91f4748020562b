package httpx

import (
	"time"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/ports"
	"github.com/Bandhan203/Practicum-RMS-sub000/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// RequestLogger — middleware логирования HTTP-запросов шлюза.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// служебные маршруты не логируем
		switch c.FullPath() {
		case "/metrics", "/healthz":
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		rid, _ := ctxmeta.RequestIDFromContext(c.Request.Context())
		tr, _ := ctxmeta.TraceIDFromContext(c.Request.Context())

		log.Infof(
			c.Request.Context(),
			"request id=%s trace=%s method=%s path=%s status=%d duration=%s size=%d",
			rid, tr,
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
