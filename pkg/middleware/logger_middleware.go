package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/chat-offline/pkg/logger"
)

// RequestLogger registra método, caminho, status e duração de cada requisição
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", time.Since(start).String(),
		}
		if status >= 500 {
			log.Error("Requisição", fields...)
			return
		}
		log.Info("Requisição", fields...)
	}
}
