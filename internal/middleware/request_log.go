package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// ==================== 请求日志中间件 ====================

// RequestLog 请求日志中间件
// 记录方法、路径、状态码与耗时
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Printf("[HTTP] %s %s %d %v", c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
