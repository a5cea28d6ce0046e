package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ==================== 刷新限流中间件 ====================

// DefaultRefreshInterval 默认刷新冷却间隔
const DefaultRefreshInterval = 5 * time.Second

// RefreshRateLimit 刷新限流中间件
// 按命名空间维度限流，防止整体替换式拉取被高频触发
//
// 使用示例:
//
//	items.POST("/refresh",
//	    middleware.RefreshRateLimit("items", 0),
//	    itemCtl.RefreshItems,
//	)
//
// 参数:
//   - namespace: 命名空间名
//   - interval: 冷却间隔，0 表示使用默认值
func RefreshRateLimit(namespace string, interval time.Duration) gin.HandlerFunc {
	if interval == 0 {
		interval = DefaultRefreshInterval
	}

	return func(c *gin.Context) {
		result := GetLimiter().Check(RefreshKey(namespace), interval)
		if !result.Allowed {
			retryAfter := int(result.RetryAfter.Seconds())
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    429,
				"message": formatRetryMessage(result.RetryAfter),
				"data": gin.H{
					"retry_after": retryAfter,
					"namespace":   namespace,
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// formatRetryMessage 格式化重试提示信息
func formatRetryMessage(d time.Duration) string {
	seconds := int(d.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	return fmt.Sprintf("刷新冷却中，请 %d 秒后重试", seconds)
}
