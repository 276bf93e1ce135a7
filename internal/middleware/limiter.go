package middleware

import (
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/limiter"

	"github.com/gin-gonic/gin"
)

// RateLimiter creates rate limiting middleware (supports dependency injection)
// RateLimiter 创建限流中间件（支持依赖注入）
// Paths without a matching bucket are not limited.
func RateLimiter(l limiter.Face) gin.HandlerFunc {
	return func(c *gin.Context) {
		if bucket, ok := l.GetBucket(l.Key(c)); ok && bucket.TakeAvailable(1) == 0 {
			app.NewResponse(c).ToResponse(code.ErrorTooManyRequests)
			c.Abort()
			return
		}

		c.Next()
	}
}
