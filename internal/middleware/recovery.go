package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryWithLogger 创建带日志器的 Recovery 中间件（支持依赖注入）
// The panic value is logged, the client only receives the generic internal error.
// panic 内容只写入日志，客户端只收到通用的内部错误。
func RecoveryWithLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		defer func() {
			if rec := recover(); rec != nil {
				fields := []zap.Field{
					zap.String(logger.FieldTraceID, GetTraceIDFromGin(c)),
					zap.String("router", path),
					zap.String(logger.FieldMethod, c.Request.Method),
					zap.String("query", query),
					zap.String("ip", c.ClientIP()),
					zap.String("user-agent", c.Request.UserAgent()),
					zap.String("stack", string(debug.Stack())), // 错误堆栈
				}
				if err, ok := rec.(error); ok {
					log.Error("Recovered from panic", append(fields, zap.Error(err))...)
				} else {
					log.Error("Recovered from unknown panic", append(fields, zap.String("panic_value", fmt.Sprintf("%v", rec)))...)
				}

				// 返回统一的错误响应
				app.NewResponse(c).ToResponse(code.ErrorServerInternal)
				c.Abort()
			}
		}()

		c.Next()
	}
}
