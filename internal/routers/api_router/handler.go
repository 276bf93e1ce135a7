// Package api_router 提供 HTTP API 路由处理器
package api_router

import (
	"context"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/dto"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/middleware"
	pkgapp "github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 基础 Handler 结构体，封装 App Container
// 所有 API Handler 都应该嵌入此结构体以获得依赖注入能力
type Handler struct {
	App *app.App
}

// NewHandler 创建基础 Handler 实例
func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// logError records error log, including Trace ID
// logError 记录错误日志，包含 Trace ID
func (h *Handler) logError(ctx context.Context, method string, err error) {
	h.App.Logger().Error(method,
		zap.Error(err),
		zap.String(logger.FieldTraceID, middleware.GetTraceID(ctx)),
	)
}

// bindID reads the :id path parameter, writes the error response when it is invalid
// bindID 读取路径参数 :id，非法时直接输出错误响应
func (h *Handler) bindID(c *gin.Context, method string) (int64, bool) {
	params := &dto.IDRequest{}
	if err := c.ShouldBindUri(params); err != nil {
		h.App.Logger().Warn(method+".BindUri", zap.Error(err))
		pkgapp.NewResponse(c).ToResponse(code.ErrorInvalidParams.Clone().
			WithDetails("id must be a positive integer").
			WithData(map[string]string{"id": c.Param("id")}))
		return 0, false
	}
	return params.ID, true
}

// currentUID returns the authenticated uid, writes 401 when the token carries none
// currentUID 返回当前认证用户 ID，缺失时输出 401
func (h *Handler) currentUID(c *gin.Context, method string) (int64, bool) {
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error(method + " err uid=0")
		pkgapp.NewResponse(c).ToResponse(code.ErrorNotUserAuthToken)
		return 0, false
	}
	return uid, true
}
