package api_router

import (
	"time"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/dto"
	pkgapp "github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthHandler 健康检查与版本处理器
type HealthHandler struct {
	*Handler
}

// NewHealthHandler 创建健康检查处理器实例
func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(a)}
}

// Check 健康检查接口
// @Summary 健康检查
// @Description 检查服务健康状态，包括数据库连接
// @Tags System
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.HealthDTO}
// @Failure 503 {object} pkgapp.Res{data=dto.HealthDTO}
// @Router /api/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	data := dto.HealthDTO{
		Status:   "ok",
		Database: "connected",
		Version:  h.App.Version().Version,
		Uptime:   h.App.Uptime().Truncate(time.Second).String(),
	}

	if err := h.App.Dao.Ping(c.Request.Context()); err != nil {
		h.App.Logger().Warn("HealthHandler.Check ping", zap.Error(err))
		data.Status = "degraded"
		data.Database = "error"
		pkgapp.NewResponse(c).ToResponse(code.ErrorServiceUnavailable.Clone().WithData(data))
		return
	}

	pkgapp.NewResponse(c).ToResponse(code.Success.Clone().WithData(data))
}

// Version retrieves server version information
// @Summary Get server version info
// @Description Get current server software version, Git tag, and build time
// @Tags System
// @Produce json
// @Success 200 {object} pkgapp.Res{data=pkgapp.VersionInfo} "Success"
// @Router /api/version [get]
func (h *HealthHandler) Version(c *gin.Context) {
	pkgapp.NewResponse(c).ToResponse(code.Success.Clone().WithData(h.App.Version()))
}
