package api_router

import (
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/app"
	pkgapp "github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"
	apperrors "github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/errors"

	"github.com/gin-gonic/gin"
)

// DashboardHandler 仪表盘处理器
type DashboardHandler struct {
	*Handler
}

func NewDashboardHandler(a *app.App) *DashboardHandler {
	return &DashboardHandler{Handler: NewHandler(a)}
}

// Stats record counts per entity type
// @Summary Dashboard statistics
// @Tags Dashboard
// @Produce json
// @Security UserAuthToken
// @Success 200 {object} pkgapp.Res{data=dto.DashboardStatsDTO} "Success"
// @Router /api/admin/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	stats, err := h.App.DashboardService.Stats(ctx)
	if err != nil {
		h.logError(ctx, "DashboardHandler.Stats", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	pkgapp.NewResponse(c).ToResponse(code.Success.Clone().WithData(stats))
}
