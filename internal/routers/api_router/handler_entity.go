package api_router

import (
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/dto"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/service"
	pkgapp "github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"
	apperrors "github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EntityHandler generic CRUD API router handler for one entity type
// EntityHandler 单一实体类型的通用 CRUD API 路由处理器
// newPatch returns an empty patch the request body is decoded into
// newPatch 返回用于解码请求体的空补丁
type EntityHandler[T any] struct {
	*Handler
	svc      service.EntityService[T]
	newPatch func() any
	name     string
}

// NewEntityHandler creates EntityHandler instance
// NewEntityHandler 创建 EntityHandler 实例
func NewEntityHandler[T any](a *app.App, svc service.EntityService[T], newPatch func() any) *EntityHandler[T] {
	return &EntityHandler[T]{
		Handler:  NewHandler(a),
		svc:      svc,
		newPatch: newPatch,
		name:     "EntityHandler[" + svc.Descriptor().Kind + "]",
	}
}

// Register mounts POST / DELETE /:id / PUT /:id / GET / GET /all / GET /:id on g
// Register 在 g 上挂载全部 CRUD 路由
func (h *EntityHandler[T]) Register(g gin.IRoutes) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/all", h.All)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// bindPatch decodes the JSON body into a fresh patch
func (h *EntityHandler[T]) bindPatch(c *gin.Context, method string) (any, bool) {
	patch := h.newPatch()
	valid, errs := pkgapp.BindAndValid(c, patch)
	if !valid {
		h.App.Logger().Error(method+".BindAndValid errs", zap.Error(errs))
		pkgapp.NewResponse(c).ToResponse(code.ErrorInvalidParams.Clone().WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return nil, false
	}
	return patch, true
}

// Create 创建记录
func (h *EntityHandler[T]) Create(c *gin.Context) {
	method := h.name + ".Create"
	patch, ok := h.bindPatch(c, method)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	rec, err := h.svc.Create(ctx, patch)
	if err != nil {
		h.logError(ctx, method, err)
		apperrors.ErrorResponse(c, err)
		return
	}

	pkgapp.NewResponse(c).ToResponse(code.SuccessCreate.Clone().WithData(rec))
}

// Update 部分更新记录，未出现的字段保持不变
func (h *EntityHandler[T]) Update(c *gin.Context) {
	method := h.name + ".Update"
	id, ok := h.bindID(c, method)
	if !ok {
		return
	}
	patch, ok := h.bindPatch(c, method)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	rec, err := h.svc.Update(ctx, id, patch)
	if err != nil {
		h.logError(ctx, method, err)
		apperrors.ErrorResponse(c, err)
		return
	}

	pkgapp.NewResponse(c).ToResponse(code.SuccessUpdate.Clone().WithData(rec))
}

// Delete 删除记录
func (h *EntityHandler[T]) Delete(c *gin.Context) {
	method := h.name + ".Delete"
	id, ok := h.bindID(c, method)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.svc.Delete(ctx, id); err != nil {
		h.logError(ctx, method, err)
		apperrors.ErrorResponse(c, err)
		return
	}

	pkgapp.NewResponse(c).ToResponse(code.SuccessDelete.Clone())
}

// Get 根据 ID 获取记录
func (h *EntityHandler[T]) Get(c *gin.Context) {
	method := h.name + ".Get"
	id, ok := h.bindID(c, method)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	rec, err := h.svc.Get(ctx, id)
	if err != nil {
		h.logError(ctx, method, err)
		apperrors.ErrorResponse(c, err)
		return
	}

	pkgapp.NewResponse(c).ToResponse(code.Success.Clone().WithData(rec))
}

// All 获取全部记录（不分页）
func (h *EntityHandler[T]) All(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := h.svc.FindAll(ctx)
	if err != nil {
		h.logError(ctx, h.name+".All", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	pkgapp.NewResponse(c).ToResponse(code.Success.Clone().WithData(list))
}

// List filtered, sorted and paged list
// List 过滤、排序并分页的列表
// Filter parameters are read raw so that the query builder reports their parse errors
// 过滤参数按原始字符串读取，由查询构建器报告解析错误
func (h *EntityHandler[T]) List(c *gin.Context) {
	method := h.name + ".List"
	params := &dto.ListQuery{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error(method+".BindAndValid errs", zap.Error(errs))
		pkgapp.NewResponse(c).ToResponse(code.ErrorInvalidParams.Clone().WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	filters := make(map[string]string)
	for _, f := range h.svc.Descriptor().Filters {
		if v, exist := c.GetQuery(f.Param); exist {
			filters[f.Param] = v
		}
	}

	ctx := c.Request.Context()
	page, err := h.svc.Fetch(ctx, params.ToListParams(filters))
	if err != nil {
		h.logError(ctx, method, err)
		apperrors.ErrorResponse(c, err)
		return
	}

	pkgapp.NewResponse(c).ToResponse(code.Success.Clone().WithData(page))
}
