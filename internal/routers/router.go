package routers

import (
	"time"

	_ "github.com/smalllvcommm/Software-System-Analysis-and-Design/docs"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/dto"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/middleware"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/routers/api_router"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// newMethodLimiters 认证接口限流，防止暴力破解
func newMethodLimiters() limiter.Face {
	return limiter.NewMethodLimiter().AddBuckets(
		limiter.BucketRule{
			Key:          "/api/auth",
			FillInterval: time.Second,
			Capacity:     10,
			Quantum:      10,
		},
	)
}

func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	r := gin.New()
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfoWithConfig(app.Name, appContainer.Version().Version))
		api.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header)) // Trace ID 中间件
		api.Use(middleware.RateLimiter(newMethodLimiters()))
		api.Use(middleware.ContextTimeout(cfg.GetContextTimeout()))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))
		api.Use(middleware.Metrics())

		// 创建 Handlers（注入 App Container）
		userHandler := api_router.NewUserHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)
		dashboardHandler := api_router.NewDashboardHandler(appContainer)
		systemHandler := api_router.NewSystemHandler(appContainer)

		// 无需认证
		api.POST("/auth/register", userHandler.Register)
		api.POST("/auth/login", userHandler.Login)
		api.GET("/health", healthHandler.Check)
		api.GET("/version", healthHandler.Version)

		auth := api.Group("", middleware.UserAuthToken(appContainer.TokenManager))

		users := auth.Group("/users")
		users.GET("/me", userHandler.Me)
		users.PUT("/profile", userHandler.UpdateProfile)
		users.PUT("/password", userHandler.ChangePassword)

		// 个人记录
		api_router.NewEntityHandler(appContainer, appContainer.MemoService, func() any { return &dto.MemoPatch{} }).Register(auth.Group("/memos"))
		api_router.NewEntityHandler(appContainer, appContainer.TodoService, func() any { return &dto.TodoPatch{} }).Register(auth.Group("/todos"))
		api_router.NewEntityHandler(appContainer, appContainer.DiaryService, func() any { return &dto.DiaryPatch{} }).Register(auth.Group("/diaries"))
		api_router.NewEntityHandler(appContainer, appContainer.ExpenseService, func() any { return &dto.ExpensePatch{} }).Register(auth.Group("/expenses"))
		api_router.NewEntityHandler(appContainer, appContainer.StudyCheckInService, func() any { return &dto.StudyCheckInPatch{} }).Register(auth.Group("/study-check-ins"))

		// 管理后台
		admin := auth.Group("/admin")
		api_router.NewEntityHandler(appContainer, appContainer.ArticleService, func() any { return &dto.ArticlePatch{} }).Register(admin.Group("/articles"))
		api_router.NewEntityHandler(appContainer, appContainer.VideoService, func() any { return &dto.VideoPatch{} }).Register(admin.Group("/videos"))
		api_router.NewEntityHandler(appContainer, appContainer.AudioService, func() any { return &dto.AudioPatch{} }).Register(admin.Group("/audios"))
		api_router.NewEntityHandler(appContainer, appContainer.WebsiteService, func() any { return &dto.WebsitePatch{} }).Register(admin.Group("/websites"))
		api_router.NewEntityHandler(appContainer, appContainer.TravelPlanService, func() any { return &dto.TravelPlanPatch{} }).Register(admin.Group("/travel-plans"))
		api_router.NewEntityHandler(appContainer, appContainer.CategoryService, func() any { return &dto.CategoryPatch{} }).Register(admin.Group("/categories"))
		api_router.NewEntityHandler(appContainer, appContainer.TagService, func() any { return &dto.TagPatch{} }).Register(admin.Group("/tags"))
		api_router.NewEntityHandler(appContainer, appContainer.SubjectService, func() any { return &dto.SubjectPatch{} }).Register(admin.Group("/subjects"))

		admin.GET("/dashboard/stats", dashboardHandler.Stats)
		admin.GET("/system", middleware.AdminOnly(cfg.User.AdminUID), systemHandler.Info)
	}

	r.NoRoute(middleware.NoFound())

	return r
}
