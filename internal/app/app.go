// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/dao"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/model"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/service"
	pkgapp "github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/app"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config    *AppConfig
	logger    *zap.Logger
	DB        *gorm.DB
	Dao       *dao.Dao
	startedAt time.Time

	// Repository 层
	UserRepo domain.UserRepository

	// Service 层
	ArticleService      service.EntityService[model.Article]
	VideoService        service.EntityService[model.Video]
	AudioService        service.EntityService[model.Audio]
	WebsiteService      service.EntityService[model.Website]
	TravelPlanService   service.EntityService[model.TravelPlan]
	MemoService         service.EntityService[model.Memo]
	TodoService         service.EntityService[model.Todo]
	DiaryService        service.EntityService[model.Diary]
	ExpenseService      service.EntityService[model.Expense]
	StudyCheckInService service.EntityService[model.StudyCheckIn]
	CategoryService     service.EntityService[model.Category]
	TagService          service.EntityService[model.Tag]
	SubjectService      service.EntityService[model.Subject]
	UserService         service.UserService
	DashboardService    service.DashboardService

	// 基础设施组件
	TokenManager pkgapp.TokenManager

	closeOnce sync.Once
}

// newEntityService wires repository and service of one entity type
// newEntityService 组装单一实体类型的仓储与服务
func newEntityService[T any, PT interface {
	*T
	model.Record
}](d *dao.Dao, desc domain.Descriptor, logger *zap.Logger, cfg *service.ServiceConfig) service.EntityService[T] {
	return service.NewEntityService[T, PT](dao.NewEntityRepository[T, PT](d, desc), desc, logger, cfg)
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
// db: 数据库连接（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	a := &App{
		config:    cfg,
		logger:    logger,
		DB:        db,
		startedAt: time.Now(),
	}

	// 初始化 DAO（使用依赖注入）
	dbConfig := cfg.DaoConfig()
	a.Dao = dao.New(db, context.Background(),
		dao.WithConfig(&dbConfig),
		dao.WithLogger(logger),
	)
	if err := a.Dao.Migrate(); err != nil {
		return nil, fmt.Errorf("database migrate: %w", err)
	}

	// 初始化 TokenManager
	a.TokenManager = pkgapp.NewTokenManager(pkgapp.TokenConfig{
		SecretKey:   cfg.Security.AuthTokenKey,
		Expiry:      cfg.GetTokenExpiry(),
		BindMachine: cfg.Security.BindMachine,
	})

	// 创建 ServiceConfig（从 AppConfig 提取 Service 层需要的配置）
	svcConfig := &service.ServiceConfig{
		User: service.UserServiceConfig{
			RegisterIsEnable: cfg.User.RegisterIsEnable,
		},
		App: service.AppServiceConfig{
			DefaultPageSize: cfg.App.DefaultPageSize,
			MaxPageSize:     cfg.App.MaxPageSize,
		},
	}

	// 初始化 Repository 与 Service 层（依赖注入）
	a.UserRepo = dao.NewUserRepository(a.Dao)
	a.UserService = service.NewUserService(a.UserRepo, a.TokenManager, logger, svcConfig)

	a.ArticleService = newEntityService[model.Article](a.Dao, model.ArticleDescriptor, logger, svcConfig)
	a.VideoService = newEntityService[model.Video](a.Dao, model.VideoDescriptor, logger, svcConfig)
	a.AudioService = newEntityService[model.Audio](a.Dao, model.AudioDescriptor, logger, svcConfig)
	a.WebsiteService = newEntityService[model.Website](a.Dao, model.WebsiteDescriptor, logger, svcConfig)
	a.TravelPlanService = newEntityService[model.TravelPlan](a.Dao, model.TravelPlanDescriptor, logger, svcConfig)
	a.MemoService = newEntityService[model.Memo](a.Dao, model.MemoDescriptor, logger, svcConfig)
	a.TodoService = newEntityService[model.Todo](a.Dao, model.TodoDescriptor, logger, svcConfig)
	a.DiaryService = newEntityService[model.Diary](a.Dao, model.DiaryDescriptor, logger, svcConfig)
	a.ExpenseService = newEntityService[model.Expense](a.Dao, model.ExpenseDescriptor, logger, svcConfig)
	a.StudyCheckInService = newEntityService[model.StudyCheckIn](a.Dao, model.StudyCheckInDescriptor, logger, svcConfig)
	a.CategoryService = newEntityService[model.Category](a.Dao, model.CategoryDescriptor, logger, svcConfig)
	a.TagService = newEntityService[model.Tag](a.Dao, model.TagDescriptor, logger, svcConfig)
	a.SubjectService = newEntityService[model.Subject](a.Dao, model.SubjectDescriptor, logger, svcConfig)

	a.DashboardService = service.NewDashboardService(a.counters())

	logger.Info("App container initialized successfully",
		zap.String("database", cfg.Database.Type),
		zap.Int("replicas", len(cfg.Database.Replicas)))

	return a, nil
}

// counters 仪表盘统计的实体计数器，以实体类型为键
func (a *App) counters() map[string]service.Counter {
	services := []interface {
		service.Counter
		Descriptor() domain.Descriptor
	}{
		a.ArticleService, a.VideoService, a.AudioService, a.WebsiteService,
		a.TravelPlanService, a.MemoService, a.TodoService, a.DiaryService,
		a.ExpenseService, a.StudyCheckInService, a.CategoryService, a.TagService,
		a.SubjectService,
	}
	out := make(map[string]service.Counter, len(services)+1)
	for _, s := range services {
		out[s.Descriptor().Kind] = s
	}
	out["user"] = a.UserService
	return out
}

// Close 释放应用容器持有的资源，可重复调用
func (a *App) Close() error {
	var err error
	a.closeOnce.Do(func() {
		if a.DB == nil {
			return
		}
		sqlDB, e := a.DB.DB()
		if e != nil {
			err = fmt.Errorf("failed to get sql.DB: %w", e)
			return
		}
		if e := sqlDB.Close(); e != nil {
			err = fmt.Errorf("failed to close database: %w", e)
			return
		}
		a.logger.Info("Database connection closed")
	})
	return err
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Version 获取版本信息
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}

// StartTime 服务启动时间
func (a *App) StartTime() time.Time {
	return a.startedAt
}

// Uptime 服务已运行时长
func (a *App) Uptime() time.Duration {
	return time.Since(a.startedAt)
}

// IsProductionMode 是否为生产模式
// 根据日志配置中的 Production 字段判断
func (a *App) IsProductionMode() bool {
	return a.config.Log.Production
}
