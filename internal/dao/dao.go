// Package dao 实现数据访问层
package dao

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/haierkeys/gormTracing"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/model"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/fileurl"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/util"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	// Type sqlite, mysql or postgres
	Type     string
	Path     string
	UserName string
	Password string
	// Host host:port
	Host      string
	Name      string
	Charset   string
	ParseTime bool
	SSLMode   string
	// Replicas read replica DSNs of the same Type
	// Replicas 同类型只读副本的 DSN
	Replicas        []string
	AutoMigrate     bool
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime string
	ConnMaxIdleTime string
	RunMode         string
}

// Dao 数据访问对象
type Dao struct {
	db     *gorm.DB
	ctx    context.Context
	config *DatabaseConfig
	logger *zap.Logger
}

// DaoOption Dao 可选项
type DaoOption func(*Dao)

func WithConfig(cfg *DatabaseConfig) DaoOption {
	return func(d *Dao) {
		d.config = cfg
	}
}

func WithLogger(l *zap.Logger) DaoOption {
	return func(d *Dao) {
		d.logger = l
	}
}

// New 创建 Dao
func New(db *gorm.DB, ctx context.Context, opts ...DaoOption) *Dao {
	d := &Dao{db: db, ctx: ctx, config: &DatabaseConfig{}, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DB returns a session bound to ctx
// DB 返回绑定 ctx 的会话
func (d *Dao) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		ctx = d.ctx
	}
	return d.db.WithContext(ctx)
}

// Migrate creates or updates every table when auto-migrate is enabled
// Migrate 在开启自动迁移时创建或更新全部表
func (d *Dao) Migrate() error {
	if !d.config.AutoMigrate {
		return nil
	}
	start := time.Now()
	if err := model.AutoMigrate(d.db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	d.logger.Info("database migrated", zap.Duration("duration", time.Since(start)))
	return nil
}

// Ping 检查数据库连接
func (d *Dao) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// NewDBEngine opens the configured database, registers replicas and the tracing plugin
// NewDBEngine 打开数据库连接，注册只读副本与链路追踪插件
func NewDBEngine(c DatabaseConfig) (*gorm.DB, error) {
	dialector, err := Dialector(c.Type, primaryDSN(c))
	if err != nil {
		return nil, err
	}

	logMode := logger.Silent
	if c.RunMode == "debug" {
		logMode = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logMode),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	})
	if err != nil {
		return nil, err
	}

	if len(c.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(c.Replicas))
		for _, dsn := range c.Replicas {
			r, err := Dialector(c.Type, dsn)
			if err != nil {
				return nil, err
			}
			replicas = append(replicas, r)
		}
		resolver := dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		})
		if err := db.Use(resolver); err != nil {
			return nil, fmt.Errorf("register replicas: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if c.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	}
	if d, err := util.ParseDuration(c.ConnMaxLifetime); err == nil && d > 0 {
		sqlDB.SetConnMaxLifetime(d)
	}
	if d, err := util.ParseDuration(c.ConnMaxIdleTime); err == nil && d > 0 {
		sqlDB.SetConnMaxIdleTime(d)
	}

	_ = db.Use(&gormTracing.OpentracingPlugin{})

	return db, nil
}

// Dialector picks the gorm driver for the database type
// Dialector 根据数据库类型选择 gorm 驱动
func Dialector(dbType, dsn string) (gorm.Dialector, error) {
	switch dbType {
	case "mysql":
		return mysql.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "sqlite", "":
		return sqlite.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported database type %q", dbType)
}

func primaryDSN(c DatabaseConfig) string {
	switch c.Type {
	case "mysql":
		charset := c.Charset
		if charset == "" {
			charset = "utf8mb4"
		}
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=%t&loc=Local",
			c.UserName, c.Password, c.Host, c.Name, charset, c.ParseTime)
	case "postgres":
		host, port, err := net.SplitHostPort(c.Host)
		if err != nil {
			host, port = c.Host, "5432"
		}
		sslMode := c.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=Local",
			host, port, c.UserName, c.Password, c.Name, sslMode)
	}
	if c.Path != ":memory:" && !fileurl.IsExist(filepath.Dir(c.Path)) {
		_ = fileurl.CreatePath(c.Path, os.ModePerm)
	}
	return c.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
