// Package service implements the business logic layer
// Package service 实现业务逻辑层
package service

// ServiceConfig service layer configuration
// ServiceConfig 服务层配置
type ServiceConfig struct {
	User UserServiceConfig
	App  AppServiceConfig
}

// UserServiceConfig 用户服务配置
type UserServiceConfig struct {
	RegisterIsEnable bool // 注册是否启用
}

// AppServiceConfig 应用服务配置
type AppServiceConfig struct {
	DefaultPageSize int // 默认分页大小
	MaxPageSize     int // 最大分页大小，超出时截断
}

func (c *ServiceConfig) maxPageSize() int {
	if c == nil || c.App.MaxPageSize <= 0 {
		return 100
	}
	return c.App.MaxPageSize
}
