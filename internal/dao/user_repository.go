package dao

import (
	"context"
	"time"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/model"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/timex"
	"gorm.io/gorm"
)

// userRepository 实现 domain.UserRepository 接口
type userRepository struct {
	dao *Dao
}

// NewUserRepository 创建 UserRepository 实例
func NewUserRepository(dao *Dao) domain.UserRepository {
	return &userRepository{dao: dao}
}

func (r *userRepository) db(ctx context.Context) *gorm.DB {
	return r.dao.DB(ctx).Model(&model.User{})
}

// toDomain 将数据库模型转换为领域模型
func (r *userRepository) toDomain(m *model.User) *domain.User {
	if m == nil {
		return nil
	}
	u := &domain.User{
		UID:       m.UID,
		Username:  m.Username,
		Password:  m.Password,
		Role:      m.Role,
		CreatedAt: time.Time(m.CreatedTime),
		UpdatedAt: time.Time(m.UpdatedTime),
	}
	if m.Email != nil {
		u.Email = *m.Email
	}
	return u
}

// toModel 将领域模型转换为数据库模型，空邮箱存为 NULL
func (r *userRepository) toModel(user *domain.User) *model.User {
	if user == nil {
		return nil
	}
	m := &model.User{
		UID:         user.UID,
		Username:    user.Username,
		Password:    user.Password,
		Role:        user.Role,
		CreatedTime: timex.Time(user.CreatedAt),
		UpdatedTime: timex.Time(user.UpdatedAt),
	}
	if user.Email != "" {
		email := user.Email
		m.Email = &email
	}
	return m
}

func (r *userRepository) first(ctx context.Context, query string, arg any) (*domain.User, error) {
	m := &model.User{}
	if err := r.db(ctx).Where(query, arg).First(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// GetByID 根据UID获取用户
func (r *userRepository) GetByID(ctx context.Context, uid int64) (*domain.User, error) {
	return r.first(ctx, "id = ?", uid)
}

// GetByUsername 根据用户名获取用户
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.first(ctx, "username = ?", username)
}

// GetByEmail 根据邮箱获取用户
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.first(ctx, "email = ?", email)
}

// Create 创建用户
func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := r.toModel(user)
	now := timex.Now()
	m.CreatedTime = now
	m.UpdatedTime = now
	if m.Role == "" {
		m.Role = domain.RoleUser
	}

	if err := r.dao.DB(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// UpdateProfile 更新用户名与邮箱
func (r *userRepository) UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := r.toModel(user)
	err := r.db(ctx).Where("id = ?", user.UID).Updates(map[string]any{
		"username":     m.Username,
		"email":        m.Email,
		"updated_time": timex.Now(),
	}).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, user.UID)
}

// UpdatePassword 更新用户密码
func (r *userRepository) UpdatePassword(ctx context.Context, password string, uid int64) error {
	return r.db(ctx).Where("id = ?", uid).Updates(map[string]any{
		"password":     password,
		"updated_time": timex.Now(),
	}).Error
}

// Count 用户总数
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db(ctx).Count(&n).Error
	return n, err
}

// 确保 userRepository 实现了 domain.UserRepository 接口
var _ domain.UserRepository = (*userRepository)(nil)
