package domain

import "context"

// TagChange describes what happens to a record's tags on persist
// TagChange 描述持久化时对记录标签的处理
// Set false keeps the stored tags, Set true replaces them with IDs (empty clears).
// Set 为 false 保留原有标签，为 true 时替换为 IDs（空则清空）。
type TagChange struct {
	Set bool
	IDs []int64
}

// EntityRepository generic persistence of one entity type
// EntityRepository 单一实体类型的通用持久化接口
type EntityRepository[T any] interface {
	// Create inserts rec and applies tags in one transaction
	// Create 在同一事务中插入记录并写入标签
	Create(ctx context.Context, rec *T, tags TagChange) (*T, error)

	// Update loads id, lets merge modify it and saves it in one transaction
	// Update 在同一事务中加载记录、调用 merge 修改并保存
	Update(ctx context.Context, id int64, merge func(rec *T) (TagChange, error)) (*T, error)

	// Delete 物理删除记录及其标签关联
	Delete(ctx context.Context, id int64) error

	// GetByID 根据ID获取
	GetByID(ctx context.Context, id int64) (*T, error)

	// FindAll 获取全部记录
	FindAll(ctx context.Context) ([]*T, error)

	// Find 按查询条件分页获取，同时返回总数
	Find(ctx context.Context, q Query) ([]*T, int64, error)

	// Count 记录总数
	Count(ctx context.Context) (int64, error)
}

// UserRepository 用户仓储接口
type UserRepository interface {
	GetByID(ctx context.Context, uid int64) (*User, error)

	GetByUsername(ctx context.Context, username string) (*User, error)

	GetByEmail(ctx context.Context, email string) (*User, error)

	Create(ctx context.Context, user *User) (*User, error)

	// UpdateProfile 更新用户名和邮箱
	UpdateProfile(ctx context.Context, user *User) (*User, error)

	UpdatePassword(ctx context.Context, password string, uid int64) error

	Count(ctx context.Context) (int64, error)
}
