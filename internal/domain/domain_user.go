package domain

import "time"

// Roles
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User 用户领域模型
type User struct {
	UID       int64
	Username  string
	Email     string
	Password  string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasEmail 判断用户是否有邮箱
func (u *User) HasEmail() bool {
	return u.Email != ""
}

// IsAdmin 是否管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
