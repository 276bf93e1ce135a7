package dto

import "github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/timex"

// UserRegisterRequest User registration request parameters
// 用户注册请求参数
type UserRegisterRequest struct {
	Username string `json:"username" form:"username" binding:"required"`       // User name // 用户名
	Password string `json:"password" form:"password" binding:"required,min=6"` // User password // 用户密码
	Email    string `json:"email" form:"email" binding:"omitempty,email"`      // User email // 用户邮件
}

// UserLoginRequest User login request parameters, username may also be an email
// 用户登录请求参数，用户名也可以是邮箱
type UserLoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"` // Username or Email // 用户名或邮箱
	Password string `json:"password" form:"password" binding:"required"` // Password // 密码
}

// UserProfileRequest empty fields keep the stored value
// UserProfileRequest 为空的字段保持原值
type UserProfileRequest struct {
	Username string `json:"username" form:"username"`                     // New username // 新用户名
	Email    string `json:"email" form:"email" binding:"omitempty,email"` // New email // 新邮箱
}

// UserChangePasswordRequest Request parameters for changing password
// 修改密码请求参数
type UserChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" form:"currentPassword" binding:"required"` // Current password // 当前密码
	NewPassword     string `json:"newPassword" form:"newPassword" binding:"required,min=6"`   // New password // 新密码
}

// ---------------- DTO / Response ----------------

// UserDTO User data transfer object
// UserDTO 用户数据传输对象
type UserDTO struct {
	UID         int64      `json:"uid"`         // User ID (primary key) // 用户唯一标识（主键）
	Username    string     `json:"username"`    // Username // 用户名
	Email       string     `json:"email"`       // Email address // 邮件地址
	Role        string     `json:"role"`        // USER or ADMIN // 角色
	CreatedTime timex.Time `json:"createdTime"` // Account created time // 账号创建时间
	UpdatedTime timex.Time `json:"updatedTime"` // Last updated time // 最后更新时间
}

// AuthDTO login and registration result
// AuthDTO 登录与注册结果
type AuthDTO struct {
	Token     string   `json:"token"`     // Bearer token // 认证 Token
	ExpiresIn int64    `json:"expiresIn"` // Seconds until the token expires // Token 剩余有效秒数
	User      *UserDTO `json:"user"`
}
