package service

import (
	"context"
	"errors"
	"strings"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/dto"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/convert"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/logger"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/timex"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/util"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserService 定义用户业务服务接口
type UserService interface {
	// Register 用户注册
	Register(ctx context.Context, params *dto.UserRegisterRequest) (*dto.AuthDTO, error)

	// Login 用户登录，用户名也可以是邮箱
	Login(ctx context.Context, params *dto.UserLoginRequest) (*dto.AuthDTO, error)

	// Me 获取当前用户信息
	Me(ctx context.Context, uid int64) (*dto.UserDTO, error)

	// UpdateProfile 修改用户名或邮箱
	UpdateProfile(ctx context.Context, uid int64, params *dto.UserProfileRequest) (*dto.UserDTO, error)

	// ChangePassword 修改密码
	ChangePassword(ctx context.Context, uid int64, params *dto.UserChangePasswordRequest) error

	// Count 用户总数
	Count(ctx context.Context) (int64, error)
}

// userService 实现 UserService 接口
type userService struct {
	userRepo     domain.UserRepository
	tokenManager app.TokenManager
	logger       *zap.Logger
	config       *ServiceConfig
}

// NewUserService 创建 UserService 实例
func NewUserService(userRepo domain.UserRepository, tokenManager app.TokenManager, logger *zap.Logger, config *ServiceConfig) UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &userService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		logger:       logger,
		config:       config,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *userService) domainToDTO(user *domain.User) *dto.UserDTO {
	if user == nil {
		return nil
	}
	out, err := convert.StructAssign(user, &dto.UserDTO{})
	if err != nil {
		out = &dto.UserDTO{UID: user.UID, Username: user.Username, Email: user.Email, Role: user.Role}
	}
	out.CreatedTime = timex.Time(user.CreatedAt)
	out.UpdatedTime = timex.Time(user.UpdatedAt)
	return out
}

// issue 生成 Token 并组装认证结果
func (s *userService) issue(user *domain.User) (*dto.AuthDTO, error) {
	token, err := s.tokenManager.Generate(user.UID, user.Username, user.Role)
	if err != nil {
		return nil, code.ErrorTokenGenerate.Clone().WithDetails(err.Error())
	}
	return &dto.AuthDTO{
		Token:     token,
		ExpiresIn: int64(s.tokenManager.Expiry().Seconds()),
		User:      s.domainToDTO(user),
	}, nil
}

// Register 用户注册
func (s *userService) Register(ctx context.Context, params *dto.UserRegisterRequest) (*dto.AuthDTO, error) {
	// 检查注册是否启用
	if s.config == nil || !s.config.User.RegisterIsEnable {
		return nil, code.ErrorUserRegisterIsDisable
	}

	// 验证用户名格式
	if !util.IsValidUsername(params.Username) {
		return nil, code.ErrorUserUsernameNotValid
	}

	email := strings.TrimSpace(params.Email)
	if email != "" && !util.IsValidEmail(email) {
		return nil, code.ErrorInvalidParams.Clone().WithDetails("email: invalid format")
	}

	// 检查用户名是否已存在
	if err := s.ensureFree(ctx, 0, params.Username, email); err != nil {
		return nil, err
	}

	// 生成密码哈希
	password, err := util.GeneratePasswordHash(params.Password)
	if err != nil {
		return nil, code.ErrorPasswordNotValid
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Username: params.Username,
		Email:    email,
		Password: password,
		Role:     domain.RoleUser,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, code.ErrorUserAlreadyExists
		}
		s.logger.Error("register failed", zap.String("username", params.Username), zap.Error(err))
		return nil, code.ErrorUserRegister.Clone().WithDetails(err.Error())
	}

	s.logger.Info("user registered", zap.Int64(logger.FieldUID, user.UID))
	return s.issue(user)
}

// Login 用户登录
func (s *userService) Login(ctx context.Context, params *dto.UserLoginRequest) (*dto.AuthDTO, error) {
	var user *domain.User
	var err error

	// 根据凭证类型查找用户
	if util.IsValidEmail(params.Username) {
		user, err = s.userRepo.GetByEmail(ctx, params.Username)
	} else {
		user, err = s.userRepo.GetByUsername(ctx, params.Username)
	}
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("login lookup failed", zap.Error(err))
			return nil, code.ErrorDBQuery
		}
		// 不暴露用户是否存在，统一返回用户名或密码错误
		return nil, code.ErrorUserLoginPasswordFailed
	}

	// 验证密码
	if !util.CheckPasswordHash(user.Password, params.Password) {
		return nil, code.ErrorUserLoginPasswordFailed
	}

	return s.issue(user)
}

// Me 获取当前用户信息
func (s *userService) Me(ctx context.Context, uid int64) (*dto.UserDTO, error) {
	user, err := s.get(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.domainToDTO(user), nil
}

// UpdateProfile 修改用户名或邮箱，与其他用户冲突时返回冲突错误
func (s *userService) UpdateProfile(ctx context.Context, uid int64, params *dto.UserProfileRequest) (*dto.UserDTO, error) {
	user, err := s.get(ctx, uid)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(params.Username)
	email := strings.TrimSpace(params.Email)
	if username == "" && email == "" {
		return s.domainToDTO(user), nil
	}

	if username != "" && username != user.Username {
		if !util.IsValidUsername(username) {
			return nil, code.ErrorUserUsernameNotValid
		}
	} else {
		username = ""
	}
	if email == user.Email {
		email = ""
	}

	if err := s.ensureFree(ctx, uid, username, email); err != nil {
		return nil, err
	}

	if username != "" {
		user.Username = username
	}
	if email != "" {
		user.Email = email
	}

	updated, err := s.userRepo.UpdateProfile(ctx, user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, code.ErrorConflict.Clone().WithDetails(err.Error())
		}
		return nil, mapError(err)
	}
	return s.domainToDTO(updated), nil
}

// ChangePassword 修改密码
func (s *userService) ChangePassword(ctx context.Context, uid int64, params *dto.UserChangePasswordRequest) error {
	user, err := s.get(ctx, uid)
	if err != nil {
		return err
	}

	// 验证旧密码
	if !util.CheckPasswordHash(user.Password, params.CurrentPassword) {
		return code.ErrorUserOldPasswordFailed
	}

	// 生成新密码哈希
	password, err := util.GeneratePasswordHash(params.NewPassword)
	if err != nil {
		return code.ErrorPasswordNotValid
	}

	if err := s.userRepo.UpdatePassword(ctx, password, uid); err != nil {
		return mapError(err)
	}
	return nil
}

// Count 用户总数
func (s *userService) Count(ctx context.Context) (int64, error) {
	n, err := s.userRepo.Count(ctx)
	return n, mapError(err)
}

func (s *userService) get(ctx context.Context, uid int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorUserNotFound
		}
		return nil, mapError(err)
	}
	return user, nil
}

// ensureFree 检查用户名与邮箱未被 uid 以外的用户占用，空值跳过
func (s *userService) ensureFree(ctx context.Context, uid int64, username, email string) error {
	if username != "" {
		u, err := s.userRepo.GetByUsername(ctx, username)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return mapError(err)
		}
		if u != nil && u.UID != uid {
			return code.ErrorUserAlreadyExists
		}
	}
	if email != "" {
		u, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return mapError(err)
		}
		if u != nil && u.UID != uid {
			return code.ErrorUserEmailAlreadyExists
		}
	}
	return nil
}
