package api_router

import (
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/dto"
	pkgapp "github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"
	apperrors "github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler user API router handler
// UserHandler 用户 API 路由处理器
// Uses App Container to inject dependencies, supports unified error handling
// 使用 App Container 注入依赖，支持统一错误处理
type UserHandler struct {
	*Handler
}

// NewUserHandler creates UserHandler instance
// NewUserHandler 创建 UserHandler 实例
func NewUserHandler(a *app.App) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(a),
	}
}

// Register user registration
// @Summary User registration
// @Description Register a USER account and return it with an auth token. Registration may be disabled in server settings.
// @Description 注册 USER 账号并返回用户信息与 Token。注册功能可能在服务器设置中被禁用。
// @Tags Auth
// @Accept json
// @Produce json
// @Param params body dto.UserRegisterRequest true "Register Parameters"
// @Success 200 {object} pkgapp.Res{data=dto.AuthDTO} "Success"
// @Failure 400 {object} pkgapp.Res "Invalid Parameters"
// @Failure 403 {object} pkgapp.Res "Registration Disabled"
// @Failure 409 {object} pkgapp.Res "Username or Email Already Exists"
// @Router /api/auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.UserRegisterRequest{}

	// Parameter binding and validation
	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("UserHandler.Register.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.Clone().WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	auth, err := h.App.UserService.Register(ctx, params)
	if err != nil {
		h.logError(ctx, "UserHandler.Register", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessRegister.Clone().WithData(auth))
}

// Login user login
// @Summary User login
// @Description Log in with username or email and return an auth token.
// @Description 使用用户名或邮箱登录并返回认证 Token。
// @Tags Auth
// @Accept json
// @Produce json
// @Param params body dto.UserLoginRequest true "Login Parameters"
// @Success 200 {object} pkgapp.Res{data=dto.AuthDTO} "Success"
// @Failure 401 {object} pkgapp.Res "Invalid Credentials"
// @Router /api/auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.UserLoginRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("UserHandler.Login.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.Clone().WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	auth, err := h.App.UserService.Login(ctx, params)
	if err != nil {
		h.logError(ctx, "UserHandler.Login", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessLogin.Clone().WithData(auth))
}

// Me retrieves current user info
// @Summary Get current user
// @Tags User
// @Produce json
// @Security UserAuthToken
// @Success 200 {object} pkgapp.Res{data=dto.UserDTO} "Success"
// @Failure 401 {object} pkgapp.Res "Unauthorized"
// @Router /api/users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	uid, ok := h.currentUID(c, "UserHandler.Me")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	user, err := h.App.UserService.Me(ctx, uid)
	if err != nil {
		h.logError(ctx, "UserHandler.Me", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	pkgapp.NewResponse(c).ToResponse(code.Success.Clone().WithData(user))
}

// UpdateProfile changes username or email of the current user
// @Summary Update profile
// @Description Empty fields are kept. A value held by another user is a conflict.
// @Description 空字段保持不变，与其他用户重复时返回冲突。
// @Tags User
// @Accept json
// @Produce json
// @Security UserAuthToken
// @Param params body dto.UserProfileRequest true "Profile Parameters"
// @Success 200 {object} pkgapp.Res{data=dto.UserDTO} "Success"
// @Failure 409 {object} pkgapp.Res "Username or Email Already Exists"
// @Router /api/users/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.UserProfileRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("UserHandler.UpdateProfile.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.Clone().WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid, ok := h.currentUID(c, "UserHandler.UpdateProfile")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	user, err := h.App.UserService.UpdateProfile(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "UserHandler.UpdateProfile", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessUpdate.Clone().WithData(user))
}

// ChangePassword changes user password
// @Summary Change user password
// @Tags User
// @Accept json
// @Produce json
// @Security UserAuthToken
// @Param params body dto.UserChangePasswordRequest true "Change Password Parameters"
// @Success 200 {object} pkgapp.Res "Success"
// @Failure 400 {object} pkgapp.Res "Invalid Parameters / Current Password Incorrect"
// @Router /api/users/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.UserChangePasswordRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("UserHandler.ChangePassword.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.Clone().WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid, ok := h.currentUID(c, "UserHandler.ChangePassword")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.App.UserService.ChangePassword(ctx, uid, params); err != nil {
		h.logError(ctx, "UserHandler.ChangePassword", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessPasswordUpdate.Clone())
}
