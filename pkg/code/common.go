package code

import "net/http"

// Success codes
// 成功码
var (
	Success               = NewSuss(1, lang{en: "Success", zh_cn: "成功"})
	SuccessCreate         = NewSuss(2, lang{en: "Created successfully", zh_cn: "创建成功"}).HTTP(http.StatusCreated)
	SuccessUpdate         = NewSuss(3, lang{en: "Updated successfully", zh_cn: "更新成功"})
	SuccessDelete         = NewSuss(4, lang{en: "Deleted successfully", zh_cn: "删除成功"})
	SuccessNoUpdate       = NewSuss(5, lang{en: "Nothing to update", zh_cn: "没有需要更新的内容"})
	SuccessLogin          = NewSuss(6, lang{en: "Login successful", zh_cn: "登录成功"})
	SuccessRegister       = NewSuss(7, lang{en: "Registration successful", zh_cn: "注册成功"})
	SuccessPasswordUpdate = NewSuss(8, lang{en: "Password updated", zh_cn: "密码修改成功"})
)

// Generic error codes
// 通用错误码
var (
	Failed                  = NewError(400, lang{en: "Failed", zh_cn: "失败"}).HTTP(http.StatusBadRequest)
	ErrorServerInternal     = NewError(500, lang{en: "Internal Server Error", zh_cn: "服务器内部错误"}).HTTP(http.StatusInternalServerError)
	ErrorNotFoundAPI        = NewError(404, lang{en: "API not found", zh_cn: "接口不存在"}).HTTP(http.StatusNotFound)
	ErrorTooManyRequests    = NewError(429, lang{en: "Too many requests", zh_cn: "请求过多"}).HTTP(http.StatusTooManyRequests)
	ErrorServiceUnavailable = NewError(503, lang{en: "Service unavailable", zh_cn: "服务不可用"}).HTTP(http.StatusServiceUnavailable)

	ErrorInvalidParams    = NewError(1001, lang{en: "Invalid parameters", zh_cn: "参数错误"}).HTTP(http.StatusBadRequest)
	ErrorDBQuery          = NewError(1002, lang{en: "Database query failed", zh_cn: "数据库查询失败"}).HTTP(http.StatusInternalServerError)
	ErrorRecordNotFound   = NewError(1003, lang{en: "Record not found", zh_cn: "记录不存在"}).HTTP(http.StatusNotFound)
	ErrorRelationNotFound = NewError(1004, lang{en: "Referenced record not found", zh_cn: "关联记录不存在"}).HTTP(http.StatusBadRequest)
	ErrorConflict         = NewError(1005, lang{en: "Record already exists", zh_cn: "记录已存在"}).HTTP(http.StatusConflict)
	ErrorRecordCreate     = NewError(1006, lang{en: "Failed to create record", zh_cn: "创建记录失败"}).HTTP(http.StatusInternalServerError)
	ErrorRecordUpdate     = NewError(1007, lang{en: "Failed to update record", zh_cn: "更新记录失败"}).HTTP(http.StatusInternalServerError)
	ErrorRecordDelete     = NewError(1008, lang{en: "Failed to delete record", zh_cn: "删除记录失败"}).HTTP(http.StatusInternalServerError)
)

// Auth and user error codes
// 认证与用户错误码
var (
	ErrorNotUserAuthToken        = NewError(2001, lang{en: "Missing auth token", zh_cn: "缺少认证 Token"}).HTTP(http.StatusUnauthorized)
	ErrorInvalidUserAuthToken    = NewError(2002, lang{en: "Invalid or expired auth token", zh_cn: "认证 Token 无效或已过期"}).HTTP(http.StatusUnauthorized)
	ErrorTokenGenerate           = NewError(2003, lang{en: "Failed to generate token", zh_cn: "Token 生成失败"}).HTTP(http.StatusInternalServerError)
	ErrorUserIsNotAdmin          = NewError(2004, lang{en: "Administrator permission required", zh_cn: "需要管理员权限"}).HTTP(http.StatusForbidden)
	ErrorUserRegisterIsDisable   = NewError(2005, lang{en: "Registration is disabled", zh_cn: "注册功能已关闭"}).HTTP(http.StatusForbidden)
	ErrorUserUsernameNotValid    = NewError(2006, lang{en: "Username must be 3-20 letters, digits or underscores", zh_cn: "用户名须为 3-20 位字母、数字或下划线"}).HTTP(http.StatusBadRequest)
	ErrorUserAlreadyExists       = NewError(2007, lang{en: "Username already exists", zh_cn: "用户名已存在"}).HTTP(http.StatusConflict)
	ErrorUserEmailAlreadyExists  = NewError(2008, lang{en: "Email already exists", zh_cn: "邮箱已存在"}).HTTP(http.StatusConflict)
	ErrorUserRegister            = NewError(2009, lang{en: "Registration failed", zh_cn: "注册失败"}).HTTP(http.StatusInternalServerError)
	ErrorUserLoginPasswordFailed = NewError(2010, lang{en: "Incorrect username or password", zh_cn: "用户名或密码错误"}).HTTP(http.StatusUnauthorized)
	ErrorUserNotFound            = NewError(2011, lang{en: "User not found", zh_cn: "用户不存在"}).HTTP(http.StatusNotFound)
	ErrorUserOldPasswordFailed   = NewError(2012, lang{en: "Current password is incorrect", zh_cn: "当前密码错误"}).HTTP(http.StatusBadRequest)
	ErrorPasswordNotValid        = NewError(2013, lang{en: "Password is not valid", zh_cn: "密码不合法"}).HTTP(http.StatusBadRequest)
)
