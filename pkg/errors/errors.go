package errors

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/middleware"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"
)

// AppError 统一应用错误结构体
// 包含错误码、消息、详情、追踪ID和时间戳
type AppError struct {
	// Code 错误码
	Code int `json:"code"`
	// Status 始终为 false
	Status bool `json:"status"`
	// Message 错误消息
	Message string `json:"message"`
	// Details 错误详情（可选）
	Details []string `json:"details,omitempty"`
	// Data 附加数据，如字段级校验错误
	Data interface{} `json:"data,omitempty"`
	// TraceID 请求追踪ID
	TraceID string `json:"traceId,omitempty"`
	// Cause 原始错误（不序列化到JSON）
	Cause error `json:"-"`
	// Timestamp 错误发生时间
	Timestamp time.Time `json:"timestamp"`

	httpStatus int
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap 支持错误链路追踪
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError 从 Code 对象创建 AppError
func NewAppError(c *code.Code, cause error) *AppError {
	return &AppError{
		Code:       c.Code(),
		Message:    c.Msg(),
		Details:    c.Details(),
		Data:       c.Data(),
		Cause:      cause,
		Timestamp:  time.Now(),
		httpStatus: c.StatusCode(),
	}
}

// ErrorResponse maps any error onto the JSON error envelope
// ErrorResponse 将任意错误转换为统一的错误响应
// Unknown errors become a generic internal error without leaking the cause
// 未知错误统一返回内部错误，不暴露原始信息
func ErrorResponse(c *gin.Context, err error) {
	traceID := middleware.GetTraceIDFromGin(c)

	var appErr *AppError
	if errors.As(err, &appErr) {
		appErr.TraceID = traceID
		write(c, appErr)
		return
	}

	var codeErr *code.Code
	if errors.As(err, &codeErr) {
		resp := NewAppError(codeErr, err)
		resp.Message = app.Message(c, codeErr)
		resp.TraceID = traceID
		write(c, resp)
		return
	}

	resp := NewAppError(code.ErrorServerInternal, err)
	resp.Message = app.Message(c, code.ErrorServerInternal)
	resp.TraceID = traceID
	write(c, resp)
}

func write(c *gin.Context, e *AppError) {
	status := e.httpStatus
	if status == 0 {
		status = code.ErrorServerInternal.StatusCode()
	}
	c.Set("status_code", status)
	c.JSON(status, e)
}
