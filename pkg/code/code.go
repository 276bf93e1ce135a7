package code

import (
	"fmt"
	"net/http"
)

// Code is a response code that is also an error value
// Code 响应码，同时实现 error 接口
type Code struct {
	// 业务码
	code int
	// 是否成功
	status bool
	// HTTP 状态码
	httpStatus int
	// 多语言消息
	Lang lang

	data     interface{}
	haveData bool

	details     []string
	haveDetails bool
}

var (
	codes     = map[int]string{}
	sussCodes = map[int]string{}
)

// NewError registers an error code, duplicate codes panic at init
// NewError 注册错误码，重复的错误码会在初始化时 panic
func NewError(code int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("错误码 %d 已经存在，请更换一个", code))
	}
	codes[code] = l.GetMessage()
	return &Code{code: code, status: false, httpStatus: http.StatusOK, Lang: l}
}

// NewSuss registers a success code
// NewSuss 注册成功码
func NewSuss(code int, l lang) *Code {
	if _, ok := sussCodes[code]; ok {
		panic(fmt.Sprintf("成功码 %d 已经存在，请更换一个", code))
	}
	sussCodes[code] = l.GetMessage()
	return &Code{code: code, status: true, httpStatus: http.StatusOK, Lang: l}
}

// HTTP sets the transport status used when the code is written out
// HTTP 设置输出时使用的 HTTP 状态码
func (e *Code) HTTP(status int) *Code {
	e.httpStatus = status
	return e
}

// Clone returns a copy without data or details, the registered values stay untouched
// Clone 返回不带数据与详情的副本，避免修改全局注册的对象
func (e *Code) Clone() *Code {
	return &Code{
		code:       e.code,
		status:     e.status,
		httpStatus: e.httpStatus,
		Lang:       e.Lang,
	}
}

func (e *Code) Error() string {
	if e.haveDetails && len(e.details) > 0 {
		return fmt.Sprintf("%s: %v", e.Msg(), e.details)
	}
	return e.Msg()
}

// Is matches two codes by their numeric value so errors.Is works across clones
// Is 按数值比较，使 errors.Is 对副本同样有效
func (e *Code) Is(target error) bool {
	t, ok := target.(*Code)
	if !ok {
		return false
	}
	return t.code == e.code && t.status == e.status
}

func (e *Code) Code() int {
	return e.code
}

func (e *Code) Status() bool {
	return e.status
}

func (e *Code) Msg() string {
	return e.Lang.GetMessage()
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) Data() interface{} {
	return e.data
}

func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

func (e *Code) HaveData() bool {
	return e.haveData
}

func (e *Code) WithData(data interface{}) *Code {
	e.haveData = true
	e.data = data
	return e
}

func (e *Code) WithDetails(details ...string) *Code {
	e.haveDetails = true
	e.details = append([]string{}, details...)
	return e
}

func (e *Code) StatusCode() int {
	if e.httpStatus == 0 {
		return http.StatusOK
	}
	return e.httpStatus
}
