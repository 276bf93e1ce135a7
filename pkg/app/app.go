package app

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"
)

// VersionInfo version information // 版本信息
type VersionInfo struct {
	Version   string `json:"version"`
	GitTag    string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
}

// LangKey gin context key holding the request language
// LangKey gin 上下文中保存请求语言的键
const LangKey = "lang"

type Response struct {
	Ctx *gin.Context
}

// Res is the unified response envelope: Code/Status/Message/Data
// Res 是统一的响应结构：Code/Status/Message/Data
type Res struct {
	Code    int         `json:"code"`
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func NewResponse(ctx *gin.Context) *Response {
	return &Response{
		Ctx: ctx,
	}
}

// GetRequestIP 获取 ip
func GetRequestIP(c *gin.Context) string {
	reqIP := c.ClientIP()
	if reqIP == "::1" {
		reqIP = "127.0.0.1"
	}
	return reqIP
}

func GetAccessHost(c *gin.Context) string {
	proto := c.Request.Header.Get("X-Forwarded-Proto")
	if proto == "" {
		proto = "http"
	}
	return proto + "://" + c.Request.Host
}

// Message returns the code message in the language chosen for this request
// Message 按当前请求选择的语言返回消息
func Message(c *gin.Context, codeObj *code.Code) string {
	if c != nil {
		if l := c.GetString(LangKey); l != "" {
			return codeObj.Lang.In(l)
		}
	}
	return codeObj.Msg()
}

// ToResponse writes the envelope with the status carried by the code
// ToResponse 按 code 携带的 HTTP 状态输出响应
func (r *Response) ToResponse(codeObj *code.Code) {
	r.Ctx.Set("status_code", codeObj.StatusCode())

	content := Res{
		Code:    codeObj.Code(),
		Status:  codeObj.Status(),
		Message: Message(r.Ctx, codeObj),
		Data:    codeObj.Data(),
	}

	if codeObj.HaveDetails() {
		content.Details = strings.Join(codeObj.Details(), ",")
	}

	r.Ctx.JSON(codeObj.StatusCode(), content)
}
