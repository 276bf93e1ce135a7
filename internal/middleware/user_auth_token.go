package middleware

import (
	"strings"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// UserAuthToken 用户 Token 认证中间件（使用注入的 TokenManager）
// The token is read from the Authorization header first, then the token query parameter.
// 依次从 Authorization 请求头与 token 查询参数读取 Token。
func UserAuthToken(tm app.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := app.NewResponse(c)

		token := bearerToken(c)
		if token == "" {
			response.ToResponse(code.ErrorNotUserAuthToken)
			c.Abort()
			return
		}

		user, err := tm.Parse(token)
		if err != nil {
			response.ToResponse(code.ErrorInvalidUserAuthToken)
			c.Abort()
			return
		}
		c.Set(app.UserTokenKey, user)

		c.Next()
	}
}

// AdminOnly restricts the route to adminUID, zero allows every ADMIN role holder
// AdminOnly 仅允许 adminUID 访问，为 0 时允许所有 ADMIN 角色
func AdminOnly(adminUID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed := app.GetRole(c) == "ADMIN"
		if adminUID != 0 {
			allowed = app.GetUID(c) == adminUID
		}
		if !allowed {
			app.NewResponse(c).ToResponse(code.ErrorUserIsNotAdmin)
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if s := c.GetHeader("Authorization"); s != "" {
		if len(s) > len(bearerPrefix) && strings.EqualFold(s[:len(bearerPrefix)], bearerPrefix) {
			return strings.TrimSpace(s[len(bearerPrefix):])
		}
		return strings.TrimSpace(s)
	}
	if s, exist := c.GetQuery("token"); exist {
		return s
	}
	return ""
}
