package middleware

import (
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"

	"github.com/gin-gonic/gin"
)

// NoFound 404 handler
// NoFound 404 处理
func NoFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response := app.NewResponse(c)
		response.ToResponse(code.ErrorNotFoundAPI.Clone().WithDetails(c.Request.Method + " " + c.Request.URL.Path))
		c.Abort()
	}
}
