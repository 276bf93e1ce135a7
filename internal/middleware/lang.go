package middleware

import (
	"strings"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"

	ut "github.com/go-playground/universal-translator"
	"github.com/gin-gonic/gin"
)

// LangWithTranslator 创建带翻译器的语言中间件（支持依赖注入）
// The language is kept per request in the gin context, never globally.
// 语言按请求保存在 gin 上下文中，不修改全局设置。
func LangWithTranslator(uni *ut.UniversalTranslator) gin.HandlerFunc {

	return func(c *gin.Context) {

		var lang string

		if s, exist := c.GetQuery("lang"); exist {
			lang = s
		} else if s = c.GetHeader("lang"); len(s) != 0 {
			lang = s
		} else {
			lang = code.GetGlobalDefaultLang()
		}

		lang = strings.ToLower(strings.ReplaceAll(lang, "-", "_"))

		trans, found := uni.GetTranslator(lang)
		if !found {
			// zh_cn 等地区码回退到主语言
			base, _, _ := strings.Cut(lang, "_")
			if trans, found = uni.GetTranslator(base); !found {
				trans, _ = uni.GetTranslator(code.FallbackLang)
			}
		}

		c.Set("trans", trans)
		c.Set(app.LangKey, lang)

		c.Next()
	}
}
