package api_router

import (
	"expvar"
	"fmt"

	"github.com/gin-gonic/gin"
)

// Expvar writes every published expvar as one JSON object
// Expvar 以 JSON 对象输出全部 expvar 变量
func Expvar(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	fmt.Fprint(c.Writer, "{\n")
	first := true
	expvar.Do(func(kv expvar.KeyValue) {
		if !first {
			fmt.Fprint(c.Writer, ",\n")
		}
		first = false
		// expvar.Var.String 已是合法 JSON
		fmt.Fprintf(c.Writer, "%q: %s", kv.Key, kv.Value.String())
	})
	fmt.Fprint(c.Writer, "\n}\n")
}
