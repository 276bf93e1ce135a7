package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type loginForm struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

func newJSONContext(body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestBindAndValid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		valid   bool
		errKeys []string
	}{
		{"ok", `{"username":"alice","password":"secret1"}`, true, nil},
		{"missing username", `{"password":"secret1"}`, false, []string{"Username"}},
		{"short password", `{"username":"alice","password":"x"}`, false, []string{"Password"}},
		{"malformed", `{"username":`, false, []string{"body"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := &loginForm{}
			valid, errs := BindAndValid(newJSONContext(tt.body), form)
			assert.Equal(t, tt.valid, valid)
			m := errs.MapsToString()
			for _, k := range tt.errKeys {
				assert.Contains(t, m, k)
			}
			if !tt.valid {
				assert.NotEmpty(t, errs.ErrorsToString())
			}
		})
	}
}
