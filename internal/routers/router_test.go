package routers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/app"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/dao"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"
	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Code    int             `json:"code"`
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t      *testing.T
	engine *gin.Engine
	token  string
}

func newTestServer(t *testing.T, extraYAML string) *testServer {
	t.Helper()
	cfg, err := app.ParseConfig([]byte(`
security:
  auth-token-key: router-test-key
database:
  path: ":memory:"
  max-open-conns: 1
` + extraYAML))
	require.NoError(t, err)

	db, err := dao.NewDBEngine(cfg.DaoConfig())
	require.NoError(t, err)

	a, err := app.NewApp(cfg, zap.NewNop(), db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	uni, err := validator.Setup()
	require.NoError(t, err)

	return &testServer{t: t, engine: NewRouter(a, uni)}
}

func (s *testServer) do(method, path, body string) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func (s *testServer) login(username string) {
	s.t.Helper()
	w, env := s.do(http.MethodPost, "/api/auth/register",
		fmt.Sprintf(`{"username":%q,"password":"secret1","email":"%s@example.com"}`, username, username))
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &auth))
	s.token = auth.Token
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

type record struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Status     string `json:"status"`
	Visibility string `json:"visibility"`
	Tags       []struct {
		ID int64 `json:"id"`
	} `json:"tags"`
}

type page struct {
	Items         []record `json:"items"`
	TotalElements int64    `json:"totalElements"`
	TotalPages    int      `json:"totalPages"`
	PageNumber    int      `json:"pageNumber"`
	PageSize      int      `json:"pageSize"`
}

func TestPublicEndpoints(t *testing.T) {
	s := newTestServer(t, "")

	w, env := s.do(http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"database":"connected"`)

	w, env = s.do(http.MethodGet, "/api/version", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), app.Version)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))

	w, _ = s.do(http.MethodGet, "/api/memos", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env = s.do(http.MethodGet, "/api/nowhere", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, code.ErrorNotFoundAPI.Code(), env.Code)
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t, "")
	s.login("alice")

	w, env := s.do(http.MethodGet, "/api/users/me", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"username":"alice"`)

	w, _ = s.do(http.MethodPost, "/api/auth/register", `{"username":"alice","password":"secret1"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, env = s.do(http.MethodPost, "/api/auth/login", `{"username":"alice@example.com","password":"wrong-pass"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, code.ErrorUserLoginPasswordFailed.Code(), env.Code)

	w, _ = s.do(http.MethodPut, "/api/users/password", `{"currentPassword":"secret1","newPassword":"secret2"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"secret2"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = s.do(http.MethodPost, "/api/auth/register", `{"username":"bob"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, code.ErrorInvalidParams.Code(), env.Code)
}

func TestRegisterDisabled(t *testing.T) {
	s := newTestServer(t, "user:\n  register-is-enable: false\n")
	w, env := s.do(http.MethodPost, "/api/auth/register", `{"username":"alice","password":"secret1"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, code.ErrorUserRegisterIsDisable.Code(), env.Code)
}

func TestMemoCRUD(t *testing.T) {
	s := newTestServer(t, "")
	s.login("alice")

	w, env := s.do(http.MethodPost, "/api/admin/tags", `{"name":"work"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	tag := decodeData[record](t, env)

	w, env = s.do(http.MethodPost, "/api/memos",
		fmt.Sprintf(`{"title":"groceries","content":"milk","tagIds":[%d]}`, tag.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	memo := decodeData[record](t, env)
	assert.Equal(t, "groceries", memo.Title)
	require.Len(t, memo.Tags, 1)

	// content absent: kept
	w, env = s.do(http.MethodPut, fmt.Sprintf("/api/memos/%d", memo.ID), `{"title":"shopping"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeData[record](t, env)
	assert.Equal(t, "shopping", updated.Title)
	assert.Equal(t, "milk", updated.Content)

	w, env = s.do(http.MethodGet, fmt.Sprintf("/api/memos?tagId=%d&searchText=shop", tag.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	p := decodeData[page](t, env)
	assert.Equal(t, int64(1), p.TotalElements)
	assert.Equal(t, 10, p.PageSize)

	w, env = s.do(http.MethodGet, "/api/memos/all", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeData[[]record](t, env), 1)

	w, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/memos/%d", memo.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = s.do(http.MethodGet, fmt.Sprintf("/api/memos/%d", memo.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, code.ErrorRecordNotFound.Code(), env.Code)
}

func TestEntityRequestErrors(t *testing.T) {
	s := newTestServer(t, "")
	s.login("alice")

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   int
	}{
		{"non numeric id", http.MethodGet, "/api/todos/abc", "", http.StatusBadRequest, code.ErrorInvalidParams.Code()},
		{"zero id", http.MethodDelete, "/api/todos/0", "", http.StatusBadRequest, code.ErrorInvalidParams.Code()},
		{"bad filter", http.MethodGet, "/api/todos?categoryId=x", "", http.StatusBadRequest, code.ErrorInvalidParams.Code()},
		{"bad enum", http.MethodGet, "/api/todos?status=DONE", "", http.StatusBadRequest, code.ErrorInvalidParams.Code()},
		{"negative page", http.MethodGet, "/api/todos?page=-1", "", http.StatusBadRequest, code.ErrorInvalidParams.Code()},
		{"missing title", http.MethodPost, "/api/todos", `{"content":"x"}`, http.StatusBadRequest, code.ErrorInvalidParams.Code()},
		{"malformed body", http.MethodPost, "/api/todos", `{"title":`, http.StatusBadRequest, code.ErrorInvalidParams.Code()},
		{"unknown category", http.MethodPost, "/api/todos", `{"title":"t","content":"c","categoryId":99}`, http.StatusBadRequest, code.ErrorRelationNotFound.Code()},
		{"update missing", http.MethodPut, "/api/todos/99", `{"title":"t"}`, http.StatusNotFound, code.ErrorRecordNotFound.Code()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := s.do(tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.Equal(t, tt.code, env.Code)
		})
	}
}

func TestArticleDefaultsAndStatusFilter(t *testing.T) {
	s := newTestServer(t, "")
	s.login("alice")

	w, env := s.do(http.MethodPost, "/api/admin/articles", `{"title":"draft","content":"body"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	a := decodeData[record](t, env)
	assert.Equal(t, "UNPUBLISHED", a.Status)
	assert.Equal(t, "PUBLIC", a.Visibility)

	w, _ = s.do(http.MethodPost, "/api/admin/articles", `{"title":"live","content":"body","status":"PUBLISHED"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	for status, want := range map[string]int64{"PUBLISHED": 1, "UNPUBLISHED": 1, "all": 2, "": 2} {
		_, env = s.do(http.MethodGet, "/api/admin/articles?status="+status, "")
		assert.Equal(t, want, decodeData[page](t, env).TotalElements, status)
	}

	// null on a non-nullable field is rejected
	w, _ = s.do(http.MethodPut, fmt.Sprintf("/api/admin/articles/%d", a.ID), `{"status":null}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminEndpoints(t *testing.T) {
	s := newTestServer(t, "user:\n  admin-uid: 1\n")
	s.login("root")

	w, env := s.do(http.MethodGet, "/api/admin/dashboard/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	stats := decodeData[struct {
		Counts map[string]int64 `json:"counts"`
		Total  int64            `json:"total"`
	}](t, env)
	assert.Equal(t, int64(1), stats.Counts["user"])
	assert.Equal(t, int64(1), stats.Total)

	w, _ = s.do(http.MethodGet, "/api/admin/system", "")
	assert.Equal(t, http.StatusOK, w.Code)

	s.login("guest")
	w, env = s.do(http.MethodGet, "/api/admin/system", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, code.ErrorUserIsNotAdmin.Code(), env.Code)
}

func TestPrivateRouter(t *testing.T) {
	r := NewPrivateRouterWithLogger("release", zap.NewNop())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/vars", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var vars map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vars))
	assert.Contains(t, vars, "memstats")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pprof/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
